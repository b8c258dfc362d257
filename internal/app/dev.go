package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.trai.ch/wsu/internal/adapters/workspace" //nolint:depguard // name-filter/script-partition helpers, wired in app layer
	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/zerr"
)

const devScript = "dev"

// devGrace is the window dev's shutdown handler gives each child to exit
// after SIGTERM before force-killing it (spec.md §4.D, §5).
const devGrace = 5 * time.Second

// exitFunc lets tests observe the signal-triggered exit without killing the
// test binary.
var exitFunc = os.Exit

// DevOptions configures Dev (spec.md §4.F dev()).
type DevOptions struct {
	Filter      string
	Concurrency int
}

// Dev loads the workspace, filters to packages declaring a dev script, and
// runs them all in parallel with timestamps off. A SIGINT/SIGTERM handler
// calls terminate-all with a grace period and exits 0 once every child has
// stopped, per spec.md §4.D "Cancellation semantics" and §5.
func (a *App) Dev(ctx context.Context, cwd string, opts DevOptions) (*domain.Summary, error) {
	start := time.Now()

	ws, err := a.loadWorkspace(cwd)
	if err != nil {
		return nil, err
	}

	candidates := workspace.FilterByName(ws.Packages, opts.Filter)
	valid, invalid := workspace.PartitionByScript(candidates, devScript)
	if len(invalid) > 0 {
		a.logger.Warn("packages missing script", "script", devScript, "count", len(invalid))
	}
	if len(valid) == 0 {
		return nil, zerr.With(domain.ErrNoTarget, "script", devScript)
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	colors := domain.NewColorAssigner()
	cmds := make([]domain.Command, len(valid))
	for i, pkg := range valid {
		cmd, cmdErr := a.commandFor(ws, pkg, devScript, colors, false)
		if cmdErr != nil {
			return nil, cmdErr
		}
		cmds[i] = cmd
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go a.awaitShutdown(sigCh)

	ctx, span := a.tracer.Start(ctx, "dev")
	defer span.End()
	a.tracer.EmitPlan(ctx, names(valid))

	results := a.supervisor.RunParallel(ctx, cmds, concurrency)

	return summarize(cmds, results, start), nil
}

// awaitShutdown blocks until sigCh fires, then gracefully terminates every
// live child and exits the process with code 0, matching spec.md §5's
// "the process then exits with code 0" regardless of the children's own
// exit codes once they have been signaled.
func (a *App) awaitShutdown(sigCh <-chan os.Signal) {
	if _, ok := <-sigCh; !ok {
		return
	}
	a.logger.Info("received shutdown signal, terminating dev servers")
	a.supervisor.TerminateAll(syscall.SIGTERM, devGrace)
	exitFunc(0)
}
