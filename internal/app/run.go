package app

import (
	"context"
	"time"

	"go.trai.ch/wsu/internal/adapters/workspace" //nolint:depguard // name-filter/script-partition helpers, wired in app layer
	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/zerr"
)

// RunOptions configures Run (spec.md §4.F run()).
type RunOptions struct {
	Filter      string
	Concurrency int
	Sequential  bool
}

// Run loads the workspace, filters by name, partitions by script presence,
// and dispatches the matching packages' script to either the parallel or
// sequential driver (spec.md §4.F run()).
func (a *App) Run(ctx context.Context, cwd, script string, opts RunOptions) (*domain.Summary, error) {
	start := time.Now()

	ws, err := a.loadWorkspace(cwd)
	if err != nil {
		return nil, err
	}

	candidates := workspace.FilterByName(ws.Packages, opts.Filter)
	valid, invalid := workspace.PartitionByScript(candidates, script)
	if len(invalid) > 0 {
		a.logger.Warn("packages missing script", "script", script, "count", len(invalid))
	}
	if len(valid) == 0 {
		return nil, zerr.With(domain.ErrNoTarget, "script", script)
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	colors := domain.NewColorAssigner()
	cmds := make([]domain.Command, len(valid))
	for i, pkg := range valid {
		cmd, cmdErr := a.commandFor(ws, pkg, script, colors, false)
		if cmdErr != nil {
			return nil, cmdErr
		}
		cmds[i] = cmd
	}

	ctx, span := a.tracer.Start(ctx, "run."+script)
	defer span.End()
	a.tracer.EmitPlan(ctx, names(valid))

	var results []domain.CommandResult
	if opts.Sequential {
		results = a.supervisor.RunSequential(ctx, cmds)
	} else {
		results = a.supervisor.RunParallel(ctx, cmds, concurrency)
	}

	summary := summarize(cmds, results, start)
	if summary.Failed() {
		span.RecordError(domain.ErrProcessFailure)
	}
	return summary, nil
}

// summarize pairs cmds with results (results may be a prefix of cmds, as
// RunSequential returns only the commands it attempted) into a Summary.
// Commands beyond the attempted prefix are reported as pending.
func summarize(cmds []domain.Command, results []domain.CommandResult, start time.Time) *domain.Summary {
	packages := make([]domain.PackageResult, 0, len(cmds))
	for i, cmd := range cmds {
		if i >= len(results) {
			packages = append(packages, domain.PackageResult{PackageName: cmd.PackageName, Status: domain.PackageStatusPending})
			continue
		}
		res := results[i]
		status := domain.PackageStatusCompleted
		if !res.Success {
			status = domain.PackageStatusFailed
		}
		packages = append(packages, domain.PackageResult{PackageName: res.PackageName, Status: status, Duration: res.Duration})
	}
	return &domain.Summary{Packages: packages, Duration: time.Since(start)}
}
