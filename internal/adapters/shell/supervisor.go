package shell

import (
	"context"
	"os"
	"time"

	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/wsu/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

var _ ports.Supervisor = (*Supervisor)(nil)

// Supervisor implements ports.Supervisor on top of a single Executor,
// bounding concurrency with an errgroup limit.
type Supervisor struct {
	executor *Executor
}

// NewSupervisor creates a Supervisor that dispatches through executor.
func NewSupervisor(executor *Executor) *Supervisor {
	return &Supervisor{executor: executor}
}

// RunParallel runs cmds with at most concurrency simultaneous children.
func (s *Supervisor) RunParallel(ctx context.Context, cmds []domain.Command, concurrency int) []domain.CommandResult {
	results := make([]domain.CommandResult, len(cmds))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, cmd := range cmds {
		i, cmd := i, cmd
		g.Go(func() error {
			results[i] = s.executor.Execute(gctx, cmd)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// RunSequential runs cmds one at a time, stopping at the first failure.
func (s *Supervisor) RunSequential(ctx context.Context, cmds []domain.Command) []domain.CommandResult {
	results := make([]domain.CommandResult, 0, len(cmds))
	for _, cmd := range cmds {
		res := s.executor.Execute(ctx, cmd)
		results = append(results, res)
		if !res.Success {
			break
		}
	}
	return results
}

// RunBatched runs each batch in parallel, withholding batch k+1 entirely if
// any member of batch k failed.
func (s *Supervisor) RunBatched(ctx context.Context, batches [][]domain.Command, concurrency int) [][]domain.CommandResult {
	results := make([][]domain.CommandResult, 0, len(batches))
	for _, batch := range batches {
		batchResults := s.RunParallel(ctx, batch, concurrency)
		results = append(results, batchResults)
		if anyFailed(batchResults) {
			break
		}
	}
	return results
}

// TerminateAll delegates to the underlying Executor's live-process registry.
func (s *Supervisor) TerminateAll(sig os.Signal, grace time.Duration) {
	s.executor.TerminateAll(sig, grace)
}

func anyFailed(results []domain.CommandResult) bool {
	for _, r := range results {
		if !r.Success {
			return true
		}
	}
	return false
}
