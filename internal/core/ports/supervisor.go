package ports

import (
	"context"
	"os"
	"time"

	"go.trai.ch/wsu/internal/core/domain"
)

// Supervisor exposes the three execution disciplines of spec.md §4.D on top
// of a single per-process primitive, plus coordinated graceful shutdown.
//
//go:generate go run go.uber.org/mock/mockgen -source=supervisor.go -destination=mocks/mock_supervisor.go -package=mocks
type Supervisor interface {
	// RunParallel runs cmds with at most concurrency simultaneously live
	// children. Results are returned in submission order; one command's
	// failure does not stop the others.
	RunParallel(ctx context.Context, cmds []domain.Command, concurrency int) []domain.CommandResult

	// RunSequential starts the next command only once the previous has
	// exited, stopping at the first failure. The returned slice holds
	// exactly the results of the commands attempted.
	RunSequential(ctx context.Context, cmds []domain.Command) []domain.CommandResult

	// RunBatched runs each batch's members in parallel (bounded by
	// concurrency); batch k+1 only starts once every member of batch k has
	// exited, and is withheld entirely if any member of batch k failed.
	RunBatched(ctx context.Context, batches [][]domain.Command, concurrency int) [][]domain.CommandResult

	// TerminateAll sends sig to every currently live child, waits up to
	// grace for each to exit, then force-kills any holdout. Returns once
	// every child has exited or been force-killed.
	TerminateAll(sig os.Signal, grace time.Duration)
}
