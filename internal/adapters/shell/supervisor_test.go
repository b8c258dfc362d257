package shell_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wsu/internal/adapters/shell"
	"go.trai.ch/wsu/internal/core/domain"
)

func newTestSupervisor() *shell.Supervisor {
	return shell.NewSupervisor(shell.NewExecutor(shell.NewConsoleSink()))
}

func TestSupervisor_RunParallel_PreservesOrderAndKeepsGoingOnFailure(t *testing.T) {
	sup := newTestSupervisor()
	cmds := []domain.Command{
		shCommand("exit 0"),
		shCommand("exit 1"),
		shCommand("exit 0"),
	}
	results := sup.RunParallel(context.Background(), cmds, 2)

	assert.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.True(t, results[2].Success)
}

func TestSupervisor_RunSequential_StopsAtFirstFailure(t *testing.T) {
	sup := newTestSupervisor()
	cmds := []domain.Command{
		shCommand("exit 0"),
		shCommand("exit 1"),
		shCommand("exit 0"),
	}
	results := sup.RunSequential(context.Background(), cmds)

	assert.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
}

func TestSupervisor_RunBatched_WithholdsLaterBatchesOnFailure(t *testing.T) {
	sup := newTestSupervisor()
	batches := [][]domain.Command{
		{shCommand("exit 0"), shCommand("exit 1")},
		{shCommand("exit 0")},
	}
	results := sup.RunBatched(context.Background(), batches, 2)

	assert.Len(t, results, 1)
	assert.False(t, results[0][1].Success)
}

func TestSupervisor_RunBatched_RunsAllBatchesWhenNoFailures(t *testing.T) {
	sup := newTestSupervisor()
	batches := [][]domain.Command{
		{shCommand("exit 0")},
		{shCommand("exit 0"), shCommand("exit 0")},
	}
	results := sup.RunBatched(context.Background(), batches, 2)

	assert.Len(t, results, 2)
	assert.Len(t, results[1], 2)
}

func TestSupervisor_RunParallel_ConcurrencyBound(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sleep-based timing test is flaky on windows runners")
	}
	sup := newTestSupervisor()
	cmds := []domain.Command{
		shCommand("sleep 0.2"),
		shCommand("sleep 0.2"),
		shCommand("sleep 0.2"),
		shCommand("sleep 0.2"),
	}
	results := sup.RunParallel(context.Background(), cmds, 2)
	assert.Len(t, results, 4)
	for _, r := range results {
		assert.True(t, r.Success)
	}
}
