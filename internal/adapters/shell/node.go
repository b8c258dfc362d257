package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsu/internal/core/ports"
)

// SinkNodeID provides the console-multiplexed ports.LogSink.
const SinkNodeID graft.ID = "adapter.shell.sink"

// ExecutorNodeID provides the concrete *Executor, shared by the Executor and
// Supervisor ports so TerminateAll acts on the processes actually spawned.
const ExecutorNodeID graft.ID = "adapter.shell.executor"

// SupervisorNodeID provides the ports.Supervisor orchestrating many commands.
const SupervisorNodeID graft.ID = "adapter.shell.supervisor"

func init() {
	graft.Register(graft.Node[ports.LogSink]{
		ID:        SinkNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LogSink, error) {
			return NewConsoleSink(), nil
		},
	})

	graft.Register(graft.Node[*Executor]{
		ID:        ExecutorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SinkNodeID},
		Run: func(ctx context.Context) (*Executor, error) {
			sink, err := graft.Dep[ports.LogSink](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(sink), nil
		},
	})

	graft.Register(graft.Node[ports.Supervisor]{
		ID:        SupervisorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ExecutorNodeID},
		Run: func(ctx context.Context) (ports.Supervisor, error) {
			executor, err := graft.Dep[*Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewSupervisor(executor), nil
		},
	})
}
