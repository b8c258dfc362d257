package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsu/internal/adapters/cas"       //nolint:depguard // node wiring only, not a runtime import
	"go.trai.ch/wsu/internal/adapters/logger"    //nolint:depguard // node wiring only, not a runtime import
	"go.trai.ch/wsu/internal/adapters/pm"        //nolint:depguard // node wiring only, not a runtime import
	"go.trai.ch/wsu/internal/adapters/shell"     //nolint:depguard // node wiring only, not a runtime import
	"go.trai.ch/wsu/internal/adapters/telemetry" //nolint:depguard // node wiring only, not a runtime import
	"go.trai.ch/wsu/internal/adapters/workspace" //nolint:depguard // node wiring only, not a runtime import
	"go.trai.ch/wsu/internal/core/ports"
)

// NodeID provides the fully wired *App.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			workspace.NodeID,
			pm.NodeID,
			shell.SupervisorNodeID,
			cas.PortFactoryNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.WorkspaceLoader](ctx)
			if err != nil {
				return nil, err
			}
			adapters, err := graft.Dep[[]ports.PackageManagerAdapter](ctx)
			if err != nil {
				return nil, err
			}
			supervisor, err := graft.Dep[ports.Supervisor](ctx)
			if err != nil {
				return nil, err
			}
			cacheFactory, err := graft.Dep[ports.CacheFactory](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, adapters, supervisor, cacheFactory, tracer, log), nil
		},
	})
}
