package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsu/internal/adapters/fs"
	"go.trai.ch/wsu/internal/adapters/pm"
	"go.trai.ch/wsu/internal/core/ports"
)

const NodeID graft.ID = "adapter.workspace.loader"

func init() {
	graft.Register(graft.Node[ports.WorkspaceLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pm.NodeID, fs.GlobNodeID},
		Run: func(ctx context.Context) (ports.WorkspaceLoader, error) {
			adapters, err := graft.Dep[[]ports.PackageManagerAdapter](ctx)
			if err != nil {
				return nil, err
			}
			globExpander, err := graft.Dep[ports.GlobExpander](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(adapters, globExpander), nil
		},
	})
}
