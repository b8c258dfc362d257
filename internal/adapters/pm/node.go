package pm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsu/internal/core/ports"
)

const NodeID graft.ID = "adapter.package_managers"

func init() {
	graft.Register(graft.Node[[]ports.PackageManagerAdapter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) ([]ports.PackageManagerAdapter, error) {
			return preferenceOrder(), nil
		},
	})
}
