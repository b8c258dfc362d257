package vcs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsu/internal/core/ports"
)

const NodeID graft.ID = "adapter.vcs.git"

func init() {
	graft.Register(graft.Node[ports.VCSIgnoreChecker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VCSIgnoreChecker, error) {
			return NewGit(), nil
		},
	})
}
