package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsu/internal/core/ports"
)

const (
	WalkerNodeID graft.ID = "adapter.fs.walker"
	GlobNodeID   graft.ID = "adapter.fs.glob"
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.GlobExpander]{
		ID:        GlobNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GlobExpander, error) {
			return NewGlobExpander(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
