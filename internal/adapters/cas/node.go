package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsu/internal/adapters/fs"
	"go.trai.ch/wsu/internal/adapters/vcs"
	"go.trai.ch/wsu/internal/core/ports"
)

const NodeID graft.ID = "adapter.cas.factory"

// PortFactoryNodeID provides the port-typed ports.CacheFactory, wrapping
// Factory so consumers outside this package depend only on ports.
const PortFactoryNodeID graft.ID = "adapter.cas.port_factory"

// Factory builds a workspace-rooted Store and its InputHasher. Cache
// construction is deferred to a factory (rather than wired directly as a
// singleton) because the workspace root is only known once the workspace
// loader has run, not at graft wiring time.
type Factory func(root string) (*Store, *InputHasher, error)

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, fs.WalkerNodeID, vcs.NodeID},
		Run: func(ctx context.Context) (Factory, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			vcsChecker, err := graft.Dep[ports.VCSIgnoreChecker](ctx)
			if err != nil {
				return nil, err
			}

			return func(root string) (*Store, *InputHasher, error) {
				store, err := NewStore(root)
				if err != nil {
					return nil, nil, err
				}
				return store, NewInputHasher(store, hasher, walker, vcsChecker), nil
			}, nil
		},
	})

	graft.Register(graft.Node[ports.CacheFactory]{
		ID:        PortFactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.CacheFactory, error) {
			factory, err := graft.Dep[Factory](ctx)
			if err != nil {
				return nil, err
			}
			return func(root string) (ports.Cache, ports.InputHasher, error) {
				store, inputHasher, err := factory(root)
				if err != nil {
					return nil, nil, err
				}
				return store, inputHasher, nil
			}, nil
		},
	})
}
