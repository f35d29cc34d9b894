package pnpm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsdeps/internal/adapters/fs"
	"go.trai.ch/wsdeps/internal/core/ports"
)

// NodeID is the unique identifier for the lockfile loader Graft node.
const NodeID graft.ID = "adapter.lockfile_loader"

func init() {
	graft.Register(graft.Node[ports.LockfileLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.LockfileLoader, error) {
			fsys, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fsys), nil
		},
	})
}
