package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stow/internal/core/ports"
)

const (
	// LockfileNodeID is the unique identifier for the lockfile loader Graft node.
	LockfileNodeID graft.ID = "adapter.cargo.lockfile"
	// ManifestNodeID is the unique identifier for the manifest codec Graft node.
	ManifestNodeID graft.ID = "adapter.cargo.manifest"
)

func init() {
	graft.Register(graft.Node[ports.LockfileLoader]{
		ID:        LockfileNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileLoader, error) {
			return NewLockfileLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestCodec]{
		ID:        ManifestNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestCodec, error) {
			return NewManifestCodec(), nil
		},
	})
}
