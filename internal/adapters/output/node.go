package output

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stow/internal/core/ports"
)

// NodeID is the unique identifier for the source writer Graft node.
const NodeID graft.ID = "adapter.output"

func init() {
	graft.Register(graft.Node[ports.SourceWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceWriter, error) {
			return NewWriter(), nil
		},
	})
}
