package compose

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the Composer Graft node.
const NodeID graft.ID = "engine.composer"

func init() {
	graft.Register(graft.Node[*Composer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Composer, error) {
			return New(), nil
		},
	})
}
