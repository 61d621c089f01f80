package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.tarn.ch/denv/internal/adapters/telemetry/progrock"
	"go.tarn.ch/denv/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			return progrock.New(), nil
		},
	})
}
