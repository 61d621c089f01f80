package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.tarn.ch/denv/internal/core/ports"
)

// NodeID is the unique identifier for the catalog source Graft node.
const NodeID graft.ID = "adapter.catalog_source"

func init() {
	graft.Register(graft.Node[ports.CatalogSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CatalogSource, error) {
			return New(), nil
		},
	})
}
