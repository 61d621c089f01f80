// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.tarn.ch/denv/internal/core/domain"
)

// CatalogSource supplies the external package catalog.
//
// The catalog is owned and versioned by an external collaborator; this
// application only queries it by name. Implementations load it from wherever
// it lives (a file, an embedded default) and hand back a read-only value.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogSource interface {
	// Load reads the catalog at path and returns it as a read-only value.
	// An empty path selects the implementation's default location.
	Load(ctx context.Context, path string) (domain.Catalog, error)
}
