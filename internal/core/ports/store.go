package ports

import "go.tarn.ch/denv/internal/core/domain"

// SnapshotStore records composed environments keyed by their ID.
// It is bookkeeping only: composition results never depend on it.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves a recorded environment by ID.
	// Returns nil, nil if not found.
	Get(id string) (*domain.Environment, error)

	// Put records the environment.
	Put(env domain.Environment) error
}
