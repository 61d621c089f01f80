package ports

import "go.tarn.ch/denv/internal/core/domain"

// ConfigLoader defines the interface for loading the environment manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest from the given path and returns the declared
	// environment specs.
	Load(path string) (domain.Manifest, error)
}
