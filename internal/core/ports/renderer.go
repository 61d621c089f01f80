package ports

import "go.tarn.ch/denv/internal/core/domain"

// Renderer produces a textual representation of a composed environment.
// Rendering is pure: value-equal environments render to identical bytes.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render returns the serialized form of the environment.
	Render(env domain.Environment) ([]byte, error)

	// Format returns the format name the renderer produces (e.g., "nix").
	Format() string
}
