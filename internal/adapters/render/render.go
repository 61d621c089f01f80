package render

import (
	"go.tarn.ch/denv/internal/core/ports"
	"go.trai.ch/zerr"
)

// For returns the renderer for the given format name.
func For(format string) (ports.Renderer, error) {
	switch format {
	case "nix", "":
		return NewNixRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	default:
		return nil, zerr.With(zerr.New("unknown output format"), "format", format)
	}
}
