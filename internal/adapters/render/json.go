package render

import (
	"encoding/json"

	"go.tarn.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

// JSONRenderer renders an environment as indented JSON with stable field
// order.
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Format returns "json".
func (r *JSONRenderer) Format() string {
	return "json"
}

// Render returns the JSON form of the environment.
func (r *JSONRenderer) Render(env domain.Environment) ([]byte, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal environment")
	}
	return append(data, '\n'), nil
}
