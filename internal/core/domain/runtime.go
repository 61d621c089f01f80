package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Runtime is the base interpreter descriptor an environment is built on
// (e.g., python@3.12). It is passed through composition as supplied and is
// not itself resolved against the catalog.
type Runtime struct {
	// Name is the interpreter name (e.g., "python").
	Name InternedString `json:"name"`

	// Version is the interpreter version (e.g., "3.12").
	Version InternedString `json:"version"`
}

// ParseRuntimeSpec parses a "name@version" spec into a Runtime.
// Returns ErrInvalidRuntimeSpec when either part is missing.
func ParseRuntimeSpec(spec string) (Runtime, error) {
	parts := strings.SplitN(spec, "@", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Runtime{}, zerr.With(ErrInvalidRuntimeSpec, "spec", spec)
	}
	return Runtime{
		Name:    NewInternedString(parts[0]),
		Version: NewInternedString(parts[1]),
	}, nil
}

// Spec returns the runtime in "name@version" form.
func (r Runtime) Spec() string {
	return r.Name.String() + "@" + r.Version.String()
}
