package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// EnvironmentSpec is a single environment declaration from the manifest:
// a base runtime plus the selection of catalog packages to compose on it.
type EnvironmentSpec struct {
	// Name is the environment name as declared in the manifest.
	Name InternedString

	// Runtime is the base interpreter spec.
	Runtime Runtime

	// Selection is the canonical set of selected package names.
	Selection Selection
}

// Manifest holds the named environment declarations of a project.
type Manifest struct {
	specs map[string]EnvironmentSpec
}

// NewManifest builds a manifest from the given specs, keyed by name.
func NewManifest(specs []EnvironmentSpec) Manifest {
	byName := make(map[string]EnvironmentSpec, len(specs))
	for _, spec := range specs {
		byName[spec.Name.String()] = spec
	}
	return Manifest{specs: byName}
}

// Get returns the spec for the given environment name.
// Returns ErrEnvironmentNotFound with the name attached when absent.
func (m Manifest) Get(name string) (EnvironmentSpec, error) {
	spec, ok := m.specs[name]
	if !ok {
		return EnvironmentSpec{}, zerr.With(ErrEnvironmentNotFound, "environment", name)
	}
	return spec, nil
}

// Names returns all declared environment names, sorted.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m.specs))
	for name := range m.specs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of declared environments.
func (m Manifest) Len() int {
	return len(m.specs)
}
