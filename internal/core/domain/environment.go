package domain

import "slices"

// Environment is the composed output value: the base runtime plus the
// descriptors resolved from a selection. Packages are sorted by name and
// contain no duplicates; they are exactly the image of the selection under
// the catalog lookup.
type Environment struct {
	// ID is the deterministic identity of the composition inputs.
	ID string `json:"id"`

	// Name is the environment name from the manifest, if any.
	Name InternedString `json:"name,omitzero"`

	// Runtime is the base interpreter the environment is built on.
	Runtime Runtime `json:"runtime"`

	// Packages are the resolved descriptors, sorted by name.
	Packages []Descriptor `json:"packages"`

	// CatalogDigest identifies the catalog the packages were resolved from.
	CatalogDigest string `json:"catalog_digest,omitzero"`
}

// Equal reports value equality of two environments.
func (e Environment) Equal(other Environment) bool {
	return e.ID == other.ID &&
		e.Runtime == other.Runtime &&
		e.CatalogDigest == other.CatalogDigest &&
		slices.Equal(e.Packages, other.Packages)
}

// PackageNames returns the names of the resolved packages, in order.
func (e Environment) PackageNames() []string {
	names := make([]string, len(e.Packages))
	for i, pkg := range e.Packages {
		names[i] = pkg.Name.String()
	}
	return names
}
