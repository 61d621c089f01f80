package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Descriptor represents a single entry in the package catalog: a pinned,
// installable package. The composer treats descriptors as opaque values; only
// the renderers interpret the Nix-specific fields.
type Descriptor struct {
	// Name is the canonical package name (e.g., "python-lsp-server").
	Name InternedString `json:"name"`

	// Version is the pinned version string (e.g., "1.11.0").
	Version InternedString `json:"version"`

	// AttrPath is the package-set attribute the name resolves to
	// (e.g., "python312Packages.python-lsp-server").
	AttrPath InternedString `json:"attr_path"`

	// NixpkgsRev is the nixpkgs commit the descriptor is pinned to.
	// Empty when the catalog entry floats on the ambient package set.
	NixpkgsRev InternedString `json:"nixpkgs_rev,omitzero"`
}

// Catalog is a read-only mapping of package names to descriptors. It is
// supplied by an external catalog source and never mutated after
// construction; the composer only queries it by name.
type Catalog struct {
	entries map[string]Descriptor
	digest  string
}

// NewCatalog builds a catalog from the given entries. The digest identifies
// the catalog contents so that identical catalogs compare equal; callers
// typically pass a content hash of the source the entries were loaded from.
func NewCatalog(entries map[string]Descriptor, digest string) Catalog {
	copied := make(map[string]Descriptor, len(entries))
	for name, desc := range entries {
		copied[name] = desc
	}
	return Catalog{entries: copied, digest: digest}
}

// Lookup returns the descriptor for the given package name.
// Returns ErrPackageNotFound with the missing name attached when the
// catalog has no such entry.
func (c Catalog) Lookup(name string) (Descriptor, error) {
	desc, ok := c.entries[name]
	if !ok {
		return Descriptor{}, zerr.With(ErrPackageNotFound, "package", name)
	}
	return desc, nil
}

// Names returns all package names in the catalog, sorted.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of catalog entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Digest returns the content digest of the catalog source.
func (c Catalog) Digest() string {
	return c.digest
}
