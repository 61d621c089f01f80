// Package compose implements the environment composer: the pure function
// from (runtime, selection, catalog) to a composed environment value.
package compose

import (
	"go.tarn.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

// Composer resolves environment specs against a package catalog.
// Composition is deterministic and side-effect free: identical inputs always
// yield value-equal environments, and a single missing package aborts the
// whole composition.
type Composer struct{}

// New creates a new Composer.
func New() *Composer {
	return &Composer{}
}

// Compose resolves every selected name through the catalog and returns the
// composed environment. The resolved packages are exactly the image of the
// selection under the catalog lookup: no extras, no omissions, no duplicates.
func (c *Composer) Compose(spec domain.EnvironmentSpec, catalog domain.Catalog) (domain.Environment, error) {
	names := spec.Selection.Names()
	packages := make([]domain.Descriptor, 0, len(names))
	for _, name := range names {
		desc, err := catalog.Lookup(name)
		if err != nil {
			return domain.Environment{}, zerr.With(
				zerr.Wrap(err, "failed to compose environment"),
				"environment", spec.Name.String(),
			)
		}
		packages = append(packages, desc)
	}

	// Selection names are already sorted and deduplicated, so packages are
	// in name order without further work.
	return domain.Environment{
		ID:            domain.GenerateEnvID(spec.Runtime, packages, catalog.Digest()),
		Name:          spec.Name,
		Runtime:       spec.Runtime,
		Packages:      packages,
		CatalogDigest: catalog.Digest(),
	}, nil
}
