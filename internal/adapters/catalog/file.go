// Package catalog provides the file-backed package catalog source.
package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.tarn.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogName is the catalog filename looked up in the working
// directory when no explicit path is given.
const DefaultCatalogName = "catalog.yaml"

// catalogFile represents the structure of the catalog YAML file.
type catalogFile struct {
	Packages map[string]packageDTO `yaml:"packages"`
}

// packageDTO represents a single catalog entry.
type packageDTO struct {
	Version    string `yaml:"version"`
	AttrPath   string `yaml:"attrPath"`
	NixpkgsRev string `yaml:"nixpkgsRev"`
}

// FileCatalog implements ports.CatalogSource using a YAML file.
// The catalog digest is the xxhash64 of the raw file bytes, so two loads of
// identical content yield catalogs that compare equal.
type FileCatalog struct {
	Filename string
}

// New creates a catalog source using the default catalog filename.
func New() *FileCatalog {
	return &FileCatalog{Filename: DefaultCatalogName}
}

// Load reads the catalog file at path, falling back to the default filename
// when path is empty.
func (f *FileCatalog) Load(_ context.Context, path string) (domain.Catalog, error) {
	if path == "" {
		path = f.Filename
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Catalog{}, zerr.Wrap(err, "failed to read catalog file")
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Catalog{}, zerr.Wrap(err, "failed to parse catalog file")
	}

	entries := make(map[string]domain.Descriptor, len(file.Packages))
	for name, dto := range file.Packages {
		if dto.Version == "" {
			return domain.Catalog{}, zerr.With(
				zerr.New("catalog entry has no version"),
				"package", name,
			)
		}
		attrPath := dto.AttrPath
		if attrPath == "" {
			// Bare entries resolve as top-level package-set attributes.
			attrPath = name
		}
		entries[name] = domain.Descriptor{
			Name:       domain.NewInternedString(name),
			Version:    domain.NewInternedString(dto.Version),
			AttrPath:   domain.NewInternedString(attrPath),
			NixpkgsRev: domain.NewInternedString(dto.NixpkgsRev),
		}
	}

	digest := fmt.Sprintf("%016x", xxhash.Sum64(data))
	return domain.NewCatalog(entries, digest), nil
}
