// Package config provides the manifest loader for denv.
package config

import (
	"os"

	"go.tarn.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultManifestName is the manifest filename looked up in the working
// directory when no explicit path is given.
const DefaultManifestName = "denv.yaml"

// ReservedEnvironmentName is the name the CLI uses to address every declared
// environment at once; the manifest may not declare it.
const ReservedEnvironmentName = "all"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader using the default manifest filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultManifestName}
}

// Load reads the manifest at path, falling back to the default filename when
// path is empty.
func (l *FileConfigLoader) Load(path string) (domain.Manifest, error) {
	if path == "" {
		path = l.Filename
	}
	return Load(path)
}

// Load reads a manifest file from the given path and returns the declared
// environment specs.
func Load(path string) (domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Manifest{}, zerr.Wrap(err, "failed to read manifest file")
	}

	var denvfile Denvfile
	if err := yaml.Unmarshal(data, &denvfile); err != nil {
		return domain.Manifest{}, zerr.Wrap(err, "failed to parse manifest file")
	}

	if denvfile.Version != "" && denvfile.Version != "1" {
		return domain.Manifest{}, zerr.With(
			zerr.New("unsupported manifest version"),
			"version", denvfile.Version,
		)
	}

	specs := make([]domain.EnvironmentSpec, 0, len(denvfile.Environments))
	for name, dto := range denvfile.Environments {
		if name == ReservedEnvironmentName {
			return domain.Manifest{}, zerr.With(domain.ErrReservedEnvironmentName, "environment", name)
		}

		runtime, err := domain.ParseRuntimeSpec(dto.Runtime)
		if err != nil {
			return domain.Manifest{}, zerr.With(err, "environment", name)
		}

		specs = append(specs, domain.EnvironmentSpec{
			Name:      domain.NewInternedString(name),
			Runtime:   runtime,
			Selection: domain.NewSelection(dto.Packages),
		})
	}

	return domain.NewManifest(specs), nil
}
