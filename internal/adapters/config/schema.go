package config

// Denvfile represents the structure of the denv.yaml manifest file.
type Denvfile struct {
	Version      string                    `yaml:"version"`
	Environments map[string]EnvironmentDTO `yaml:"environments"`
}

// EnvironmentDTO represents a single environment declaration in the manifest.
type EnvironmentDTO struct {
	Runtime  string   `yaml:"runtime"`
	Packages []string `yaml:"packages"`
}
