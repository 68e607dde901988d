// Package config loads the optional .flatregex.yaml file that pins package
// patterns and generation options, so regeneration stays deterministic
// across machines and CI. CLI flags override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up when -config is not given.
const DefaultFilename = ".flatregex.yaml"

// File is the on-disk configuration.
type File struct {
	// Version of the config schema.
	Version string `yaml:"version"`
	// Packages are Go package patterns to scan (e.g., "./...").
	Packages []string `yaml:"packages"`
	// Suffix overrides the generated filename suffix (default "_flatregex").
	Suffix string `yaml:"suffix,omitempty"`
	// RuntimeImport overrides the runtime package import path.
	RuntimeImport string `yaml:"runtime_import,omitempty"`
	// Comments toggles doc comments on generated methods.
	Comments *bool `yaml:"comments,omitempty"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if len(f.Packages) == 0 {
		f.Packages = []string{"./..."}
	}
}

// CommentsEnabled returns the comments toggle, defaulting to true.
func (f *File) CommentsEnabled() bool {
	if f.Comments == nil {
		return true
	}

	return *f.Comments
}
