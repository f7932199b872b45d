// Package config provides configuration loading for the uskit CLI.
package config

import "path/filepath"

// Default configuration values.
const (
	// DefaultTemplatesDir is the templates root relative to the base path.
	DefaultTemplatesDir = "tools/templates"

	// DefaultLocation is the location used when none is given on the
	// command line.
	DefaultLocation = "both"
)

// Config holds the CLI configuration loaded from file, environment, and
// defaults.
type Config struct {
	// BasePath is the workspace root containing packages/ and modules/.
	BasePath string `mapstructure:"basePath" yaml:"basePath"`

	// TemplatesDir is the templates root. Relative values are resolved
	// against BasePath.
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir"`

	// DefaultLocation is the location used when the command line omits one.
	DefaultLocation string `mapstructure:"defaultLocation" yaml:"defaultLocation"`

	// Legacy selects the legacy per-package module layout by default.
	Legacy bool `mapstructure:"legacy" yaml:"legacy"`
}

// ApplyDefaults fills unset fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.BasePath == "" {
		c.BasePath = "."
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = DefaultTemplatesDir
	}
	if c.DefaultLocation == "" {
		c.DefaultLocation = DefaultLocation
	}
}

// TemplatesRoot resolves the templates directory against the base path.
func (c *Config) TemplatesRoot() string {
	if filepath.IsAbs(c.TemplatesDir) {
		return c.TemplatesDir
	}
	return filepath.Join(c.BasePath, c.TemplatesDir)
}
