package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the config file looked up in the uskit home directory.
const ConfigFileName = "config.yaml"

// Paths contains standard filesystem paths for uskit.
type Paths struct {
	// ConfigFile is the path to the config file (~/.uskit/config.yaml).
	ConfigFile string

	// HomeDir is the uskit home directory (~/.uskit).
	HomeDir string
}

// DefaultPaths returns the default paths for uskit.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	uskitHome := filepath.Join(homeDir, ".uskit")

	return &Paths{
		ConfigFile: filepath.Join(uskitHome, ConfigFileName),
		HomeDir:    uskitHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If USKIT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("USKIT_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandTilde expands a leading "~/" (or bare "~") to the user home
// directory. Other forms, including "~username", pass through unchanged.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return homeDir
	}
	return filepath.Join(homeDir, path[2:])
}
