package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath is the environment variable that sets the path to the d1ctl configuration.
	EnvConfigPath = "D1CTL_CONFIG"
)

// Store gives read access to the d1ctl config file. d1ctl never writes it.
type Store interface {
	Load() (*Config, error)
	Exists() bool
}

var _ Store = (*FileStore)(nil)

// FileStore implements Store using the filesystem.
type FileStore struct{}

// DefaultConfigPath returns the default path for the d1ctl config.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".d1ctl", "config.yaml")
	}
	return filepath.Join(home, ".d1ctl", "config.yaml")
}

// Load and return the configuration from the file store.
func (s *FileStore) Load() (*Config, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", s.path(), err)
	}

	return &config, nil
}

// path returns the configuration file path.
func (s *FileStore) path() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return DefaultConfigPath()
}

// Exists checks if the config file exists
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path())
	return err == nil
}
