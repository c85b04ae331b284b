// ABOUTME: Gymtrack configuration: data dir, logged-in user, storage factory.
// ABOUTME: JSON file under XDG config, with environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"

	"github.com/nirvana/gymtrack/internal/storage"
)

// Config stores gymtrack settings. The logged-in user lives here rather
// than in ambient global state; callers resolve it once and pass it
// explicitly into storage and session constructors.
type Config struct {
	// DataDir is the root directory for the database and photo files.
	// Supports ~ expansion. Defaults to the standard XDG data directory.
	DataDir string `json:"data_dir,omitempty" env:"GYMTRACK_DATA_DIR"`

	// CurrentUser is the username set by `gymtrack login`.
	CurrentUser string `json:"current_user,omitempty" env:"GYMTRACK_USER"`
}

// GetDataDir returns the configured data directory with ~ expanded.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// DefaultDataDir returns the XDG data directory for gymtrack.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gymtrack")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the repository backed by the configured data dir.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return storage.Open(c.GetDataDir())
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gymtrack", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(GetConfigPath())
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
