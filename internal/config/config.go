// ABOUTME: Gymtrack configuration management with backend selection.
// ABOUTME: JSON config under XDG paths; picks charm or memory persistence.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Persistence backends.
const (
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// Config stores gymtrack configuration.
type Config struct {
	// Backend selects the persistence backend: "charm" (default, KV-backed
	// with cloud sync) or "memory" (nothing survives the process).
	Backend string `json:"backend,omitempty"`

	// SweepIntervalSeconds controls the goal deadline sweep cadence used by
	// long-running surfaces like the MCP server. Defaults to 60.
	SweepIntervalSeconds int `json:"sweep_interval_seconds,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "charm".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendCharm
	}
	return c.Backend
}

// GetSweepIntervalSeconds returns the sweep cadence, defaulting to 60.
func (c *Config) GetSweepIntervalSeconds() int {
	if c.SweepIntervalSeconds <= 0 {
		return 60
	}
	return c.SweepIntervalSeconds
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

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gymtrack", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
