// ABOUTME: Soomgil configuration management and store factory
// ABOUTME: JSON config under XDG paths, temp-space session scope

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seyeon-q/soomgil/internal/store"
)

// Config stores soomgil configuration.
type Config struct {
	// APIBaseURL is the Soomgil recommendation API endpoint.
	APIBaseURL string `json:"api_base_url,omitempty"`

	// NominatimURL is the geocoding endpoint.
	NominatimURL string `json:"nominatim_url,omitempty"`

	// Boundary is the administrative district walks are limited to.
	Boundary string `json:"boundary,omitempty"`

	// DataDir is the root directory for the durable store.
	// Supports ~ expansion. Defaults to ~/.local/share/soomgil.
	DataDir string `json:"data_dir,omitempty"`

	// SessionDir is the root directory for the session store. Defaults to a
	// directory under the OS temp dir, which the OS clears on reboot — the
	// closest thing a CLI has to tab-session storage.
	SessionDir string `json:"session_dir,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetSessionDir returns the configured session directory.
func (c *Config) GetSessionDir() string {
	if c.SessionDir == "" {
		return filepath.Join(os.TempDir(), "soomgil", "session")
	}
	return ExpandPath(c.SessionDir)
}

func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "soomgil")
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

// OpenDurable opens the durable-scope store.
func (c *Config) OpenDurable() (store.Store, error) {
	return store.OpenBadger(filepath.Join(c.GetDataDir(), "durable"))
}

// OpenSession opens the session-scope store.
func (c *Config) OpenSession() (store.Store, error) {
	return store.OpenBadger(c.GetSessionDir())
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "soomgil", "config.json")
}

// Load reads config from disk, writing defaults on first run.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			if saveErr := cfg.Save(); saveErr != nil {
				fmt.Fprintf(os.Stderr, "warning: could not save default config: %v\n", saveErr)
			}
			return cfg, nil
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
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
