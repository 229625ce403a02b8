// ABOUTME: Tests for configuration loading, saving and path resolution
// ABOUTME: Uses temp XDG dirs so no real user config is touched

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/walks", filepath.Join(home, "walks")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.path); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestGetDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := &Config{}
	if got := cfg.GetDataDir(); got != filepath.Join("/tmp/xdg-data", "soomgil") {
		t.Errorf("default data dir = %q", got)
	}

	cfg.DataDir = "/custom/data"
	if got := cfg.GetDataDir(); got != "/custom/data" {
		t.Errorf("configured data dir = %q", got)
	}
}

func TestGetSessionDir(t *testing.T) {
	cfg := &Config{}
	want := filepath.Join(os.TempDir(), "soomgil", "session")
	if got := cfg.GetSessionDir(); got != want {
		t.Errorf("default session dir = %q, want %q", got, want)
	}

	cfg.SessionDir = "/custom/session"
	if got := cfg.GetSessionDir(); got != "/custom/session" {
		t.Errorf("configured session dir = %q", got)
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	want := filepath.Join("/tmp/xdg-config", "soomgil", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("config path = %q, want %q", got, want)
	}
}

func TestLoadFirstRunWritesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "" || cfg.Boundary != "" {
		t.Errorf("first-run config should be empty, got %+v", cfg)
	}

	if _, err := os.Stat(GetConfigPath()); err != nil {
		t.Errorf("first run should write a default config file: %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in := &Config{
		APIBaseURL:   "http://localhost:5001/api",
		NominatimURL: "http://localhost:8080",
		Boundary:     "동대문구",
		DataDir:      "/tmp/soomgil-data",
	}
	if err := in.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected an error for malformed config")
	}
}
