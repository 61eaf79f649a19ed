// ABOUTME: Tests for gymtrack configuration management.
// ABOUTME: Covers load, save, defaults, backend selection, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("GetBackend() = %q, want %q", got, "charm")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "memory"}
	if got := cfg.GetBackend(); got != "memory" {
		t.Errorf("GetBackend() = %q, want %q", got, "memory")
	}
}

func TestGetSweepIntervalDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetSweepIntervalSeconds(); got != 60 {
		t.Errorf("GetSweepIntervalSeconds() = %d, want 60", got)
	}
}

func TestGetSweepIntervalExplicit(t *testing.T) {
	cfg := &Config{SweepIntervalSeconds: 5}
	if got := cfg.GetSweepIntervalSeconds(); got != 5 {
		t.Errorf("GetSweepIntervalSeconds() = %d, want 5", got)
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/gymtrack")
	want := filepath.Join(home, "data/gymtrack")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/gymtrack\") = %q, want %q", got, want)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetBackend() != "charm" {
		t.Errorf("default backend = %q, want charm", cfg.GetBackend())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{Backend: "memory", SweepIntervalSeconds: 30}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend != "memory" {
		t.Errorf("Backend = %q, want memory", loaded.Backend)
	}
	if loaded.SweepIntervalSeconds != 30 {
		t.Errorf("SweepIntervalSeconds = %d, want 30", loaded.SweepIntervalSeconds)
	}
}
