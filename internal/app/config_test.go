package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("Timeout = %v", cfg.Timeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.BaseURL != "" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
}

func TestLoad_FileOverlay(t *testing.T) {
	home := t.TempDir()
	data := []byte("base_url: https://example.test\ntimeout: 5s\n")
	if err := os.WriteFile(filepath.Join(home, configFile), data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://example.test" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %v", cfg.Timeout)
	}
	// Fields the file leaves out keep their defaults.
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	home := t.TempDir()
	data := []byte("log_level: warn\n")
	if err := os.WriteFile(filepath.Join(home, configFile), data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ANYLIST_LOG_LEVEL", "debug")
	t.Setenv("ANYLIST_TIMEOUT", "2s")

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("Timeout = %v", cfg.Timeout)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, configFile), []byte("{not yaml"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(home); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
