package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("server = %q", cfg.ServerURL)
	}
	if cfg.RequestTimeout.Std() != 120*time.Second {
		t.Errorf("timeout = %v", cfg.RequestTimeout.Std())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server_url: http://example.com:9000\nrequest_timeout: 30s\ntick_interval: 250ms\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "http://example.com:9000" {
		t.Errorf("server = %q", cfg.ServerURL)
	}
	if cfg.RequestTimeout.Std() != 30*time.Second {
		t.Errorf("timeout = %v", cfg.RequestTimeout.Std())
	}
	if cfg.TickInterval.Std() != 250*time.Millisecond {
		t.Errorf("tick = %v", cfg.TickInterval.Std())
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("request_timeout: not-a-duration"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("invalid config should be an error, not a silent fallback")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvServer, "http://override:8000")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "http://override:8000" {
		t.Errorf("server = %q, want env override", cfg.ServerURL)
	}
}

func TestLoadZeroDurationsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("request_timeout: 0s\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RequestTimeout.Std() != 120*time.Second {
		t.Errorf("timeout = %v, want default restored", cfg.RequestTimeout.Std())
	}
}
