package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.MetricsPort != 9091 {
		t.Fatalf("expected default metrics port 9091, got %d", cfg.MetricsPort)
	}
	if !filepath.IsAbs(cfg.DNABackendPath) {
		t.Fatalf("expected absolute backend path, got %q", cfg.DNABackendPath)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadExplicitBackendPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DNA_BACKEND_PATH", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DNABackendPath != dir {
		t.Fatalf("expected backend path %q, got %q", dir, cfg.DNABackendPath)
	}
}

func TestLoadNormalizesLogSettings(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("log settings not normalized: %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}
