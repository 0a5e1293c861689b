package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	data := "log_level: debug\nno_color: true\nsweep:\n  protected: [\".git\", \"node_modules\"]\n  table: true\nhooks:\n  post_sweep: \"echo done\"\n"
	if err := os.WriteFile(cfgPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HELLOKIT_CONFIG", cfgPath)
	t.Setenv("HELLOKIT_LOG_LEVEL", "")
	t.Setenv("HELLOKIT_NO_COLOR", "")
	cfg, base, err := Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if base != dir {
		t.Fatalf("expected base %q, got %q", dir, base)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level=%q", cfg.LogLevel)
	}
	if !cfg.NoColor {
		t.Fatalf("no_color not loaded")
	}
	if len(cfg.Sweep.Protected) != 2 || cfg.Sweep.Protected[1] != "node_modules" {
		t.Fatalf("protected=%v", cfg.Sweep.Protected)
	}
	if !cfg.Sweep.Table {
		t.Fatalf("sweep.table not loaded")
	}
	if cfg.Hooks.PostSweep != "echo done" {
		t.Fatalf("post_sweep=%q", cfg.Hooks.PostSweep)
	}
}

func TestReadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HELLOKIT_CONFIG", filepath.Join(dir, "nope", "config.yaml"))
	t.Setenv("HELLOKIT_LOG_LEVEL", "")
	t.Setenv("HELLOKIT_NO_COLOR", "")
	cfg, _, err := Read()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("default log_level=%q", cfg.LogLevel)
	}
	if cfg.NoColor {
		t.Fatalf("no_color should default to false")
	}
	if len(cfg.Sweep.Protected) != 1 || cfg.Sweep.Protected[0] != ".git" {
		t.Fatalf("default protected=%v", cfg.Sweep.Protected)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("log_level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HELLOKIT_CONFIG", cfgPath)
	t.Setenv("HELLOKIT_LOG_LEVEL", "trace")
	t.Setenv("HELLOKIT_NO_COLOR", "1")
	cfg, _, err := Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if cfg.LogLevel != "trace" {
		t.Fatalf("env should win, log_level=%q", cfg.LogLevel)
	}
	if !cfg.NoColor {
		t.Fatalf("HELLOKIT_NO_COLOR=1 should set NoColor")
	}
}

func TestReadEmptyProtectedRestored(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("sweep:\n  protected: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HELLOKIT_CONFIG", cfgPath)
	t.Setenv("HELLOKIT_LOG_LEVEL", "")
	t.Setenv("HELLOKIT_NO_COLOR", "")
	cfg, _, err := Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(cfg.Sweep.Protected) != 1 || cfg.Sweep.Protected[0] != ".git" {
		t.Fatalf("protected=%v", cfg.Sweep.Protected)
	}
}
