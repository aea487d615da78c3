package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != "data/app.db" {
		t.Fatalf("db path = %q, want data/app.db", cfg.DBPath)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("database url = %q, want empty by default", cfg.DatabaseURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DELIVERY_PORT", "9090")
	t.Setenv("DELIVERY_DATABASE_URL", "postgres://localhost/delivery")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/delivery" {
		t.Fatalf("database url = %q, want postgres://localhost/delivery", cfg.DatabaseURL)
	}
}

func TestLoadYAMLFileThenEnvWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"7070\"\ndb_path: custom.db\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("DELIVERY_CONFIG", path)
	t.Setenv("DELIVERY_PORT", "9191")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env takes precedence over the file; file over defaults.
	if cfg.Port != "9191" {
		t.Fatalf("port = %q, want env override 9191", cfg.Port)
	}
	if cfg.DBPath != "custom.db" {
		t.Fatalf("db path = %q, want file value custom.db", cfg.DBPath)
	}
}
