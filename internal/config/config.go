// Package config loads service configuration from defaults, an optional
// YAML file, and environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains process configuration.
type Config struct {
	// Port configures the HTTP listen port.
	Port string `koanf:"port"`

	// DatabaseURL selects Postgres storage when set (hosted deployments).
	DatabaseURL string `koanf:"database_url"`

	// DBPath is the SQLite file used when DatabaseURL is empty.
	DBPath string `koanf:"db_path"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Port:   "8080",
		DBPath: "data/app.db",
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DELIVERY_CONFIG is set
//  3. env (prefix DELIVERY_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DELIVERY_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: DELIVERY_PORT, DELIVERY_DATABASE_URL, ...
	// Underscores are preserved so keys match the koanf tags.
	envProvider := env.Provider("DELIVERY_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "delivery_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Port == "" {
		return nil, errors.New("port must not be empty")
	}
	if cfg.DatabaseURL == "" && cfg.DBPath == "" {
		return nil, errors.New("either database_url or db_path must be set")
	}
	return &cfg, nil
}
