// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, translator) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/libris/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the Libris API server and the
// backfill command.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	Database DatabaseConfig `envPrefix:"DATABASE_"`

	// MigrationPath overrides the embedded migrations with a directory on disk.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value Cache (Redis)
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Cross-Origin Resource Sharing, comma separated
	ExtraOrigins string `env:"EXTRA_ORIGINS"`

	// Machine translation
	Translate TranslateConfig `envPrefix:"TRANSLATE_"`

	// AutoTranslate switches the on-save translation fill on or off.
	AutoTranslate bool `env:"AUTO_TRANSLATE_ENABLED" envDefault:"true"`
}

// DatabaseConfig sizes the pgx pool.
type DatabaseConfig struct {
	URL              string        `env:"URL,required,notEmpty"`
	MaxConns         int32         `env:"MAX_CONNS"         envDefault:"10"`
	MinConns         int32         `env:"MIN_CONNS"         envDefault:"2"`
	StatementTimeout time.Duration `env:"STATEMENT_TIMEOUT" envDefault:"30s"`
}

// RedisConfig configures the translation cache. An empty URL disables it.
type RedisConfig struct {
	URL      string `env:"URL"`
	PoolSize int    `env:"POOL_SIZE" envDefault:"5"`
}

// Enabled reports whether a Redis URL was configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// TranslateConfig tunes the translation provider client.
type TranslateConfig struct {
	BaseURL  string        `env:"BASE_URL"  envDefault:"https://translate.googleapis.com"`
	Timeout  time.Duration `env:"TIMEOUT"   envDefault:"5s"`
	RPS      float64       `env:"RPS"       envDefault:"5"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"720h"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.Translate.BaseURL == "" {
		cfg.Translate.BaseURL = constants.DefaultTranslateBaseURL
	}

	if cfg.Database.MinConns > cfg.Database.MaxConns {
		return nil, fmt.Errorf("config: DATABASE_MIN_CONNS (%d) exceeds DATABASE_MAX_CONNS (%d)",
			cfg.Database.MinConns, cfg.Database.MaxConns)
	}

	if cfg.Translate.Timeout <= 0 {
		return nil, fmt.Errorf("config: TRANSLATE_TIMEOUT must be positive, got %s", cfg.Translate.Timeout)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigins returns the parsed EXTRA_ORIGINS list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if clean := strings.TrimSpace(origin); clean != "" {
			origins = append(origins, clean)
		}
	}
	return origins
}
