package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/finwise/finwise-server/internal/localstate"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the FinWise service.
// Environment variables are automatically parsed from the FINWISE_ prefix.
type Config struct {
	// Build target selects high-level environment: local, demo
	BuildTarget string `envconfig:"BUILD_TARGET" default:"local"`

	// Derived or override driver: sqlite, memory
	DBDriver string `envconfig:"DB_DRIVER" default:"auto"`

	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// SQLite Configuration
	SQLitePath string `envconfig:"SQLITE_PATH" default:""`

	// Seeding and credentials
	SeedSampleData bool `envconfig:"SEED_SAMPLE_DATA" default:"true"`
	BcryptCost     int  `envconfig:"BCRYPT_COST" default:"10"`

	// Health probing
	HealthProbeIntervalSeconds int `envconfig:"HEALTH_PROBE_INTERVAL_SECONDS" default:"5"`
}

// ResolveDefaults validates BuildTarget and derives DBDriver and SQLitePath
// when left at "auto" or empty.
func (c *Config) ResolveDefaults() error {
	var defaultDB string

	switch c.BuildTarget {
	case "local":
		defaultDB = "sqlite"
	case "demo":
		defaultDB = "memory"
	default:
		return fmt.Errorf("unsupported BUILD_TARGET: %s", c.BuildTarget)
	}

	if c.DBDriver == "" || c.DBDriver == "auto" {
		c.DBDriver = defaultDB
	}

	if c.DBDriver == "sqlite" && c.SQLitePath == "" {
		p, err := localstate.DBPath()
		if err != nil {
			return fmt.Errorf("resolve default sqlite path: %w", err)
		}
		c.SQLitePath = p
	}

	allowedDB := map[string]bool{"sqlite": true, "memory": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST out of range: %d", c.BcryptCost)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with FINWISE_
// Example: FINWISE_HTTP_PORT, FINWISE_DB_DRIVER
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("FINWISE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("sqlite_path", cfg.SQLitePath).
		Bool("seed_sample_data", cfg.SeedSampleData).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:    EnvTesting,
		HTTPPort:       8080,
		BuildTarget:    "local",
		DBDriver:       "memory",
		SeedSampleData: false,
		BcryptCost:     4,

		HealthProbeIntervalSeconds: 1,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
