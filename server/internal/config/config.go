package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config holds the configuration for the mock backend.
// Environment variables are parsed from the AUDIOLUX_MOCK_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8000"`

	// Store selects where settings, pattern and history live.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"audiolux-mock.db"`

	// Origins allowed to call the API from a browser.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8080,http://localhost:8000,http://localhost,https://audioluxecampus.azurewebsites.net"`

	// Health probe cadence
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"10"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults normalises the store driver and origins and rejects
// unsupported values.
func (c *Config) ResolveDefaults() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	if c.StoreDriver == "" {
		c.StoreDriver = DriverMemory
	}
	switch c.StoreDriver {
	case DriverMemory:
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}

	origins := c.AllowedOrigins[:0]
	for _, o := range c.AllowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	c.AllowedOrigins = origins

	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	return nil
}

// New creates a new Config by parsing environment variables
// Example: AUDIOLUX_MOCK_HTTP_PORT, AUDIOLUX_MOCK_STORE_DRIVER
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("AUDIOLUX_MOCK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("store_driver", cfg.StoreDriver).
		Str("sqlite_path", cfg.SQLitePath).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:               EnvTesting,
		HTTPPort:                  8000,
		StoreDriver:               DriverMemory,
		AllowedOrigins:            []string{"http://localhost:8080"},
		HealthIntervalSeconds:     1,
		HealthProbeTimeoutSeconds: 1,
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

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
