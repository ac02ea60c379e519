package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the GraphDB relay
type Config struct {
	// Server configuration
	HTTPPort int    `env:"RELAY_HTTP_PORT" envDefault:"8000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// StaticDir is served at /static when the directory exists; the
	// bundled frontend lives there.
	StaticDir string `env:"RELAY_STATIC_DIR" envDefault:"static"`

	// GraphDB configuration
	GraphDB GraphDBConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// GraphDBConfig holds the default GraphDB connection configuration.
// Requests may override the URL and repository per call.
type GraphDBConfig struct {
	URL          string        `env:"GRAPHDB_URL" envDefault:"http://localhost:7200"`
	Repository   string        `env:"GRAPHDB_REPOSITORY" envDefault:"kgsde-proj"`
	QueryTimeout time.Duration `env:"GRAPHDB_QUERY_TIMEOUT" envDefault:"30s"`
}

// TimeoutConfig holds various timeout configurations
type TimeoutConfig struct {
	ShutdownTimeout time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate server port
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	// Validate GraphDB config
	if c.GraphDB.URL == "" {
		return fmt.Errorf("graphdb URL is required")
	}
	if c.GraphDB.Repository == "" {
		return fmt.Errorf("graphdb repository is required")
	}
	if c.GraphDB.QueryTimeout <= 0 {
		return fmt.Errorf("graphdb query timeout must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
