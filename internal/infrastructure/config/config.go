// Package config loads backend configuration from environment variables,
// 12-factor style. Engine settings are read once at startup and fixed for
// the process lifetime.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Engine    EngineConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8600"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// EngineConfig holds linear-algebra engine configuration.
type EngineConfig struct {
	Tolerance         float64 `envconfig:"LINALG_TOLERANCE" default:"1e-10"`
	MaxIterations     int     `envconfig:"LINALG_MAX_ITERATIONS" default:"1000"`
	StrassenThreshold int     `envconfig:"LINALG_STRASSEN_THRESHOLD" default:"100"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8600",
			Host: "0.0.0.0",
		},
		Engine: EngineConfig{
			Tolerance:         1e-10,
			MaxIterations:     1000,
			StrassenThreshold: 100,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
