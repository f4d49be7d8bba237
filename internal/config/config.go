// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Database
	DatabasePath string // Path to SQLite file holding saved dates

	// Authentication
	APIKey string // API key for the saved-dates endpoints

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Calendar
	DefaultLang  string // id, en
	MaxRangeDays int    // largest span accepted by range conversions
	Stepping     string // block, iterative
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Stepping strategies
const (
	SteppingBlock     = "block"
	SteppingIterative = "iterative"
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Missing .env is fine; production sets env vars directly
	_ = godotenv.Load()

	cfg := &Config{}

	// Server settings
	cfg.Port = getEnvInt("PORT", 8080)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	// Database
	cfg.DatabasePath = getEnv("DATABASE_PATH", "./data/kalender.db")

	// Authentication
	cfg.APIKey = getEnv("API_KEY", "")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Calendar
	cfg.DefaultLang = getEnv("DEFAULT_LANG", "id")
	cfg.MaxRangeDays = getEnvInt("MAX_RANGE_DAYS", 90)
	cfg.Stepping = getEnv("STEPPING", SteppingBlock)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}

	// API key is required in production
	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	switch c.DefaultLang {
	case "id", "en":
	default:
		errs = append(errs, fmt.Errorf("DEFAULT_LANG must be one of: id, en; got %q", c.DefaultLang))
	}

	// A year of days is plenty for one response
	if c.MaxRangeDays < 1 || c.MaxRangeDays > 366 {
		errs = append(errs, fmt.Errorf("MAX_RANGE_DAYS must be between 1 and 366, got %d", c.MaxRangeDays))
	}

	switch c.Stepping {
	case SteppingBlock, SteppingIterative:
	default:
		errs = append(errs, fmt.Errorf("STEPPING must be one of: block, iterative; got %q", c.Stepping))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// IterativeStepping reports whether conversions should walk day by day.
func (c *Config) IterativeStepping() bool {
	return c.Stepping == SteppingIterative
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
