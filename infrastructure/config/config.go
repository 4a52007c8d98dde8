// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	domainconfig "lucidia-engine/domain/config"
)

// Config holds the process-level settings. Grid rule parameters live in the
// domain config, selected here by the GRID_RULES variable.
type Config struct {
	Environment     string
	LogLevel        string
	GridRules       string
	DefaultGridSize int

	// RandomSeed fixes the engine's random source when non-zero; zero means
	// seed from the clock.
	RandomSeed int64
}

// LoadConfig reads configuration from environment variables with sensible
// defaults.
func LoadConfig() *Config {
	return &Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		GridRules:       getEnv("GRID_RULES", "standard"),
		DefaultGridSize: getEnvAsInt("DEFAULT_GRID_SIZE", 0),
		RandomSeed:      getEnvAsInt64("RANDOM_SEED", 0),
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("invalid environment: %q", c.Environment)
	}
	switch c.GridRules {
	case "standard", "training":
	default:
		return fmt.Errorf("invalid grid rules: %q", c.GridRules)
	}
	if c.DefaultGridSize != 0 && (c.DefaultGridSize < 2 || c.DefaultGridSize > 16) {
		return fmt.Errorf("invalid default grid size: %d", c.DefaultGridSize)
	}
	if err := c.GridConfig().Validate(); err != nil {
		return fmt.Errorf("invalid grid config: %w", err)
	}
	return nil
}

// GridConfig returns the configured domain rule set with the default grid
// size override applied. Standard rules apply in every environment unless
// the training set is opted into.
func (c *Config) GridConfig() *domainconfig.GridConfig {
	grid := domainconfig.LoadGridConfig(c.GridRules)
	if c.DefaultGridSize != 0 {
		grid.DefaultGridSize = c.DefaultGridSize
	}
	return grid
}

// NewLogger builds the process logger for the configured environment.
func (c *Config) NewLogger() (*zap.Logger, error) {
	var zapCfg zap.Config
	if c.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
