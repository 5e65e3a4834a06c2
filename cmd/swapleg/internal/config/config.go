package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats understood by the encoders.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// Config holds CLI configuration
type Config struct {
	LogLevel     string
	LogPretty    bool
	MaxPeriods   int
	OutputFormat string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("SWAPLEG_LOG_LEVEL", "info"),
		LogPretty:    getEnvAsBool("SWAPLEG_LOG_PRETTY", false),
		MaxPeriods:   getEnvAsInt("SWAPLEG_MAX_PERIODS", 600),
		OutputFormat: strings.ToLower(getEnv("SWAPLEG_OUTPUT_FORMAT", FormatJSON)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that flags and environment may override
func (c *Config) Validate() error {
	if c.MaxPeriods <= 0 {
		return fmt.Errorf("SWAPLEG_MAX_PERIODS must be positive, got %d", c.MaxPeriods)
	}
	if !IsOutputFormat(c.OutputFormat) {
		return fmt.Errorf("SWAPLEG_OUTPUT_FORMAT must be json, yaml or msgpack, got %q", c.OutputFormat)
	}
	return nil
}

// IsOutputFormat reports whether f names a supported output format.
func IsOutputFormat(f string) bool {
	switch f {
	case FormatJSON, FormatYAML, FormatMsgpack:
		return true
	}
	return false
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
