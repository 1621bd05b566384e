package config

import (
	"os"
	"strconv"

	"gomonte/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Simulation SimulationConfig
	Output     OutputConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// SimulationConfig holds estimator defaults applied when a request omits them
type SimulationConfig struct {
	DefaultSamples   int
	DefaultCriterion string
	DefaultFunction  string
	Seed             uint64 // 0 means non-deterministic
}

// OutputConfig holds locations for rendered artifacts
type OutputConfig struct {
	Dir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:     loadServerConfig(),
		Simulation: loadSimulationConfig(),
		Output:     loadOutputConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadSimulationConfig() SimulationConfig {
	return SimulationConfig{
		DefaultSamples:   getEnvIntOrDefault("DEFAULT_SAMPLES", 1000),
		DefaultCriterion: getEnvOrDefault("DEFAULT_CRITERION", "minor"),
		DefaultFunction:  getEnvOrDefault("DEFAULT_FUNCTION", "gauss"),
		Seed:             getEnvUintOrDefault("SIMULATION_SEED", 0),
	}
}

func loadOutputConfig() OutputConfig {
	return OutputConfig{
		Dir: getEnvOrDefault("OUTPUT_DIR", "./out"),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	if config.Simulation.DefaultSamples <= 0 {
		return errors.ConfigInvalid("DEFAULT_SAMPLES must be a positive integer")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvUintOrDefault(key string, fallback uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseUint(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
