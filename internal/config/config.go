package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the simulator
type Config struct {
	// Core settings
	SimulatorName string
	OPCUAPort     int
	OPCUAEnabled  bool
	HealthPort    int
	LogLevel      string

	// Fleet settings
	FleetSize  int
	RandomSeed int64

	// Timing settings
	GenerateDelay      time.Duration
	RegenerateInterval time.Duration
	PublishInterval    time.Duration
}

// Load reads configuration from environment variables with defaults.
// Values from a .env file in the working directory are applied first;
// variables already set in the environment take precedence.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	cfg := &Config{
		// Core settings
		SimulatorName: getEnvOrDefault("SIMULATOR_NAME", "DepotFleet-01"),
		OPCUAPort:     getEnvAsIntOrDefault("OPCUA_PORT", 4840),
		OPCUAEnabled:  getEnvAsBoolOrDefault("OPCUA_ENABLED", true),
		HealthPort:    getEnvAsIntOrDefault("HEALTH_PORT", 8081),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),

		// Fleet settings
		FleetSize:  getEnvAsIntOrDefault("FLEET_SIZE", 25),
		RandomSeed: int64(getEnvAsIntOrDefault("RANDOM_SEED", 0)),

		// Timing settings
		GenerateDelay:      getDurationOrDefault("GENERATE_DELAY", 1*time.Second),
		RegenerateInterval: getDurationOrDefault("REGENERATE_INTERVAL", 0),
		PublishInterval:    getDurationOrDefault("PUBLISH_INTERVAL", 5*time.Second),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.FleetSize < MinFleetSize || c.FleetSize > MaxFleetSize {
		return fmt.Errorf("FLEET_SIZE must be between %d and %d, got %d", MinFleetSize, MaxFleetSize, c.FleetSize)
	}
	if c.GenerateDelay < 0 || c.GenerateDelay > MaxGenerateDelay {
		return fmt.Errorf("GENERATE_DELAY must be between 0 and %s, got %s", MaxGenerateDelay, c.GenerateDelay)
	}
	if c.PublishInterval <= 0 {
		return fmt.Errorf("PUBLISH_INTERVAL must be positive, got %s", c.PublishInterval)
	}
	if c.RegenerateInterval < 0 {
		return fmt.Errorf("REGENERATE_INTERVAL must not be negative, got %s", c.RegenerateInterval)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
