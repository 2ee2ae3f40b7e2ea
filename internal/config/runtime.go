package config

import (
	"fmt"
	"sync"
	"time"
)

// Runtime limits
const (
	MinFleetSize     = 1
	MaxFleetSize     = 200
	MaxGenerateDelay = 10 * time.Second
)

// RuntimeConfig holds configuration values that can be changed at runtime.
// All methods are thread-safe.
type RuntimeConfig struct {
	mu            sync.RWMutex
	fleetSize     int           // 1 - 200 (default from env)
	generateDelay time.Duration // 0 - 10s (default from env)
}

// NewRuntimeConfig creates a new RuntimeConfig from the static Config.
func NewRuntimeConfig(cfg *Config) *RuntimeConfig {
	return &RuntimeConfig{
		fleetSize:     cfg.FleetSize,
		generateDelay: cfg.GenerateDelay,
	}
}

// GetFleetSize returns the number of trains generated per run.
func (rc *RuntimeConfig) GetFleetSize() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.fleetSize
}

// GetGenerateDelay returns the simulated latency before each generation run.
func (rc *RuntimeConfig) GetGenerateDelay() time.Duration {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.generateDelay
}

// SetFleetSize sets the fleet size.
// Valid range: 1 - 200
func (rc *RuntimeConfig) SetFleetSize(size int) error {
	if size < MinFleetSize || size > MaxFleetSize {
		return fmt.Errorf("fleet size must be between %d and %d, got %d", MinFleetSize, MaxFleetSize, size)
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.fleetSize = size
	return nil
}

// SetGenerateDelay sets the simulated generation latency.
// Valid range: 0 - 10s
func (rc *RuntimeConfig) SetGenerateDelay(delay time.Duration) error {
	if delay < 0 || delay > MaxGenerateDelay {
		return fmt.Errorf("generate delay must be between 0 and %s, got %s", MaxGenerateDelay, delay)
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.generateDelay = delay
	return nil
}

// RuntimeConfigSnapshot is a copy of all current values for safe reading.
type RuntimeConfigSnapshot struct {
	FleetSize     int
	GenerateDelay time.Duration
}

// Snapshot returns a point-in-time copy of all runtime config values.
func (rc *RuntimeConfig) Snapshot() RuntimeConfigSnapshot {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return RuntimeConfigSnapshot{
		FleetSize:     rc.fleetSize,
		GenerateDelay: rc.generateDelay,
	}
}
