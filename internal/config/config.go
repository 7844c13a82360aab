// Package config loads binary configuration from SEMANA_-prefixed
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/semana-app/semana/internal/env"
)

// ServerConfig holds all configuration for the server binary.
type ServerConfig struct {
	HTTP          HTTPConfig
	Storage       StorageConfig
	Sync          SyncConfig
	Observability ObservabilityConfig

	ShutdownTimeout time.Duration `env:"SEMANA_SHUTDOWN_TIMEOUT" default:"10s"`

	// SeedDefaultSlots controls first-run seeding of the hourly schedule
	// slots (07:00 through 22:00).
	SeedDefaultSlots bool `env:"SEMANA_SEED_DEFAULT_SLOTS" default:"true"`
}

// LoadServerConfig loads and validates server configuration from the
// environment.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}

	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	return cfg, nil
}

// SyncCommandConfig holds all configuration for the one-shot sync binary.
type SyncCommandConfig struct {
	Storage       StorageConfig
	Observability ObservabilityConfig
}

// LoadSyncCommandConfig loads and validates sync-command configuration
// from the environment.
func LoadSyncCommandConfig() (*SyncCommandConfig, error) {
	cfg := &SyncCommandConfig{}

	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load sync config: %w", err)
	}

	return cfg, nil
}
