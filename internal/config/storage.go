package config

import (
	"fmt"
	"time"
)

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	// Driver is one of: memory, fs, sqlite, postgres, gcs.
	Driver string `env:"SEMANA_STORE_DRIVER" default:"fs"`

	// Path is the data directory for the fs driver, or the database file
	// for the sqlite driver.
	Path string `env:"SEMANA_STORE_PATH" default:"./semana-data"`

	PostgresURL string `env:"SEMANA_POSTGRES_URL"`
	GCSBucket   string `env:"SEMANA_GCS_BUCKET"`

	// Connection pool settings for the postgres driver (zero = use
	// infrastructure defaults).
	MaxOpenConns    int           `env:"SEMANA_DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `env:"SEMANA_DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `env:"SEMANA_DB_CONN_MAX_LIFETIME"`
	ConnMaxIdleTime time.Duration `env:"SEMANA_DB_CONN_MAX_IDLE_TIME"`
}

// Validate checks driver-specific requirements.
func (c *StorageConfig) Validate() error {
	switch c.Driver {
	case "memory":
	case "fs", "sqlite":
		if c.Path == "" {
			return fmt.Errorf("SEMANA_STORE_PATH is required when SEMANA_STORE_DRIVER is %q", c.Driver)
		}
	case "postgres":
		if c.PostgresURL == "" {
			return fmt.Errorf("SEMANA_POSTGRES_URL is required when SEMANA_STORE_DRIVER is 'postgres'")
		}
	case "gcs":
		if c.GCSBucket == "" {
			return fmt.Errorf("SEMANA_GCS_BUCKET is required when SEMANA_STORE_DRIVER is 'gcs'")
		}
	default:
		return fmt.Errorf("unknown SEMANA_STORE_DRIVER: %s", c.Driver)
	}
	return nil
}
