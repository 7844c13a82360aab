// Package factory opens the key-value backend selected by configuration.
// It lives outside package kvstore so the backends can keep importing the
// store contract without a cycle.
package factory

import (
	"context"
	"fmt"

	"github.com/semana-app/semana/internal/config"
	"github.com/semana-app/semana/internal/kvstore"
	"github.com/semana-app/semana/internal/kvstore/fs"
	"github.com/semana-app/semana/internal/kvstore/gcs"
	"github.com/semana-app/semana/internal/kvstore/memory"
	"github.com/semana-app/semana/internal/kvstore/postgres"
	"github.com/semana-app/semana/internal/kvstore/sqlite"
)

// Open builds the store for cfg.Driver. The caller owns the returned
// store and must Close it.
func Open(ctx context.Context, cfg config.StorageConfig) (kvstore.Store, error) {
	switch cfg.Driver {
	case "memory":
		return memory.NewStore(), nil

	case "fs":
		return fs.NewStore(cfg.Path)

	case "sqlite":
		return sqlite.NewStore(ctx, cfg.Path)

	case "postgres":
		return postgres.NewStore(ctx, postgres.Config{
			DSN:             cfg.PostgresURL,
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		})

	case "gcs":
		return gcs.NewStore(ctx, cfg.GCSBucket)

	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
