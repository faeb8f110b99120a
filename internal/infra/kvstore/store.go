// Package kvstore is the flat key-value layer under every collection. Values
// are opaque JSON blobs addressed by a fixed key per collection.
package kvstore

import (
	"context"
	"log/slog"

	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/pkg/errs"
)

type Store interface {
	// Get returns found=false for an absent key.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Open connects the backend selected by cfg.Store.Driver.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.Store.Driver {
	case DriverMemory, "":
		logger.Info("using in-memory key-value store")
		return NewMemoryStore(), nil
	case DriverSQLite:
		logger.Info("using sqlite key-value store", "path", cfg.Store.SQLitePath)
		s, err := OpenSQLite(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres:
		logger.Info("using postgres key-value store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
		s, err := OpenPostgres(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverRedis:
		logger.Info("using redis key-value store", "addr", cfg.Redis.Addr)
		s, err := OpenRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errs.Newf("unknown store driver %q", cfg.Store.Driver)
	}
}
