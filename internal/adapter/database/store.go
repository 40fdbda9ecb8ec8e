// Package database picks the user store and the kv store from configuration.
package database

import (
	"context"
	"fmt"
	"time"

	"userapp/internal/adapter/database/memory"
	"userapp/internal/adapter/database/mysql"
	"userapp/internal/adapter/database/postgres"
	pgrepository "userapp/internal/adapter/database/postgres/repository"
	"userapp/internal/adapter/database/redis"
	"userapp/internal/adapter/database/sqldb"
	"userapp/internal/adapter/database/sqldb/repository"
	"userapp/internal/adapter/database/sqlite"
	"userapp/internal/core/port"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Driver string
	URL    string
	// MaxConns caps the pool; it follows the worker count.
	MaxConns   int
	LogQueries bool
}

// OpenUserRepository connects to the configured store, applies migrations
// and returns the repository with a function that releases the pool.
func OpenUserRepository(ctx context.Context, cfg Config, telemetry port.Telemetry) (port.UserRepository, func(), error) {
	pool := sqldb.PoolConfig{
		MaxOpenConns:    cfg.MaxConns,
		MaxIdleConns:    cfg.MaxConns,
		ConnMaxLifetime: 5 * time.Minute,
	}

	switch cfg.Driver {
	case DriverSQLite:
		db, err := sqlite.NewDB(ctx, sqlite.Config{DSN: cfg.URL, Pool: pool, LogQueries: cfg.LogQueries})

		if err != nil {
			return nil, nil, err
		}

		return repository.NewUserRepository(db, telemetry), func() { db.Close() }, nil

	case DriverMySQL:
		db, err := mysql.NewDB(ctx, mysql.Config{DSN: cfg.URL, Pool: pool})

		if err != nil {
			return nil, nil, err
		}

		return repository.NewUserRepository(db, telemetry), func() { db.Close() }, nil

	case DriverPostgres:
		db, err := postgres.NewDB(ctx, postgres.Config{URL: cfg.URL, MaxConns: int32(cfg.MaxConns)})

		if err != nil {
			return nil, nil, err
		}

		return pgrepository.NewUserRepository(db.Pool, telemetry), db.Close, nil
	}

	return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// OpenKVStore returns a Redis store when addr is set, the in-memory store
// otherwise.
func OpenKVStore(addr string, poolSize int) (port.KVStore, error) {
	if addr == "" {
		return memory.NewKVStore(), nil
	}

	return redis.NewKVStore(redis.Config{
		Addr:        addr,
		PoolSize:    poolSize,
		PoolTimeout: time.Second,
	})
}
