// Package sqldb holds the database/sql handle shared by the SQLite and MySQL stores.
package sqldb

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
)

type DB struct {
	*sql.DB
	QueryBuilder *squirrel.StatementBuilderType
}

func New(db *sql.DB, format squirrel.PlaceholderFormat) *DB {
	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(format)

	return &DB{
		DB:           db,
		QueryBuilder: &queryBuilder,
	}
}

// PoolConfig tunes the database/sql connection pool. Zero values keep the
// database/sql defaults.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (p PoolConfig) Apply(db *sql.DB) {
	if p.MaxOpenConns > 0 {
		db.SetMaxOpenConns(p.MaxOpenConns)
	}

	if p.MaxIdleConns > 0 {
		db.SetMaxIdleConns(p.MaxIdleConns)
	}

	if p.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(p.ConnMaxLifetime)
	}
}
