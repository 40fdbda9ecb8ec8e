package test

import (
	"context"
	"log"

	"github.com/google/uuid"

	"userapp/internal/adapter/database/sqldb"
	"userapp/internal/adapter/database/sqlite"
)

// InitTestDB opens a private in-memory SQLite database with the user table
// migrated. The pool is pinned to one connection so every statement sees
// the same database.
func InitTestDB() *sqldb.DB {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"

	db, err := sqlite.NewDB(context.Background(), sqlite.Config{
		DSN:  dsn,
		Pool: sqldb.PoolConfig{MaxOpenConns: 1},
	})

	if err != nil {
		log.Fatal(err)
	}

	return db
}
