package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"go.opentelemetry.io/otel"

	"userapp/db"
	"userapp/internal/adapter/database/sqldb"
)

const driverName = "sqlite3"

type Config struct {
	DSN  string
	Pool sqldb.PoolConfig
	// LogQueries routes every statement through sqldb-logger at debug level.
	LogQueries bool
}

func NewDB(ctx context.Context, cfg Config) (*sqldb.DB, error) {
	sqlDB, err := otelsql.Open(driverName, cfg.DSN,
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName("userapp"),
		otelsql.WithTracerProvider(otel.GetTracerProvider()),
	)

	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if cfg.LogQueries {
		logger := zerolog.New(os.Stdout).Level(zerolog.DebugLevel).With().Timestamp().Logger()
		traced := sqlDB
		sqlDB = sqldblogger.OpenDriver(cfg.DSN, traced.Driver(), zerologadapter.New(logger))
		traced.Close()
	}

	cfg.Pool.Apply(sqlDB)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := RunMigrations(sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return sqldb.New(sqlDB, squirrel.Question), nil
}

// RunMigrations applies the embedded sqlite migrations on sqlDB. The handle
// stays open, which matters for in-memory databases.
func RunMigrations(sqlDB *sql.DB) error {
	driver, err := sqlite3.WithInstance(sqlDB, &sqlite3.Config{})

	if err != nil {
		return fmt.Errorf("sqlite migration driver: %w", err)
	}

	return db.RunMigrations(driver, "sqlite")
}
