package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"go.opentelemetry.io/otel"

	"userapp/db"
	"userapp/internal/adapter/database/sqldb"
)

type Config struct {
	DSN  string
	Pool sqldb.PoolConfig
}

// ParseDSN normalises a go-sql-driver DSN: timestamps come back as time.Time
// in UTC, and UPDATE reports matched rows so an unchanged password still
// counts as updated.
func ParseDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)

	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}

	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.ClientFoundRows = true
	// golang-migrate needs this to apply a migration file in one call
	cfg.MultiStatements = true

	return cfg.FormatDSN(), nil
}

func NewDB(ctx context.Context, cfg Config) (*sqldb.DB, error) {
	dsn, err := ParseDSN(cfg.DSN)

	if err != nil {
		return nil, err
	}

	sqlDB, err := otelsql.Open("mysql", dsn,
		otelsql.WithDBSystem("mysql"),
		otelsql.WithDBName("userapp"),
		otelsql.WithTracerProvider(otel.GetTracerProvider()),
	)

	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	cfg.Pool.Apply(sqlDB)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	if err := RunMigrations(dsn); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return sqldb.New(sqlDB, squirrel.Question), nil
}

// RunMigrations uses its own handle: the golang-migrate mysql driver pins a
// connection for its lifetime and closes the whole pool with it.
func RunMigrations(dsn string) error {
	sqlDB, err := sql.Open("mysql", dsn)

	if err != nil {
		return err
	}

	driver, err := migratemysql.WithInstance(sqlDB, &migratemysql.Config{})

	if err != nil {
		sqlDB.Close()
		return fmt.Errorf("mysql migration driver: %w", err)
	}

	defer driver.Close()

	return db.RunMigrations(driver, "mysql")
}
