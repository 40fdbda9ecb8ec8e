package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var Migrations embed.FS

// RunMigrations applies every pending migration of the given dialect
// (sqlite, mysql or postgres) through an already opened migrate driver.
// The driver is left open: it shares its connection pool with the caller.
func RunMigrations(driver database.Driver, dialect string) error {
	source, err := iofs.New(Migrations, "migrations/"+dialect)

	if err != nil {
		return fmt.Errorf("load %s migrations: %w", dialect, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dialect, driver)

	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
