package storage

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// EnsureSchema applies any pending embedded migrations. Safe to run on every
// start; an up-to-date schema is not an error.
func (s *Storage) EnsureSchema() error {
	driver, err := postgres.WithInstance(s.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	preVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	postVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preVersion,
		"postMigrationVersion": postVersion,
	}).Info("Storage.EnsureSchema.complete")

	return nil
}
