package migrator

import (
	"errors"
	"fmt"
	ports "training-hub/internal/domain/ports/output"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type Migrator struct {
	m   *migrate.Migrate
	log ports.Logger
}

func NewMigrator(migrationsPath string, dsn string, log ports.Logger) (*Migrator, error) {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrator: %w", err)
	}
	return &Migrator{m: m, log: log}, nil
}

func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.log.Info("Migrations are up to date")
			return nil
		}
		return fmt.Errorf("error applying migrations: %w", err)
	}
	version, dirty, err := m.m.Version()
	if err != nil {
		return fmt.Errorf("error reading migration version: %w", err)
	}
	m.log.Info("Migrations applied", "version", version, "dirty", dirty)
	return nil
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}
