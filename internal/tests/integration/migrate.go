package integration

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"training-hub/internal/infrastructure/logger"
	"training-hub/internal/infrastructure/migrator"
)

func migrationsDir() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "migrations"))
}

func ApplyMigrations(_ context.Context, dsn string) error {
	m, err := migrator.NewMigrator(migrationsDir(), dsn, logger.New("test"))
	if err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	defer func() { _ = m.Close() }()
	return m.Up()
}
