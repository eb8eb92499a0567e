package integration

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgImage    = "postgres:16-alpine"
	pgDatabase = "traininghub"
	pgUser     = "hub"
	pgPassword = "hub"

	// Lifecycle tests race several deliveries at once; each holds a tx.
	poolMaxConns = 12
)

type PostgresContainer struct {
	Container *postgres.PostgresContainer
	DSN       string
	Pool      *pgxpool.Pool
}

func readyDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, host, port.Port(), pgDatabase)
}

func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	pg, err := postgres.Run(ctx, pgImage,
		postgres.WithDatabase(pgDatabase),
		postgres.WithUsername(pgUser),
		postgres.WithPassword(pgPassword),
		testcontainers.WithWaitStrategy(
			wait.ForSQL(nat.Port("5432/tcp"), "pgx", readyDSN).
				WithQuery("SELECT 1").
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("run postgres: %w", err)
	}
	pc := &PostgresContainer{Container: pg}

	if pc.DSN, err = pg.ConnectionString(ctx, "sslmode=disable"); err != nil {
		_ = pc.Close(ctx)
		return nil, fmt.Errorf("connection string: %w", err)
	}
	cfg, err := pgxpool.ParseConfig(pc.DSN)
	if err != nil {
		_ = pc.Close(ctx)
		return nil, err
	}
	cfg.MaxConns = poolMaxConns
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = time.Minute

	if pc.Pool, err = pgxpool.NewWithConfig(ctx, cfg); err != nil {
		_ = pc.Close(ctx)
		return nil, fmt.Errorf("open pool: %w", err)
	}
	return pc, nil
}

func (pc *PostgresContainer) Close(ctx context.Context) error {
	if pc.Pool != nil {
		pc.Pool.Close()
	}
	if pc.Container == nil {
		return nil
	}
	return pc.Container.Terminate(ctx)
}
