package testutil

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cyphera/cyphera-circles/internal/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// PostgresHarness owns a Postgres container and a pool with the schema applied.
type PostgresHarness struct {
	container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgres boots a Postgres 16 container, or reuses TEST_DATABASE_URL when set,
// and applies the embedded migrations.
func StartPostgres(ctx context.Context) (*PostgresHarness, error) {
	h := &PostgresHarness{}

	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		h.DSN = dsn
	} else {
		pgC, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("circles"),
			postgres.WithUsername("circles"),
			postgres.WithPassword("circles"),
			postgres.BasicWaitStrategies(),
		)
		if err != nil {
			return nil, fmt.Errorf("start postgres container: %w", err)
		}
		h.container = pgC

		dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			h.Close(ctx)
			return nil, fmt.Errorf("resolve connection string: %w", err)
		}
		h.DSN = dsn
	}

	cfg, err := pgxpool.ParseConfig(h.DSN)
	if err != nil {
		h.Close(ctx)
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	cfg.MaxConns = 8
	cfg.MaxConnIdleTime = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		h.Close(ctx)
		return nil, fmt.Errorf("create pool: %w", err)
	}
	h.Pool = pool

	schema, err := db.UpMigrations()
	if err != nil {
		h.Close(ctx)
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		h.Close(ctx)
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return h, nil
}

// Reset truncates every table.
func (h *PostgresHarness) Reset(ctx context.Context) error {
	_, err := h.Pool.Exec(ctx, "TRUNCATE TABLE disbursement_requests, circles")
	return err
}

// Close tears down the pool and container.
func (h *PostgresHarness) Close(ctx context.Context) {
	if h.Pool != nil {
		h.Pool.Close()
	}
	if h.container != nil {
		_ = testcontainers.TerminateContainer(h.container, testcontainers.StopContext(ctx))
	}
}
