//go:build integration

// Package pgtest starts a throwaway PostgreSQL container with the Libris
// schema applied, for repository integration tests.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/libris/internal/platform/config"
	"github.com/taibuivan/libris/internal/platform/migration"
	platformpg "github.com/taibuivan/libris/internal/platform/postgres"
)

// Start runs PostgreSQL, applies every migration and returns a pool that is
// closed, together with the container, when the test ends.
func Start(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("libris"),
		postgres.WithUsername("libris"),
		postgres.WithPassword("libris"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, container)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, migration.RunUp(dsn, migration.Source(""), logger))

	pool, err := platformpg.NewPool(ctx, config.DatabaseConfig{URL: dsn, MaxConns: 4, MinConns: 1}, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}
