//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/database"
)

var testPool *pgxpool.Pool

// TestMain starts one PostgreSQL container shared by every test in the package
func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("docspace_test"),
		postgres.WithUsername("docspace"),
		postgres.WithPassword("docspace"),
		testcontainers.WithWaitStrategyAndDeadline(2*time.Minute,
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start postgres container: %v\n", err)
		os.Exit(1)
	}

	code := func() int {
		defer func() { _ = container.Terminate(ctx) }()

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to get connection string: %v\n", err)
			return 1
		}
		if err := database.RunMigrations(ctx, dsn); err != nil {
			fmt.Fprintf(os.Stderr, "failed to migrate: %v\n", err)
			return 1
		}

		client, err := database.NewPostgresClient(ctx, dsn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
			return 1
		}
		defer client.Close()
		testPool = client.Pool()

		return m.Run()
	}()

	os.Exit(code)
}

// truncate clears all tables for test isolation
func truncate(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		"TRUNCATE TABLE room_members, group_members, share_grants, share_links, entries CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}
