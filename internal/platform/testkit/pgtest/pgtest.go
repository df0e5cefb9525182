//go:build integration_pg

// Package pgtest gives integration tests a throwaway postgres via testcontainers
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"internhub/internal/platform/store"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image = "postgres:16-alpine"
	user  = "internhub"
	pass  = "internhub"
	db    = "internhub"
)

// Start runs a postgres container for the rest of the test and returns its dsn
func Start(t *testing.T) string {
	t.Helper()

	// generous, the first run pulls the image
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		Started: true,
		ContainerRequest: tc.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env:          map[string]string{"POSTGRES_USER": user, "POSTGRES_PASSWORD": pass, "POSTGRES_DB": db},
			// postgres logs ready twice, once for the init run and once for real
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
	})
	require.NoError(t, err, "start postgres")
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, port.Port(), db)
}

// Store opens a postgres only store on a fresh container
func Store(t *testing.T) *store.Store {
	t.Helper()

	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{
		AppName: "internhub-it",
		PG:      store.PGConfig{Enabled: true, URL: Start(t), MaxConns: 4},
	})
	require.NoError(t, err, "open store")
	t.Cleanup(func() { _ = st.Close(ctx) })
	return st
}
