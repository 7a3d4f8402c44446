// Package testutil provides the shared database fixture for integration
// tests. Tests that need a real database skip themselves unless
// WARUNGO_TEST_DSN points at a throwaway MySQL schema.
package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mraditya/warungo/internal/config"
	"github.com/mraditya/warungo/internal/database"
)

// DB connects to the test database named by WARUNGO_TEST_DSN, creates the
// storefront tables and empties them, and registers cleanup. It skips the
// calling test when the variable is unset.
func DB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("WARUNGO_TEST_DSN")
	if dsn == "" {
		t.Skip("WARUNGO_TEST_DSN not set; skipping database integration test")
	}

	db, err := database.NewConnection(&config.DBConfig{DSN: dsn, MaxOpenConns: 5})
	require.NoError(t, err)

	require.NoError(t, db.SetupSchema())
	require.NoError(t, db.CleanupData())

	t.Cleanup(func() {
		_ = db.CleanupData()
		_ = db.Close()
	})

	return db
}
