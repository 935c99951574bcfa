// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/pdbbrowser/pdbdb/internal/iodb"
	"github.com/pdbbrowser/pdbdb/internal/ioschema"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/db"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "pdb_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It starts from defaults, applies PDBDB_DATABASE_* environment
// variables when they are set and overrides the database name to
// TestDatabaseName for safety.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if s := os.Getenv("PDBDB_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("PDBDB_DATABASE_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if s := os.Getenv("PDBDB_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("PDBDB_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SetupTempHome creates a temporary home directory for a test and
// returns a config that points to it. The directory is removed when
// the test finishes.
func SetupTempHome(t *testing.T) *config.Config {
	t.Helper()

	home := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})
	return cfg
}

// NewSQLite opens a fresh SQLite database in a temporary directory and
// creates the catalog schema in it. The connection is closed when the
// test finishes.
func NewSQLite(t *testing.T, opts ...config.Option) (db.Operator, *config.Config) {
	t.Helper()

	cfg := config.New()
	opts = append([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath(filepath.Join(t.TempDir(), "pdb.sqlite")),
	}, opts...)
	cfg.Update(opts)

	op := iodb.NewSQLiteOperator()
	ctx := context.Background()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = op.Close() })

	if err := ioschema.NewManager(op, cfg).Create(ctx); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return op, cfg
}

// NewPostgres connects to the test PostgreSQL database, drops all its
// tables and creates the catalog schema. The test is skipped in short
// mode or when the server is not reachable.
func NewPostgres(t *testing.T, opts ...config.Option) (db.Operator, *config.Config) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := GetTestConfig()
	cfg.Update(opts)

	op := iodb.NewPgxOperator()
	ctx := context.Background()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		t.Skipf("PostgreSQL is not available: %v", err)
	}
	t.Cleanup(func() { _ = op.Close() })

	if err := op.DropAllTables(ctx); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
	if err := ioschema.NewManager(op, cfg).Create(ctx); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return op, cfg
}
