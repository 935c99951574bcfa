package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"gorm.io/gorm"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes the GORM handle
// for the components (SchemaManager, catalog store, legacy importer) that
// run their own queries.
//
// Two backends exist: PostgreSQL and SQLite. Pool is only available for
// PostgreSQL and returns nil otherwise.
type Operator interface {
	// Connect opens the database described by the configuration.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases database connections.
	Close() error

	// Driver returns the backend name ("postgres" or "sqlite").
	Driver() string

	// GORM returns a GORM handle bound to the open connection.
	GORM() *gorm.DB

	// Pool returns the underlying pgxpool.Pool for PostgreSQL-specific
	// statements (extensions, sequence resets). It is nil for SQLite.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables.
	// Used during schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error
}
