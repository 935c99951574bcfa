// Package lifecycle defines contracts of the components that prepare
// the catalog database before it is used.
package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent - safe to run multiple
// times. Config is provided during construction via NewManager.
type SchemaManager interface {
	// Create creates the catalog tables. On PostgreSQL with text search
	// enabled it also creates trigram indexes for the searchable
	// columns. Existing tables are kept; dropping them is the caller's
	// decision (see db.Operator.DropAllTables).
	Create(ctx context.Context) error

	// Migrate updates the tables to the current models without
	// dropping data.
	Migrate(ctx context.Context) error
}
