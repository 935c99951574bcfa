// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/db"
	"github.com/pdbbrowser/pdbdb/pkg/lifecycle"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
	cfg      *config.Config
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator, cfg *config.Config) lifecycle.SchemaManager {
	return &manager{operator: op, cfg: cfg}
}

// Create creates the catalog tables using GORM AutoMigrate and,
// on PostgreSQL, the search indexes.
func (m *manager) Create(ctx context.Context) error {
	gormDB := m.operator.GORM()
	if gormDB == nil {
		return NotConnectedError()
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}
	slog.Info("Catalog tables created",
		"driver", m.operator.Driver(),
		"tables", len(schema.Tables()),
	)

	if m.operator.Driver() == "postgres" && m.cfg.Store.TextSearch {
		if err := m.createSearchIndexes(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB := m.operator.GORM()
	if gormDB == nil {
		return NotConnectedError()
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	if m.operator.Driver() == "postgres" && m.cfg.Store.TextSearch {
		return m.createSearchIndexes(ctx)
	}
	return nil
}

// createSearchIndexes adds pg_trgm GIN indexes so that substring
// search on text columns does not scan whole tables.
func (m *manager) createSearchIndexes(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	if _, err := pool.Exec(ctx, createTrgmSQL); err != nil {
		return SearchIndexError("*", "*", err)
	}

	for _, f := range catalog.SearchFields() {
		table, column := f.Table()
		q := formatSearchIndexSQL(table, column)
		if _, err := pool.Exec(ctx, q); err != nil {
			return SearchIndexError(table, column, err)
		}
		slog.Debug("Search index ready", "table", table, "column", column)
	}

	return nil
}
