package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/internal/iodb"
	"github.com/pdbbrowser/pdbdb/internal/iostore"
	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/db"
)

// connect opens the catalog database selected in the configuration.
func connect(ctx context.Context, cfg *config.Config) (db.Operator, error) {
	op, err := iodb.NewOperator(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}

	if op.Driver() == "sqlite" {
		gn.Info("Connected to SQLite: <em>%s</em>", cfg.Database.Path)
	} else {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	}
	return op, nil
}

// openStore connects to a catalog that already has its schema.
// The caller closes the returned operator.
func openStore(
	ctx context.Context,
	cfg *config.Config,
) (db.Operator, catalog.Store, error) {
	op, err := connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	hasTables, err := op.HasTables(ctx)
	if err == nil && !hasTables {
		err = iodb.EmptyDatabaseError(op.Driver(), databaseName(cfg))
	}
	if err != nil {
		_ = op.Close()
		return nil, nil, err
	}

	st, err := iostore.New(op, cfg.Store)
	if err != nil {
		_ = op.Close()
		return nil, nil, err
	}
	return op, st, nil
}

func databaseName(cfg *config.Config) string {
	if cfg.Database.Driver == "sqlite" {
		return cfg.Database.Path
	}
	return cfg.Database.Database
}
