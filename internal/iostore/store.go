// Package iostore implements the catalog.Store contract with GORM. It
// works with any backend provided by a db.Operator (PostgreSQL or
// SQLite).
//
// Referential and uniqueness rules are checked explicitly inside the
// write transaction, so the same errors are produced whatever the
// backend enforces. Database constraints act as a second line.
package iostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/db"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type store struct {
	db   *gorm.DB
	cfg  config.StoreConfig
	inTx bool
}

// New creates a catalog store on top of a connected operator.
func New(op db.Operator, cfg config.StoreConfig) (catalog.Store, error) {
	gormDB := op.GORM()
	if gormDB == nil {
		return nil, NotConnectedError()
	}
	if cfg.SearchLimit < 1 {
		cfg.SearchLimit = config.New().Store.SearchLimit
	}
	return &store{db: gormDB, cfg: cfg}, nil
}

// RunInTx runs fn against a store bound to one transaction.
func (s *store) RunInTx(
	ctx context.Context,
	fn func(catalog.Store) error,
) error {
	return s.write(ctx, func(tx *store) error {
		return fn(tx)
	})
}

// write runs fn in a transaction. Inside RunInTx the existing
// transaction is reused.
func (s *store) write(ctx context.Context, fn func(tx *store) error) error {
	if s.inTx {
		return fn(s)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx, cfg: s.cfg, inTx: true})
	})
}

// Counts returns the number of rows in every catalog table.
func (s *store) Counts(ctx context.Context) (map[string]int64, error) {
	res := make(map[string]int64)
	models := schema.AllModels()
	tables := schema.Tables()
	for i, m := range models {
		var num int64
		err := s.db.WithContext(ctx).Model(m).Count(&num).Error
		if err != nil {
			return nil, QueryError("table", tables[i], err)
		}
		res[tables[i]] = num
	}
	return res, nil
}

// get loads a single row into dest.
func (s *store) get(
	ctx context.Context,
	dest any,
	entity string,
	key any,
	query string,
	args ...any,
) error {
	err := s.db.WithContext(ctx).Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.NotFoundError(entity, key)
	}
	return dbError(entity, key, err)
}

// count returns the number of rows of model matching the query.
func (s *store) count(
	ctx context.Context,
	model any,
	query string,
	args ...any,
) (int64, error) {
	var num int64
	err := s.db.WithContext(ctx).Model(model).
		Where(query, args...).Count(&num).Error
	return num, err
}

// exists reports whether any row of model matches the query.
func (s *store) exists(
	ctx context.Context,
	model any,
	query string,
	args ...any,
) (bool, error) {
	num, err := s.count(ctx, model, query, args...)
	return num > 0, err
}

// checkRef fails with a dangling reference error when ref is set but
// no row of model has it.
func (s *store) checkRef(
	ctx context.Context,
	entity string, key any,
	target string, model any, column string,
	ref *int,
) error {
	if ref == nil {
		return nil
	}
	ok, err := s.exists(ctx, model, column+" = ?", *ref)
	if err != nil {
		return dbError(entity, key, err)
	}
	if !ok {
		return catalog.DanglingReferenceError(entity, key, target, *ref)
	}
	return nil
}

// dependent is a table whose rows refer to a deleted row.
type dependent struct {
	name   string
	model  any
	column string
	// nullable references are cleared on cascade, the rest are
	// deleted
	nullable bool
}

// release handles rows that depend on a row about to be deleted. If
// cascade is off any dependent fails the delete, otherwise dependents
// are removed or detached.
func (s *store) release(
	ctx context.Context,
	entity string, key any,
	cascade bool,
	deps []dependent,
) error {
	for _, d := range deps {
		num, err := s.count(ctx, d.model, d.column+" = ?", key)
		if err != nil {
			return dbError(entity, key, err)
		}
		if num == 0 {
			continue
		}
		if !cascade {
			return catalog.DependentsError(entity, key, d.name, num)
		}
	}

	if !cascade {
		return nil
	}

	for _, d := range deps {
		q := s.db.WithContext(ctx).Where(d.column+" = ?", key)
		var err error
		if d.nullable {
			err = q.Model(d.model).Update(d.column, gorm.Expr("NULL")).Error
		} else {
			err = q.Delete(d.model).Error
		}
		if err != nil {
			return dbError(entity, key, err)
		}
	}
	return nil
}

// remove deletes rows of model matching the query and fails with
// NotFound when nothing was deleted.
func (s *store) remove(
	ctx context.Context,
	model any,
	entity string, key any,
	query string, args ...any,
) error {
	res := s.db.WithContext(ctx).Where(query, args...).Delete(model)
	if res.Error != nil {
		return dbError(entity, key, res.Error)
	}
	if res.RowsAffected == 0 {
		return catalog.NotFoundError(entity, key)
	}
	return nil
}

// nullable converts an optional column value for an update map.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// insert creates a row that has a surrogate key. On PostgreSQL an
// explicit id moves the serial sequence past the largest id, so that
// later rows without id do not collide with it.
func (s *store) insert(
	ctx context.Context,
	value any,
	entity string, id int,
	table, column string,
) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(value).Error
	if err != nil {
		return dbError(entity, id, err)
	}
	if id == 0 || s.db.Dialector.Name() != "postgres" {
		return nil
	}
	q := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', '%s'), (SELECT MAX(%s) FROM %s))",
		table, column, column, table,
	)
	return dbError(entity, id, s.db.WithContext(ctx).Exec(q).Error)
}
