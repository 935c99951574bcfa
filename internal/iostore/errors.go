package iostore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// PostgreSQL error codes of constraint failures.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgStringTooLong       = "22001"
)

// NotConnectedError creates an error for a store built on a database
// operator that is not connected.
func NotConnectedError() error {
	msg := "Catalog store requires an open database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// QueryError creates an error for a database failure that is not a
// constraint violation.
func QueryError(entity string, key any, err error) error {
	msg := "Database query about <em>%s</em> <em>%v</em> failed"

	return &gn.Error{
		Code: errcode.StoreQueryError,
		Msg:  msg,
		Vars: []any{entity, key},
		Err:  fmt.Errorf("query %s %v: %w", entity, key, err),
	}
}

// dbError converts an error returned by GORM. Errors that are already
// classified pass through. Constraint failures reported by PostgreSQL
// or SQLite become constraint violations, everything else is a query
// error.
func dbError(entity string, key any, err error) error {
	if err == nil {
		return nil
	}

	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return catalog.DuplicateKeyError(entity, key)
		case pgForeignKeyViolation:
			return catalog.ConstraintError(entity, key,
				"foreign key violation: "+pgErr.ConstraintName)
		case pgStringTooLong:
			return catalog.ConstraintError(entity, key, pgErr.Message)
		}
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		switch sqErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
			sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return catalog.DuplicateKeyError(entity, key)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return catalog.ConstraintError(entity, key,
				"foreign key violation")
		}
	}

	// drivers wrapped by database/sql adapters may lose the typed error
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return catalog.DuplicateKeyError(entity, key)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return catalog.ConstraintError(entity, key, "foreign key violation")
	}

	return QueryError(entity, key, err)
}
