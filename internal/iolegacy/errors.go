package iolegacy

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
)

// ConnectionError creates an error for a legacy database that cannot
// be opened.
func ConnectionError(driver string, err error) error {
	msg := `Cannot open legacy database with driver <em>%s</em>

<em>How to fix:</em>
  1. Check the <em>--dsn</em> value, for MySQL it looks like
     <em>user:password@tcp(localhost:3306)/pdb</em>
  2. Use <em>--driver</em> mysql, pgx or sqlite`

	return &gn.Error{
		Code: errcode.LegacyConnectionError,
		Msg:  msg,
		Vars: []any{driver},
		Err:  fmt.Errorf("failed to open legacy %s database: %w", driver, err),
	}
}

// ReadError creates an error for a failure to read a legacy table.
func ReadError(table string, err error) error {
	msg := "Cannot read legacy table <em>%s</em>"

	return &gn.Error{
		Code: errcode.LegacyReadError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to read legacy table %s: %w", table, err),
	}
}

// CancelledError creates an error for an import interrupted by
// context cancellation.
func CancelledError(err error) error {
	msg := "Import was cancelled, the last batch was rolled back"

	return &gn.Error{
		Code: errcode.LegacyCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("import cancelled: %w", err),
	}
}
