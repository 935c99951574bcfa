package iolegacy

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/text/encoding/charmap"
	_ "modernc.org/sqlite"
)

// openSource opens the legacy database with one of the registered
// database/sql drivers: "mysql", "pgx" or "sqlite".
func openSource(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, ConnectionError(driver, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, ConnectionError(driver, err)
	}
	return db, nil
}

// quoter returns identifier quoting of the driver's SQL dialect.
// Legacy names are mixed case, so they must be quoted on PostgreSQL.
func quoter(driver string) func(string) string {
	if driver == "mysql" {
		return func(s string) string {
			return "`" + strings.ReplaceAll(s, "`", "``") + "`"
		}
	}
	return func(s string) string {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
}

// row is one legacy row keyed by canonical column names. Values are
// whatever the driver returns: MySQL text protocol gives []byte for
// all types, SQLite and pgx give typed values.
type row map[string]any

func scanRow(rows *sql.Rows, cols []string) (row, error) {
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	res := make(row, len(cols))
	for i, c := range cols {
		res[c] = vals[i]
	}
	return res, nil
}

// text returns a column as UTF-8. Latin1 dumps read through a
// connection without charset conversion arrive as raw latin1 bytes,
// those are decoded. Valid UTF-8 passes unchanged.
func (r row) text(col string, latin1 bool) string {
	var s string
	switch v := r[col].(type) {
	case nil:
		return ""
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	if !latin1 || utf8.ValidString(s) {
		return s
	}
	res, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return res
}

// id returns an integer column, 0 when it is NULL or not a number.
func (r row) id(col string) int {
	switch v := r[col].(type) {
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	case []byte:
		n, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return n
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n
	}
	return 0
}

// ref returns a nullable reference. MyISAM tables store 0 for unset
// references, it is treated as NULL.
func (r row) ref(col string) *int {
	n := r.id(col)
	if n == 0 {
		return nil
	}
	return &n
}

// float returns a nullable float column.
func (r row) float(col string) *float64 {
	var f float64
	switch v := r[col].(type) {
	case nil:
		return nil
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int64:
		f = float64(v)
	case []byte, string:
		var err error
		f, err = strconv.ParseFloat(strings.TrimSpace(r.text(col, false)), 64)
		if err != nil {
			return nil
		}
	default:
		return nil
	}
	return &f
}
