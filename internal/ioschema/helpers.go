package ioschema

import "fmt"

const createTrgmSQL = "CREATE EXTENSION IF NOT EXISTS pg_trgm"

// searchIndexName returns the name of the trigram index of a column.
func searchIndexName(table, column string) string {
	return fmt.Sprintf("idx_%s_%s_trgm", table, column)
}

// formatSearchIndexSQL formats a statement that creates a trigram
// index on the lower-cased column, matching the expression used
// by the catalog search.
func formatSearchIndexSQL(table, column string) string {
	return fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS %s ON %s USING gin (LOWER(%s) gin_trgm_ops)",
		searchIndexName(table, column), table, column,
	)
}
