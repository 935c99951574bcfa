package lifecycle

import "context"

// Importer copies a legacy-layout catalog database into the canonical
// store. Rows the store rejects are skipped and reported, they do not
// stop the import.
type Importer interface {
	Import(ctx context.Context) (ImportReport, error)
}

// ImportReport summarizes an import run.
type ImportReport struct {
	// RunID identifies the run in logs.
	RunID string

	// Variant is the legacy layout that was read.
	Variant string

	// Tables holds per-table numbers in load order.
	Tables []TableReport
}

// TableReport holds numbers of one canonical table.
type TableReport struct {
	Table   string
	Read    int
	Written int
	Skipped int
}

// Skipped returns the number of rejected rows over all tables.
func (r ImportReport) Skipped() int {
	var res int
	for _, t := range r.Tables {
		res += t.Skipped
	}
	return res
}
