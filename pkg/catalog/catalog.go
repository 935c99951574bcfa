// Package catalog defines the contract of the PDB catalog store: typed
// create/read/update/delete and foreign-key lookups over the canonical
// entities, with referential and uniqueness invariants enforced at the
// boundary.
package catalog

import (
	"context"

	"github.com/pdbbrowser/pdbdb/pkg/schema"
)

// Store provides typed access to the catalog. Every write runs in its
// own transaction unless it is issued inside RunInTx.
//
// Errors are classified with IsNotFound and IsConstraintViolation.
type Store interface {
	ExperimentClasses
	ExperimentTypes
	CompositionTypes
	Entries
	Authors
	Sources
	Sequences
	AuthorLinks
	SourceLinks
	Searcher

	// RunInTx runs fn with a Store bound to a single transaction.
	// All writes made by fn commit together, or none do when fn
	// returns an error.
	RunInTx(ctx context.Context, fn func(Store) error) error

	// Counts returns the number of rows in each canonical table.
	Counts(ctx context.Context) (map[string]int64, error)
}

// ExperimentClasses manages the top level of the experiment taxonomy.
type ExperimentClasses interface {
	GetExpClass(ctx context.Context, id int) (schema.ExperimentClass, error)
	CreateExpClass(ctx context.Context, c schema.ExperimentClass) (int, error)
	UpdateExpClass(ctx context.Context, id int, p ExpClassPatch) error
	// DeleteExpClass fails while experiment types refer to the class,
	// unless cascade is on; then the references are cleared.
	DeleteExpClass(ctx context.Context, id int) error
}

// ExperimentTypes manages experimental methods.
type ExperimentTypes interface {
	GetExpType(ctx context.Context, id int) (schema.ExperimentType, error)
	CreateExpType(ctx context.Context, et schema.ExperimentType) (int, error)
	UpdateExpType(ctx context.Context, id int, p ExpTypePatch) error
	// DeleteExpType fails while entries refer to the type, unless
	// cascade is on; then the references are cleared.
	DeleteExpType(ctx context.Context, id int) error
	ListExpTypesByClass(ctx context.Context, classID int) ([]schema.ExperimentType, error)
}

// CompositionTypes manages macromolecule composition types.
type CompositionTypes interface {
	GetCompType(ctx context.Context, id int) (schema.CompositionType, error)
	CreateCompType(ctx context.Context, ct schema.CompositionType) (int, error)
	UpdateCompType(ctx context.Context, id int, p CompTypePatch) error
	// DeleteCompType fails while entries refer to the type, unless
	// cascade is on; then the references are cleared.
	DeleteCompType(ctx context.Context, id int) error
}

// Entries manages catalog entries.
type Entries interface {
	GetEntry(ctx context.Context, code string) (schema.Entry, error)
	CreateEntry(ctx context.Context, e schema.Entry) (string, error)
	// CreateEntryBundle creates an entry together with its sequences
	// and links in one transaction.
	CreateEntryBundle(ctx context.Context, b EntryBundle) (string, error)
	UpdateEntry(ctx context.Context, code string, p EntryPatch) error
	// DeleteEntry removes an entry. With cascade its sequences and
	// links are removed in the same transaction, otherwise existing
	// dependents make the call fail with a constraint violation.
	DeleteEntry(ctx context.Context, code string, cascade bool) error
	ListEntriesByExpType(ctx context.Context, expTypeID int) ([]schema.Entry, error)
	ListEntriesByCompType(ctx context.Context, compTypeID int) ([]schema.Entry, error)
}

// Authors manages entry authors.
type Authors interface {
	GetAuthor(ctx context.Context, id int) (schema.Author, error)
	CreateAuthor(ctx context.Context, a schema.Author) (int, error)
	UpdateAuthor(ctx context.Context, id int, p AuthorPatch) error
	// DeleteAuthor fails while the author is linked to entries, unless
	// cascade is on; then the links are removed.
	DeleteAuthor(ctx context.Context, id int) error
}

// Sources manages source organisms.
type Sources interface {
	GetSource(ctx context.Context, id int) (schema.Source, error)
	CreateSource(ctx context.Context, s schema.Source) (int, error)
	UpdateSource(ctx context.Context, id int, p SourcePatch) error
	// DeleteSource fails while the source is linked to entries, unless
	// cascade is on; then the links are removed.
	DeleteSource(ctx context.Context, id int) error
}

// Sequences manages per-chain sequences of entries.
type Sequences interface {
	GetSequence(ctx context.Context, code, chain string) (schema.Sequence, error)
	CreateSequence(ctx context.Context, s schema.Sequence) (SequenceKey, error)
	UpdateSequence(ctx context.Context, code, chain string, p SequencePatch) error
	DeleteSequence(ctx context.Context, code, chain string) error
	ListSequences(ctx context.Context, code string) ([]schema.Sequence, error)
}

// AuthorLinks manages the author-entry association.
type AuthorLinks interface {
	LinkAuthor(ctx context.Context, authorID int, code string) error
	GetAuthorLink(ctx context.Context, authorID int, code string) (schema.AuthorHasEntry, error)
	UnlinkAuthor(ctx context.Context, authorID int, code string) error
	ListAuthorsByEntry(ctx context.Context, code string) ([]schema.Author, error)
	ListEntriesByAuthor(ctx context.Context, authorID int) ([]schema.Entry, error)
}

// SourceLinks manages the entry-source association. Repeated
// entry-source pairs are allowed and kept as separate rows.
type SourceLinks interface {
	LinkSource(ctx context.Context, es schema.EntryHasSource) (int, error)
	GetEntrySource(ctx context.Context, id int) (schema.EntryHasSource, error)
	UpdateEntrySource(ctx context.Context, id int, p EntrySourcePatch) error
	DeleteEntrySource(ctx context.Context, id int) error
	// UnlinkSource removes every row linking the entry to the source
	// and returns the number of removed rows.
	UnlinkSource(ctx context.Context, code string, sourceID int) (int, error)
	// ListEntrySources returns raw link rows of an entry, repeated
	// pairs included.
	ListEntrySources(ctx context.Context, code string) ([]schema.EntryHasSource, error)
	ListSourcesByEntry(ctx context.Context, code string) ([]schema.Source, error)
	ListEntriesBySource(ctx context.Context, sourceID int) ([]schema.Entry, error)
}

// Searcher finds rows by a phrase contained in a text field. The
// capability can be switched off in configuration; Search then fails
// with a SearchDisabled error.
type Searcher interface {
	SearchEnabled() bool
	Search(ctx context.Context, field SearchField, phrase string, limit int) (SearchResult, error)
}

// SequenceKey is the composite key of a sequence.
type SequenceKey struct {
	Code  string
	Chain string
}

// EntryBundle is an entry with the rows that depend on it.
type EntryBundle struct {
	Entry     schema.Entry
	Sequences []schema.Sequence
	AuthorIDs []int
	SourceIDs []int
}
