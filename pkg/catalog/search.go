package catalog

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
)

// SearchField is a text column that supports phrase search.
type SearchField string

const (
	SearchAuthorName     SearchField = "author"
	SearchEntryHeader    SearchField = "header"
	SearchEntryCompound  SearchField = "compound"
	SearchSourceName     SearchField = "source"
	SearchSequenceHeader SearchField = "sequence"
)

// SearchFields returns all searchable fields.
func SearchFields() []SearchField {
	return []SearchField{
		SearchAuthorName,
		SearchEntryHeader,
		SearchEntryCompound,
		SearchSourceName,
		SearchSequenceHeader,
	}
}

// ParseSearchField converts a field name to SearchField.
func ParseSearchField(s string) (SearchField, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range SearchFields() {
		if string(f) == s {
			return f, nil
		}
	}
	var names []string
	for _, f := range SearchFields() {
		names = append(names, string(f))
	}
	msg := "Unknown search field <em>%s</em>, use one of: %s"
	return "", &gn.Error{
		Code: errcode.StoreSearchFieldError,
		Msg:  msg,
		Vars: []any{s, strings.Join(names, ", ")},
		Err:  fmt.Errorf("unknown search field %q", s),
	}
}

// Table returns the canonical table and column of the field.
func (f SearchField) Table() (table, column string) {
	switch f {
	case SearchAuthorName:
		return schema.TableAuthors, "name"
	case SearchEntryHeader:
		return schema.TableEntries, "header"
	case SearchEntryCompound:
		return schema.TableEntries, "compound"
	case SearchSourceName:
		return schema.TableSources, "name"
	case SearchSequenceHeader:
		return schema.TableSequences, "header"
	}
	return "", ""
}

// SearchResult holds rows matched by a search. Only the slice that
// corresponds to the searched field is filled.
type SearchResult struct {
	Field     SearchField
	Phrase    string
	Authors   []schema.Author
	Entries   []schema.Entry
	Sources   []schema.Source
	Sequences []schema.Sequence
}

// Len returns the number of matched rows.
func (r SearchResult) Len() int {
	return len(r.Authors) + len(r.Entries) +
		len(r.Sources) + len(r.Sequences)
}
