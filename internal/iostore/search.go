package iostore

import (
	"context"
	"strings"

	"github.com/pdbbrowser/pdbdb/internal/iodb"
	"github.com/pdbbrowser/pdbdb/pkg/catalog"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns a phrase into a case-insensitive substring
// pattern, wildcard characters in the phrase match literally.
func likePattern(phrase string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(phrase)) + "%"
}

// lower folds a column the way strings.ToLower folds the phrase.
// SQLite's own LOWER is ASCII-only, the operator registers a Unicode
// one.
func (s *store) lower(column string) string {
	if s.db.Dialector.Name() == "sqlite" {
		return iodb.SQLiteLower + "(" + column + ")"
	}
	return "LOWER(" + column + ")"
}

func (s *store) SearchEnabled() bool {
	return s.cfg.TextSearch
}

// Search returns rows whose field contains the phrase, ignoring
// case. Results are ordered by primary key and capped by limit, or by
// the configured limit when limit is not positive.
func (s *store) Search(
	ctx context.Context,
	field catalog.SearchField,
	phrase string,
	limit int,
) (catalog.SearchResult, error) {
	res := catalog.SearchResult{Field: field, Phrase: phrase}
	if !s.cfg.TextSearch {
		return res, catalog.SearchDisabledError()
	}

	field, err := catalog.ParseSearchField(string(field))
	if err != nil {
		return res, err
	}
	res.Field = field
	table, column := field.Table()

	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return res, nil
	}
	if limit < 1 {
		limit = s.cfg.SearchLimit
	}

	q := s.db.WithContext(ctx).
		Where(s.lower(column)+" LIKE ? ESCAPE '\\'", likePattern(phrase)).
		Limit(limit)

	switch field {
	case catalog.SearchAuthorName:
		err = q.Order("id_author").Find(&res.Authors).Error
	case catalog.SearchEntryHeader, catalog.SearchEntryCompound:
		err = q.Order("id_code").Find(&res.Entries).Error
	case catalog.SearchSourceName:
		err = q.Order("id_source").Find(&res.Sources).Error
	case catalog.SearchSequenceHeader:
		err = q.Order("id_code, chain").Find(&res.Sequences).Error
	}
	if err != nil {
		return res, dbError(table, phrase, err)
	}
	return res, nil
}

// compile-time check
var _ catalog.Store = (*store)(nil)
