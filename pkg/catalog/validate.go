package catalog

import (
	"fmt"
	"unicode/utf8"

	"github.com/pdbbrowser/pdbdb/pkg/schema"
)

// ValidateEntry checks column limits of an entry.
func ValidateEntry(e schema.Entry) error {
	if err := checkKey("entry", e.Code, "code", e.Code, schema.CodeLen); err != nil {
		return err
	}
	return firstErr(
		checkLen("entry", e.Code, "header", e.Header, schema.TextLen),
		checkLen("entry", e.Code, "accession date", e.AccessionDate, schema.AccessionDateLen),
		checkLen("entry", e.Code, "compound", e.Compound, schema.TextLen),
	)
}

// ValidateSequence checks the key and column limits of a sequence.
func ValidateSequence(s schema.Sequence) error {
	key := SequenceKey{Code: s.Code, Chain: s.Chain}
	return firstErr(
		checkKey("sequence", key, "code", s.Code, schema.CodeLen),
		checkKey("sequence", key, "chain", s.Chain, schema.ChainLen),
	)
}

func ValidateAuthor(a schema.Author) error {
	return checkLen("author", a.ID, "name", a.Name, schema.TextLen)
}

func ValidateSource(s schema.Source) error {
	return checkLen("source", s.ID, "name", s.Name, schema.TextLen)
}

func ValidateCompType(ct schema.CompositionType) error {
	return checkLen("composition type", ct.ID, "type", ct.Type, schema.CompTypeLen)
}

func ValidateExpClass(c schema.ExperimentClass) error {
	return checkLen("experiment class", c.ID, "name", c.Name, schema.ExpClassLen)
}

func ValidateExpType(et schema.ExperimentType) error {
	return checkLen("experiment type", et.ID, "name", et.Name, schema.TextLen)
}

func (k SequenceKey) String() string {
	return k.Code + "/" + k.Chain
}

func checkKey(entity string, key any, field, val string, limit int) error {
	if val == "" {
		return ConstraintError(entity, key, field+" is empty")
	}
	return checkLen(entity, key, field, val, limit)
}

func checkLen(entity string, key any, field, val string, limit int) error {
	if n := utf8.RuneCountInString(val); n > limit {
		reason := fmt.Sprintf("%s is %d characters long, limit is %d",
			field, n, limit)
		return ConstraintError(entity, key, reason)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
