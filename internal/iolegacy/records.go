package iolegacy

import (
	"context"
	"strings"

	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
)

// record writes one legacy row through the store.
type record func(ctx context.Context, st catalog.Store) error

// toRecord converts a row of a canonical table into a record.
func toRecord(table string, r row, latin1 bool) record {
	switch table {
	case schema.TableExpClasses:
		c := schema.ExperimentClass{
			ID:   r.id("id_exp_classe"),
			Name: r.text("name", latin1),
		}
		return func(ctx context.Context, st catalog.Store) error {
			_, err := st.CreateExpClass(ctx, c)
			return err
		}

	case schema.TableExpTypes:
		et := schema.ExperimentType{
			ID:      r.id("id_exp_type"),
			ClassID: r.ref("id_exp_classe"),
			Name:    r.text("name", latin1),
		}
		return func(ctx context.Context, st catalog.Store) error {
			_, err := st.CreateExpType(ctx, et)
			return err
		}

	case schema.TableCompTypes:
		ct := schema.CompositionType{
			ID:   r.id("id_comp_type"),
			Type: r.text("type", latin1),
		}
		return func(ctx context.Context, st catalog.Store) error {
			_, err := st.CreateCompType(ctx, ct)
			return err
		}

	case schema.TableAuthors:
		a := schema.Author{
			ID:   r.id("id_author"),
			Name: r.text("name", latin1),
		}
		return func(ctx context.Context, st catalog.Store) error {
			_, err := st.CreateAuthor(ctx, a)
			return err
		}

	case schema.TableSources:
		src := schema.Source{
			ID:   r.id("id_source"),
			Name: r.text("name", latin1),
		}
		return func(ctx context.Context, st catalog.Store) error {
			_, err := st.CreateSource(ctx, src)
			return err
		}

	case schema.TableEntries:
		e := schema.Entry{
			Code:          r.text("id_code", latin1),
			ExpTypeID:     r.ref("id_exp_type"),
			CompTypeID:    r.ref("id_comp_type"),
			Header:        r.text("header", latin1),
			AccessionDate: r.text("accession_date", latin1),
			Compound:      r.text("compound", latin1),
			Resolution:    r.float("resolution"),
		}
		return func(ctx context.Context, st catalog.Store) error {
			_, err := st.CreateEntry(ctx, e)
			return err
		}

	case schema.TableSequences:
		seq := schema.Sequence{
			Code: r.text("id_code", latin1),
			// chain ids padded with spaces in the dumps
			Chain:    strings.ReplaceAll(r.text("chain", latin1), " ", ""),
			Sequence: r.text("sequence", latin1),
			Header:   r.text("header", latin1),
		}
		return func(ctx context.Context, st catalog.Store) error {
			_, err := st.CreateSequence(ctx, seq)
			return err
		}

	case schema.TableAuthorHasEntry:
		id, code := r.id("id_author"), r.text("id_code", latin1)
		return func(ctx context.Context, st catalog.Store) error {
			return st.LinkAuthor(ctx, id, code)
		}

	case schema.TableEntryHasSource:
		es := schema.EntryHasSource{
			ID:       r.id("id"),
			Code:     r.text("id_code", latin1),
			SourceID: r.id("id_source"),
		}
		return func(ctx context.Context, st catalog.Store) error {
			_, err := st.LinkSource(ctx, es)
			return err
		}
	}
	return nil
}
