package iostore

import (
	"context"

	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
	"gorm.io/gorm/clause"
)

const entryEntity = "entry"

func (s *store) GetEntry(ctx context.Context, code string) (schema.Entry, error) {
	var e schema.Entry
	err := s.get(ctx, &e, entryEntity, code, "id_code = ?", code)
	return e, err
}

func (s *store) CreateEntry(ctx context.Context, e schema.Entry) (string, error) {
	err := s.write(ctx, func(tx *store) error {
		return tx.createEntry(ctx, e)
	})
	if err != nil {
		return "", err
	}
	return e.Code, nil
}

// CreateEntryBundle writes the entry first, then its sequences,
// author links and source links. A failure at any step rolls back
// everything.
func (s *store) CreateEntryBundle(
	ctx context.Context,
	b catalog.EntryBundle,
) (string, error) {
	code := b.Entry.Code
	err := s.write(ctx, func(tx *store) error {
		if err := tx.createEntry(ctx, b.Entry); err != nil {
			return err
		}
		for _, seq := range b.Sequences {
			seq.Code = code
			if err := tx.createSequence(ctx, seq); err != nil {
				return err
			}
		}
		for _, id := range b.AuthorIDs {
			if err := tx.linkAuthor(ctx, id, code); err != nil {
				return err
			}
		}
		for _, id := range b.SourceIDs {
			es := schema.EntryHasSource{Code: code, SourceID: id}
			if _, err := tx.linkSource(ctx, es); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

func (s *store) createEntry(ctx context.Context, e schema.Entry) error {
	if err := catalog.ValidateEntry(e); err != nil {
		return err
	}

	ok, err := s.exists(ctx, &schema.Entry{}, "id_code = ?", e.Code)
	if err != nil {
		return dbError(entryEntity, e.Code, err)
	}
	if ok {
		return catalog.DuplicateKeyError(entryEntity, e.Code)
	}

	if err = s.checkEntryRefs(ctx, e); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Omit(clause.Associations).Create(&e).Error
	return dbError(entryEntity, e.Code, err)
}

func (s *store) checkEntryRefs(ctx context.Context, e schema.Entry) error {
	err := s.checkRef(ctx, entryEntity, e.Code,
		"experiment type", &schema.ExperimentType{}, "id_exp_type",
		e.ExpTypeID)
	if err != nil {
		return err
	}
	return s.checkRef(ctx, entryEntity, e.Code,
		"composition type", &schema.CompositionType{}, "id_comp_type",
		e.CompTypeID)
}

func (s *store) UpdateEntry(
	ctx context.Context,
	code string,
	p catalog.EntryPatch,
) error {
	return s.write(ctx, func(tx *store) error {
		e, err := tx.GetEntry(ctx, code)
		if err != nil {
			return err
		}
		p.Apply(&e)
		if err = catalog.ValidateEntry(e); err != nil {
			return err
		}
		if err = tx.checkEntryRefs(ctx, e); err != nil {
			return err
		}

		err = tx.db.WithContext(ctx).Model(&schema.Entry{}).
			Where("id_code = ?", code).
			Updates(map[string]any{
				"id_exp_type":    nullable(e.ExpTypeID),
				"id_comp_type":   nullable(e.CompTypeID),
				"header":         e.Header,
				"accession_date": e.AccessionDate,
				"compound":       e.Compound,
				"resolution":     nullable(e.Resolution),
			}).Error
		return dbError(entryEntity, code, err)
	})
}

func (s *store) DeleteEntry(ctx context.Context, code string, cascade bool) error {
	return s.write(ctx, func(tx *store) error {
		if _, err := tx.GetEntry(ctx, code); err != nil {
			return err
		}
		deps := []dependent{
			{name: "sequence", model: &schema.Sequence{}, column: "id_code"},
			{name: "author link", model: &schema.AuthorHasEntry{}, column: "id_code"},
			{name: "source link", model: &schema.EntryHasSource{}, column: "id_code"},
		}
		if err := tx.release(ctx, entryEntity, code, cascade, deps); err != nil {
			return err
		}
		return tx.remove(ctx, &schema.Entry{}, entryEntity, code,
			"id_code = ?", code)
	})
}

func (s *store) ListEntriesByExpType(
	ctx context.Context,
	expTypeID int,
) ([]schema.Entry, error) {
	return s.listEntries(ctx, "experiment type", expTypeID,
		"id_exp_type = ?", expTypeID)
}

func (s *store) ListEntriesByCompType(
	ctx context.Context,
	compTypeID int,
) ([]schema.Entry, error) {
	return s.listEntries(ctx, "composition type", compTypeID,
		"id_comp_type = ?", compTypeID)
}

func (s *store) listEntries(
	ctx context.Context,
	entity string, key any,
	query string, args ...any,
) ([]schema.Entry, error) {
	var res []schema.Entry
	err := s.db.WithContext(ctx).Where(query, args...).
		Order("id_code").Find(&res).Error
	if err != nil {
		return nil, dbError(entity, key, err)
	}
	return res, nil
}
