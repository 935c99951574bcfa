package iostore

import (
	"context"
	"fmt"

	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
	"gorm.io/gorm/clause"
)

const (
	authorLinkEntity = "author link"
	sourceLinkEntity = "source link"
)

func authorLinkKey(authorID int, code string) string {
	return fmt.Sprintf("%d/%s", authorID, code)
}

func (s *store) LinkAuthor(ctx context.Context, authorID int, code string) error {
	return s.write(ctx, func(tx *store) error {
		return tx.linkAuthor(ctx, authorID, code)
	})
}

func (s *store) linkAuthor(ctx context.Context, authorID int, code string) error {
	key := authorLinkKey(authorID, code)
	if err := s.checkRef(ctx, authorLinkEntity, key,
		authorEntity, &schema.Author{}, "id_author", &authorID); err != nil {
		return err
	}
	if err := s.checkEntry(ctx, authorLinkEntity, key, code); err != nil {
		return err
	}

	ok, err := s.exists(ctx, &schema.AuthorHasEntry{},
		"id_author = ? AND id_code = ?", authorID, code)
	if err != nil {
		return dbError(authorLinkEntity, key, err)
	}
	if ok {
		return catalog.DuplicateKeyError(authorLinkEntity, key)
	}

	link := schema.AuthorHasEntry{AuthorID: authorID, Code: code}
	err = s.db.WithContext(ctx).Omit(clause.Associations).Create(&link).Error
	return dbError(authorLinkEntity, key, err)
}

func (s *store) GetAuthorLink(
	ctx context.Context,
	authorID int,
	code string,
) (schema.AuthorHasEntry, error) {
	var link schema.AuthorHasEntry
	err := s.get(ctx, &link, authorLinkEntity, authorLinkKey(authorID, code),
		"id_author = ? AND id_code = ?", authorID, code)
	return link, err
}

func (s *store) UnlinkAuthor(ctx context.Context, authorID int, code string) error {
	return s.write(ctx, func(tx *store) error {
		return tx.remove(ctx, &schema.AuthorHasEntry{}, authorLinkEntity,
			authorLinkKey(authorID, code),
			"id_author = ? AND id_code = ?", authorID, code)
	})
}

// ListAuthorsByEntry returns distinct authors of an entry.
func (s *store) ListAuthorsByEntry(ctx context.Context, code string) ([]schema.Author, error) {
	sub := s.db.WithContext(ctx).Model(&schema.AuthorHasEntry{}).
		Select("id_author").Where("id_code = ?", code)
	var res []schema.Author
	err := s.db.WithContext(ctx).Where("id_author IN (?)", sub).
		Order("id_author").Find(&res).Error
	if err != nil {
		return nil, dbError(entryEntity, code, err)
	}
	return res, nil
}

// ListEntriesByAuthor returns distinct entries of an author.
func (s *store) ListEntriesByAuthor(ctx context.Context, authorID int) ([]schema.Entry, error) {
	sub := s.db.WithContext(ctx).Model(&schema.AuthorHasEntry{}).
		Select("id_code").Where("id_author = ?", authorID)
	return s.listEntries(ctx, authorEntity, authorID, "id_code IN (?)", sub)
}

func (s *store) LinkSource(ctx context.Context, es schema.EntryHasSource) (int, error) {
	var id int
	err := s.write(ctx, func(tx *store) error {
		var err error
		id, err = tx.linkSource(ctx, es)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// linkSource adds an entry-source row. Repeated pairs are accepted.
func (s *store) linkSource(ctx context.Context, es schema.EntryHasSource) (int, error) {
	key := fmt.Sprintf("%s/%d", es.Code, es.SourceID)
	if err := s.checkNewID(ctx, &schema.EntryHasSource{},
		sourceLinkEntity, "id", es.ID); err != nil {
		return 0, err
	}
	if err := s.checkSourceLink(ctx, key, es); err != nil {
		return 0, err
	}

	err := s.insert(ctx, &es, sourceLinkEntity, es.ID,
		schema.TableEntryHasSource, "id")
	if err != nil {
		return 0, err
	}
	return es.ID, nil
}

func (s *store) checkSourceLink(
	ctx context.Context,
	key any,
	es schema.EntryHasSource,
) error {
	if err := s.checkEntry(ctx, sourceLinkEntity, key, es.Code); err != nil {
		return err
	}
	return s.checkRef(ctx, sourceLinkEntity, key,
		sourceEntity, &schema.Source{}, "id_source", &es.SourceID)
}

func (s *store) checkEntry(ctx context.Context, entity string, key any, code string) error {
	ok, err := s.exists(ctx, &schema.Entry{}, "id_code = ?", code)
	if err != nil {
		return dbError(entity, key, err)
	}
	if !ok {
		return catalog.DanglingReferenceError(entity, key, entryEntity, code)
	}
	return nil
}

func (s *store) GetEntrySource(ctx context.Context, id int) (schema.EntryHasSource, error) {
	var es schema.EntryHasSource
	err := s.get(ctx, &es, sourceLinkEntity, id, "id = ?", id)
	return es, err
}

func (s *store) UpdateEntrySource(
	ctx context.Context,
	id int,
	p catalog.EntrySourcePatch,
) error {
	return s.write(ctx, func(tx *store) error {
		es, err := tx.GetEntrySource(ctx, id)
		if err != nil {
			return err
		}
		p.Apply(&es)
		if err = tx.checkSourceLink(ctx, id, es); err != nil {
			return err
		}
		err = tx.db.WithContext(ctx).Model(&schema.EntryHasSource{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"id_code":   es.Code,
				"id_source": es.SourceID,
			}).Error
		return dbError(sourceLinkEntity, id, err)
	})
}

func (s *store) DeleteEntrySource(ctx context.Context, id int) error {
	return s.write(ctx, func(tx *store) error {
		return tx.remove(ctx, &schema.EntryHasSource{}, sourceLinkEntity, id,
			"id = ?", id)
	})
}

// UnlinkSource removes all rows of the entry-source pair.
func (s *store) UnlinkSource(ctx context.Context, code string, sourceID int) (int, error) {
	key := fmt.Sprintf("%s/%d", code, sourceID)
	var num int64
	err := s.write(ctx, func(tx *store) error {
		res := tx.db.WithContext(ctx).
			Where("id_code = ? AND id_source = ?", code, sourceID).
			Delete(&schema.EntryHasSource{})
		if res.Error != nil {
			return dbError(sourceLinkEntity, key, res.Error)
		}
		if res.RowsAffected == 0 {
			return catalog.NotFoundError(sourceLinkEntity, key)
		}
		num = res.RowsAffected
		return nil
	})
	return int(num), err
}

func (s *store) ListEntrySources(
	ctx context.Context,
	code string,
) ([]schema.EntryHasSource, error) {
	var res []schema.EntryHasSource
	err := s.db.WithContext(ctx).Where("id_code = ?", code).
		Order("id").Find(&res).Error
	if err != nil {
		return nil, dbError(entryEntity, code, err)
	}
	return res, nil
}

// ListSourcesByEntry returns distinct sources of an entry, repeated
// link rows collapse to one source.
func (s *store) ListSourcesByEntry(ctx context.Context, code string) ([]schema.Source, error) {
	sub := s.db.WithContext(ctx).Model(&schema.EntryHasSource{}).
		Select("id_source").Where("id_code = ?", code)
	var res []schema.Source
	err := s.db.WithContext(ctx).Where("id_source IN (?)", sub).
		Order("id_source").Find(&res).Error
	if err != nil {
		return nil, dbError(entryEntity, code, err)
	}
	return res, nil
}

func (s *store) ListEntriesBySource(ctx context.Context, sourceID int) ([]schema.Entry, error) {
	sub := s.db.WithContext(ctx).Model(&schema.EntryHasSource{}).
		Select("id_code").Where("id_source = ?", sourceID)
	return s.listEntries(ctx, sourceEntity, sourceID, "id_code IN (?)", sub)
}
