package iostore

import (
	"context"

	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
)

const (
	authorEntity = "author"
	sourceEntity = "source"
)

func (s *store) GetAuthor(ctx context.Context, id int) (schema.Author, error) {
	var a schema.Author
	err := s.get(ctx, &a, authorEntity, id, "id_author = ?", id)
	return a, err
}

func (s *store) CreateAuthor(ctx context.Context, a schema.Author) (int, error) {
	if err := catalog.ValidateAuthor(a); err != nil {
		return 0, err
	}
	err := s.write(ctx, func(tx *store) error {
		if err := tx.checkNewID(ctx, &schema.Author{}, authorEntity,
			"id_author", a.ID); err != nil {
			return err
		}
		return tx.insert(ctx, &a, authorEntity, a.ID,
			schema.TableAuthors, "id_author")
	})
	if err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (s *store) UpdateAuthor(ctx context.Context, id int, p catalog.AuthorPatch) error {
	return s.write(ctx, func(tx *store) error {
		a, err := tx.GetAuthor(ctx, id)
		if err != nil {
			return err
		}
		p.Apply(&a)
		if err = catalog.ValidateAuthor(a); err != nil {
			return err
		}
		err = tx.db.WithContext(ctx).Model(&schema.Author{}).
			Where("id_author = ?", id).
			Update("name", a.Name).Error
		return dbError(authorEntity, id, err)
	})
}

func (s *store) DeleteAuthor(ctx context.Context, id int) error {
	return s.write(ctx, func(tx *store) error {
		if _, err := tx.GetAuthor(ctx, id); err != nil {
			return err
		}
		deps := []dependent{
			{name: "author link", model: &schema.AuthorHasEntry{}, column: "id_author"},
		}
		if err := tx.release(ctx, authorEntity, id, tx.cfg.Cascade, deps); err != nil {
			return err
		}
		return tx.remove(ctx, &schema.Author{}, authorEntity, id,
			"id_author = ?", id)
	})
}

func (s *store) GetSource(ctx context.Context, id int) (schema.Source, error) {
	var src schema.Source
	err := s.get(ctx, &src, sourceEntity, id, "id_source = ?", id)
	return src, err
}

func (s *store) CreateSource(ctx context.Context, src schema.Source) (int, error) {
	if err := catalog.ValidateSource(src); err != nil {
		return 0, err
	}
	err := s.write(ctx, func(tx *store) error {
		if err := tx.checkNewID(ctx, &schema.Source{}, sourceEntity,
			"id_source", src.ID); err != nil {
			return err
		}
		return tx.insert(ctx, &src, sourceEntity, src.ID,
			schema.TableSources, "id_source")
	})
	if err != nil {
		return 0, err
	}
	return src.ID, nil
}

func (s *store) UpdateSource(ctx context.Context, id int, p catalog.SourcePatch) error {
	return s.write(ctx, func(tx *store) error {
		src, err := tx.GetSource(ctx, id)
		if err != nil {
			return err
		}
		p.Apply(&src)
		if err = catalog.ValidateSource(src); err != nil {
			return err
		}
		err = tx.db.WithContext(ctx).Model(&schema.Source{}).
			Where("id_source = ?", id).
			Update("name", src.Name).Error
		return dbError(sourceEntity, id, err)
	})
}

func (s *store) DeleteSource(ctx context.Context, id int) error {
	return s.write(ctx, func(tx *store) error {
		if _, err := tx.GetSource(ctx, id); err != nil {
			return err
		}
		deps := []dependent{
			{name: "source link", model: &schema.EntryHasSource{}, column: "id_source"},
		}
		if err := tx.release(ctx, sourceEntity, id, tx.cfg.Cascade, deps); err != nil {
			return err
		}
		return tx.remove(ctx, &schema.Source{}, sourceEntity, id,
			"id_source = ?", id)
	})
}

// checkNewID fails when an explicit surrogate id is already taken.
// Zero means the database assigns the id.
func (s *store) checkNewID(
	ctx context.Context,
	model any,
	entity, column string,
	id int,
) error {
	if id == 0 {
		return nil
	}
	ok, err := s.exists(ctx, model, column+" = ?", id)
	if err != nil {
		return dbError(entity, id, err)
	}
	if ok {
		return catalog.DuplicateKeyError(entity, id)
	}
	return nil
}
