package iostore

import (
	"context"

	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
)

const (
	expClassEntity = "experiment class"
	expTypeEntity  = "experiment type"
	compTypeEntity = "composition type"
)

func (s *store) GetExpClass(ctx context.Context, id int) (schema.ExperimentClass, error) {
	var c schema.ExperimentClass
	err := s.get(ctx, &c, expClassEntity, id, "id_exp_classe = ?", id)
	return c, err
}

func (s *store) CreateExpClass(ctx context.Context, c schema.ExperimentClass) (int, error) {
	if err := catalog.ValidateExpClass(c); err != nil {
		return 0, err
	}
	err := s.write(ctx, func(tx *store) error {
		if err := tx.checkNewID(ctx, &schema.ExperimentClass{},
			expClassEntity, "id_exp_classe", c.ID); err != nil {
			return err
		}
		return tx.insert(ctx, &c, expClassEntity, c.ID,
			schema.TableExpClasses, "id_exp_classe")
	})
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *store) UpdateExpClass(ctx context.Context, id int, p catalog.ExpClassPatch) error {
	return s.write(ctx, func(tx *store) error {
		c, err := tx.GetExpClass(ctx, id)
		if err != nil {
			return err
		}
		p.Apply(&c)
		if err = catalog.ValidateExpClass(c); err != nil {
			return err
		}
		err = tx.db.WithContext(ctx).Model(&schema.ExperimentClass{}).
			Where("id_exp_classe = ?", id).
			Update("name", c.Name).Error
		return dbError(expClassEntity, id, err)
	})
}

func (s *store) DeleteExpClass(ctx context.Context, id int) error {
	return s.write(ctx, func(tx *store) error {
		if _, err := tx.GetExpClass(ctx, id); err != nil {
			return err
		}
		deps := []dependent{
			{
				name:     "experiment type",
				model:    &schema.ExperimentType{},
				column:   "id_exp_classe",
				nullable: true,
			},
		}
		if err := tx.release(ctx, expClassEntity, id, tx.cfg.Cascade, deps); err != nil {
			return err
		}
		return tx.remove(ctx, &schema.ExperimentClass{}, expClassEntity, id,
			"id_exp_classe = ?", id)
	})
}

func (s *store) GetExpType(ctx context.Context, id int) (schema.ExperimentType, error) {
	var et schema.ExperimentType
	err := s.get(ctx, &et, expTypeEntity, id, "id_exp_type = ?", id)
	return et, err
}

func (s *store) CreateExpType(ctx context.Context, et schema.ExperimentType) (int, error) {
	if err := catalog.ValidateExpType(et); err != nil {
		return 0, err
	}
	err := s.write(ctx, func(tx *store) error {
		if err := tx.checkNewID(ctx, &schema.ExperimentType{},
			expTypeEntity, "id_exp_type", et.ID); err != nil {
			return err
		}
		if err := tx.checkRef(ctx, expTypeEntity, et.ID,
			expClassEntity, &schema.ExperimentClass{}, "id_exp_classe",
			et.ClassID); err != nil {
			return err
		}
		return tx.insert(ctx, &et, expTypeEntity, et.ID,
			schema.TableExpTypes, "id_exp_type")
	})
	if err != nil {
		return 0, err
	}
	return et.ID, nil
}

func (s *store) UpdateExpType(ctx context.Context, id int, p catalog.ExpTypePatch) error {
	return s.write(ctx, func(tx *store) error {
		et, err := tx.GetExpType(ctx, id)
		if err != nil {
			return err
		}
		p.Apply(&et)
		if err = catalog.ValidateExpType(et); err != nil {
			return err
		}
		if err = tx.checkRef(ctx, expTypeEntity, id,
			expClassEntity, &schema.ExperimentClass{}, "id_exp_classe",
			et.ClassID); err != nil {
			return err
		}
		err = tx.db.WithContext(ctx).Model(&schema.ExperimentType{}).
			Where("id_exp_type = ?", id).
			Updates(map[string]any{
				"id_exp_classe": nullable(et.ClassID),
				"name":          et.Name,
			}).Error
		return dbError(expTypeEntity, id, err)
	})
}

func (s *store) DeleteExpType(ctx context.Context, id int) error {
	return s.write(ctx, func(tx *store) error {
		if _, err := tx.GetExpType(ctx, id); err != nil {
			return err
		}
		deps := []dependent{
			{
				name:     "entry",
				model:    &schema.Entry{},
				column:   "id_exp_type",
				nullable: true,
			},
		}
		if err := tx.release(ctx, expTypeEntity, id, tx.cfg.Cascade, deps); err != nil {
			return err
		}
		return tx.remove(ctx, &schema.ExperimentType{}, expTypeEntity, id,
			"id_exp_type = ?", id)
	})
}

func (s *store) ListExpTypesByClass(
	ctx context.Context,
	classID int,
) ([]schema.ExperimentType, error) {
	var res []schema.ExperimentType
	err := s.db.WithContext(ctx).
		Where("id_exp_classe = ?", classID).
		Order("id_exp_type").Find(&res).Error
	if err != nil {
		return nil, dbError(expClassEntity, classID, err)
	}
	return res, nil
}

func (s *store) GetCompType(ctx context.Context, id int) (schema.CompositionType, error) {
	var ct schema.CompositionType
	err := s.get(ctx, &ct, compTypeEntity, id, "id_comp_type = ?", id)
	return ct, err
}

func (s *store) CreateCompType(ctx context.Context, ct schema.CompositionType) (int, error) {
	if err := catalog.ValidateCompType(ct); err != nil {
		return 0, err
	}
	err := s.write(ctx, func(tx *store) error {
		if err := tx.checkNewID(ctx, &schema.CompositionType{},
			compTypeEntity, "id_comp_type", ct.ID); err != nil {
			return err
		}
		return tx.insert(ctx, &ct, compTypeEntity, ct.ID,
			schema.TableCompTypes, "id_comp_type")
	})
	if err != nil {
		return 0, err
	}
	return ct.ID, nil
}

func (s *store) UpdateCompType(ctx context.Context, id int, p catalog.CompTypePatch) error {
	return s.write(ctx, func(tx *store) error {
		ct, err := tx.GetCompType(ctx, id)
		if err != nil {
			return err
		}
		p.Apply(&ct)
		if err = catalog.ValidateCompType(ct); err != nil {
			return err
		}
		err = tx.db.WithContext(ctx).Model(&schema.CompositionType{}).
			Where("id_comp_type = ?", id).
			Update("type", ct.Type).Error
		return dbError(compTypeEntity, id, err)
	})
}

func (s *store) DeleteCompType(ctx context.Context, id int) error {
	return s.write(ctx, func(tx *store) error {
		if _, err := tx.GetCompType(ctx, id); err != nil {
			return err
		}
		deps := []dependent{
			{
				name:     "entry",
				model:    &schema.Entry{},
				column:   "id_comp_type",
				nullable: true,
			},
		}
		if err := tx.release(ctx, compTypeEntity, id, tx.cfg.Cascade, deps); err != nil {
			return err
		}
		return tx.remove(ctx, &schema.CompositionType{}, compTypeEntity, id,
			"id_comp_type = ?", id)
	})
}
