package iostore

import (
	"context"

	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
	"gorm.io/gorm/clause"
)

const sequenceEntity = "sequence"

func (s *store) GetSequence(
	ctx context.Context,
	code, chain string,
) (schema.Sequence, error) {
	var seq schema.Sequence
	key := catalog.SequenceKey{Code: code, Chain: chain}
	err := s.get(ctx, &seq, sequenceEntity, key,
		"id_code = ? AND chain = ?", code, chain)
	return seq, err
}

func (s *store) CreateSequence(
	ctx context.Context,
	seq schema.Sequence,
) (catalog.SequenceKey, error) {
	err := s.write(ctx, func(tx *store) error {
		return tx.createSequence(ctx, seq)
	})
	if err != nil {
		return catalog.SequenceKey{}, err
	}
	return catalog.SequenceKey{Code: seq.Code, Chain: seq.Chain}, nil
}

func (s *store) createSequence(ctx context.Context, seq schema.Sequence) error {
	if err := catalog.ValidateSequence(seq); err != nil {
		return err
	}
	key := catalog.SequenceKey{Code: seq.Code, Chain: seq.Chain}

	ok, err := s.exists(ctx, &schema.Entry{}, "id_code = ?", seq.Code)
	if err != nil {
		return dbError(sequenceEntity, key, err)
	}
	if !ok {
		return catalog.DanglingReferenceError(sequenceEntity, key,
			entryEntity, seq.Code)
	}

	ok, err = s.exists(ctx, &schema.Sequence{},
		"id_code = ? AND chain = ?", seq.Code, seq.Chain)
	if err != nil {
		return dbError(sequenceEntity, key, err)
	}
	if ok {
		return catalog.DuplicateKeyError(sequenceEntity, key)
	}

	err = s.db.WithContext(ctx).Omit(clause.Associations).Create(&seq).Error
	return dbError(sequenceEntity, key, err)
}

func (s *store) UpdateSequence(
	ctx context.Context,
	code, chain string,
	p catalog.SequencePatch,
) error {
	return s.write(ctx, func(tx *store) error {
		seq, err := tx.GetSequence(ctx, code, chain)
		if err != nil {
			return err
		}
		p.Apply(&seq)
		err = tx.db.WithContext(ctx).Model(&schema.Sequence{}).
			Where("id_code = ? AND chain = ?", code, chain).
			Updates(map[string]any{
				"sequence": seq.Sequence,
				"header":   seq.Header,
			}).Error
		return dbError(sequenceEntity, catalog.SequenceKey{Code: code, Chain: chain}, err)
	})
}

func (s *store) DeleteSequence(ctx context.Context, code, chain string) error {
	key := catalog.SequenceKey{Code: code, Chain: chain}
	return s.write(ctx, func(tx *store) error {
		return tx.remove(ctx, &schema.Sequence{}, sequenceEntity, key,
			"id_code = ? AND chain = ?", code, chain)
	})
}

// ListSequences returns sequences of an entry ordered by chain.
func (s *store) ListSequences(ctx context.Context, code string) ([]schema.Sequence, error) {
	var res []schema.Sequence
	err := s.db.WithContext(ctx).Where("id_code = ?", code).
		Order("chain").Find(&res).Error
	if err != nil {
		return nil, dbError(entryEntity, code, err)
	}
	return res, nil
}
