package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emrgen/glossary/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateTerm(ctx context.Context, term *model.Term) error {
	err := g.db.WithContext(ctx).Create(term).Error
	if isDuplicate(err) {
		return fmt.Errorf("%w: %s", ErrTermExists, term.Keyword)
	}
	return err
}

func (g *GormStore) GetTerm(ctx context.Context, keyword string) (*model.Term, error) {
	var term model.Term
	err := g.db.WithContext(ctx).Where("keyword = ?", keyword).First(&term).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrTermNotFound, keyword)
	}
	if err != nil {
		return nil, err
	}

	return &term, nil
}

func (g *GormStore) ListTerms(ctx context.Context, opts ListOptions) ([]*model.Term, int64, error) {
	var total int64
	if err := g.db.WithContext(ctx).Model(&model.Term{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := g.db.WithContext(ctx).Order("keyword asc")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	terms := make([]*model.Term, 0)
	if err := query.Find(&terms).Error; err != nil {
		return nil, 0, err
	}

	return terms, total, nil
}

func (g *GormStore) ListAllTerms(ctx context.Context) ([]*model.Term, error) {
	terms := make([]*model.Term, 0)
	err := g.db.WithContext(ctx).Order("id asc").Find(&terms).Error
	return terms, err
}

// UpdateTerm writes keyword, description and source, including a cleared source.
func (g *GormStore) UpdateTerm(ctx context.Context, term *model.Term) error {
	res := g.db.WithContext(ctx).Model(term).Select("Keyword", "Description", "Source", "UpdatedAt").Updates(term)
	if isDuplicate(res.Error) {
		return fmt.Errorf("%w: %s", ErrTermExists, term.Keyword)
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrTermNotFound, term.Keyword)
	}

	return nil
}

// DeleteTerm removes the relations touching the term before the term itself.
// The cascade is done here rather than by a foreign key so every driver behaves the same.
func (g *GormStore) DeleteTerm(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var outgoing, incoming []int64
		if err := tx.Model(&model.Relation{}).Where("source_id = ?", id).Pluck("id", &outgoing).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Relation{}).Where("target_id = ?", id).Pluck("id", &incoming).Error; err != nil {
			return err
		}

		touching := mapset.NewThreadUnsafeSet[int64]()
		touching.Append(outgoing...)
		touching.Append(incoming...)

		if touching.Cardinality() > 0 {
			if err := tx.Where("id IN ?", touching.ToSlice()).Delete(&model.Relation{}).Error; err != nil {
				return err
			}
			logrus.Debugf("term %d: removed %d relations", id, touching.Cardinality())
		}

		res := tx.Where("id = ?", id).Delete(&model.Term{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: id %d", ErrTermNotFound, id)
		}

		return nil
	})
}

func (g *GormStore) CreateRelation(ctx context.Context, relation *model.Relation) error {
	err := g.db.WithContext(ctx).Create(relation).Error
	if isDuplicate(err) {
		return ErrRelationExists
	}
	return err
}

func (g *GormStore) GetRelation(ctx context.Context, id int64) (*model.Relation, error) {
	var relation model.Relation
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&relation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrRelationNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return &relation, nil
}

func (g *GormStore) RelationExists(ctx context.Context, sourceID, targetID int64, relationType string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.Relation{}).
		Where("source_id = ? AND target_id = ? AND relation_type = ?", sourceID, targetID, relationType).
		Count(&count).Error
	return count > 0, err
}

func (g *GormStore) ListRelations(ctx context.Context) ([]*model.RelationDetail, error) {
	relations := make([]*model.RelationDetail, 0)
	err := g.relationDetails(ctx).Order("relations.id asc").Scan(&relations).Error
	return relations, err
}

func (g *GormStore) ListTermRelations(ctx context.Context, termID int64) ([]*model.RelationDetail, error) {
	outgoing := make([]*model.RelationDetail, 0)
	err := g.relationDetails(ctx).Where("relations.source_id = ?", termID).Order("relations.id asc").Scan(&outgoing).Error
	if err != nil {
		return nil, err
	}

	incoming := make([]*model.RelationDetail, 0)
	err = g.relationDetails(ctx).Where("relations.target_id = ?", termID).Order("relations.id asc").Scan(&incoming).Error
	if err != nil {
		return nil, err
	}

	return append(outgoing, incoming...), nil
}

func (g *GormStore) ListAllRelations(ctx context.Context) ([]*model.Relation, error) {
	relations := make([]*model.Relation, 0)
	err := g.db.WithContext(ctx).Order("id asc").Find(&relations).Error
	return relations, err
}

func (g *GormStore) DeleteRelation(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Relation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrRelationNotFound, id)
	}

	return nil
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}

// relationDetails joins a relation with the keywords of both of its endpoints.
func (g *GormStore) relationDetails(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).
		Table("relations").
		Select("relations.*, s.keyword AS source_keyword, t.keyword AS target_keyword").
		Joins("JOIN terms s ON s.id = relations.source_id").
		Joins("JOIN terms t ON t.id = relations.target_id")
}

// isDuplicate reports a unique index violation. The gorm session should be
// opened with TranslateError so drivers surface gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sessions opened without TranslateError
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
