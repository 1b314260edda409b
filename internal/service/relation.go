package service

import (
	"context"
	"fmt"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/emrgen/glossary/internal/model"
	"github.com/emrgen/glossary/internal/queue"
	"github.com/emrgen/glossary/internal/store"
	"github.com/sirupsen/logrus"
)

// CreateRelation creates a typed edge between two existing, distinct terms.
func (g *GlossaryService) CreateRelation(ctx context.Context, request *v1.CreateRelationRequest) (*v1.CreateRelationResponse, error) {
	relationType := request.RelationType
	if relationType == "" {
		relationType = model.DefaultRelationType
	}

	var detail *model.RelationDetail

	err := g.store.Transaction(ctx, func(tx store.Store) error {
		source, err := tx.GetTerm(ctx, request.SourceKeyword)
		if err != nil {
			return fmt.Errorf("source %w", err)
		}

		target, err := tx.GetTerm(ctx, request.TargetKeyword)
		if err != nil {
			return fmt.Errorf("target %w", err)
		}

		if source.ID == target.ID {
			return store.ErrSelfRelation
		}

		exists, err := tx.RelationExists(ctx, source.ID, target.ID, relationType)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrRelationExists
		}

		relation := &model.Relation{
			SourceID:     source.ID,
			TargetID:     target.ID,
			RelationType: relationType,
			Description:  nonEmpty(request.Description),
		}
		if err := tx.CreateRelation(ctx, relation); err != nil {
			return err
		}

		detail = &model.RelationDetail{
			Relation:      *relation,
			SourceKeyword: source.Keyword,
			TargetKeyword: target.Keyword,
		}

		return nil
	})
	if err != nil {
		return nil, statusError(err)
	}

	logrus.Infof("created relation %d: %s -[%s]-> %s", detail.ID, detail.SourceKeyword, detail.RelationType, detail.TargetKeyword)
	g.publish(ctx, queue.NewEvent(queue.RelationCreated, detail.ID, detail.SourceKeyword))

	return &v1.CreateRelationResponse{Relation: relationToProto(detail)}, nil
}

// ListRelations lists every relation with the keywords of its endpoints.
func (g *GlossaryService) ListRelations(ctx context.Context, request *v1.ListRelationsRequest) (*v1.ListRelationsResponse, error) {
	relations, err := g.store.ListRelations(ctx)
	if err != nil {
		return nil, statusError(err)
	}

	return &v1.ListRelationsResponse{Relations: relationsToProto(relations)}, nil
}

// ListTermRelations lists the relations leaving a term followed by those arriving at it.
func (g *GlossaryService) ListTermRelations(ctx context.Context, request *v1.ListTermRelationsRequest) (*v1.ListTermRelationsResponse, error) {
	var relations []*model.RelationDetail

	err := g.store.Transaction(ctx, func(tx store.Store) error {
		term, err := tx.GetTerm(ctx, request.Keyword)
		if err != nil {
			return err
		}

		relations, err = tx.ListTermRelations(ctx, term.ID)
		return err
	})
	if err != nil {
		return nil, statusError(err)
	}

	return &v1.ListTermRelationsResponse{Relations: relationsToProto(relations)}, nil
}

// DeleteRelation deletes a single relation.
func (g *GlossaryService) DeleteRelation(ctx context.Context, request *v1.DeleteRelationRequest) (*v1.DeleteRelationResponse, error) {
	err := g.store.Transaction(ctx, func(tx store.Store) error {
		return tx.DeleteRelation(ctx, request.Id)
	})
	if err != nil {
		return nil, statusError(err)
	}

	logrus.Infof("deleted relation %d", request.Id)
	g.publish(ctx, queue.NewEvent(queue.RelationDeleted, request.Id, ""))

	return &v1.DeleteRelationResponse{
		Success: true,
		Message: fmt.Sprintf("Relation %d deleted successfully", request.Id),
	}, nil
}
