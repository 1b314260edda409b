package service

import (
	"context"
	"errors"
	"fmt"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/emrgen/glossary/internal/model"
	"github.com/emrgen/glossary/internal/queue"
	"github.com/emrgen/glossary/internal/store"
	"github.com/sirupsen/logrus"
)

var (
	_ v1.GlossaryServiceServer = (*GlossaryService)(nil)
)

// NewGlossaryService creates a new GlossaryService.
func NewGlossaryService(store store.Store, publisher queue.Publisher) *GlossaryService {
	if publisher == nil {
		publisher = queue.NewNop()
	}

	return &GlossaryService{
		store:     store,
		publisher: publisher,
	}
}

// GlossaryService serves terms, relations and the graph snapshot.
// Every operation runs inside a single store transaction.
type GlossaryService struct {
	store     store.Store
	publisher queue.Publisher
	v1.UnimplementedGlossaryServiceServer
}

// ListTerms lists terms ordered by keyword.
func (g *GlossaryService) ListTerms(ctx context.Context, request *v1.ListTermsRequest) (*v1.ListTermsResponse, error) {
	var terms []*model.Term
	var total int64

	err := g.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		terms, total, err = tx.ListTerms(ctx, store.ListOptions{
			Limit:  int(request.Limit),
			Offset: int(request.Offset),
		})
		return err
	})
	if err != nil {
		return nil, statusError(err)
	}

	termsProto := make([]*v1.Term, 0, len(terms))
	for _, term := range terms {
		termsProto = append(termsProto, termToProto(term))
	}

	return &v1.ListTermsResponse{
		Terms: termsProto,
		Total: total,
	}, nil
}

// GetTerm retrieves a term.
func (g *GlossaryService) GetTerm(ctx context.Context, request *v1.GetTermRequest) (*v1.GetTermResponse, error) {
	term, err := g.store.GetTerm(ctx, request.Keyword)
	if err != nil {
		return nil, statusError(err)
	}

	return &v1.GetTermResponse{Term: termToProto(term)}, nil
}

// CreateTerm creates a new term.
func (g *GlossaryService) CreateTerm(ctx context.Context, request *v1.CreateTermRequest) (*v1.CreateTermResponse, error) {
	term := &model.Term{
		Keyword:     request.Keyword,
		Description: request.Description,
		Source:      nonEmpty(request.Source),
	}

	err := g.store.Transaction(ctx, func(tx store.Store) error {
		if err := ensureKeywordFree(ctx, tx, term.Keyword); err != nil {
			return err
		}
		// the unique index re-checks at commit time
		return tx.CreateTerm(ctx, term)
	})
	if err != nil {
		return nil, statusError(err)
	}

	logrus.Infof("created term %d: %s", term.ID, term.Keyword)
	g.publish(ctx, queue.NewEvent(queue.TermCreated, term.ID, term.Keyword))

	return &v1.CreateTermResponse{Term: termToProto(term)}, nil
}

// UpdateTerm updates the supplied fields of a term.
func (g *GlossaryService) UpdateTerm(ctx context.Context, request *v1.UpdateTermRequest) (*v1.UpdateTermResponse, error) {
	var term *model.Term

	err := g.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		term, err = tx.GetTerm(ctx, request.Keyword)
		if err != nil {
			return err
		}

		if request.NewKeyword != nil && *request.NewKeyword != term.Keyword {
			if err := ensureKeywordFree(ctx, tx, *request.NewKeyword); err != nil {
				return err
			}
			term.Keyword = *request.NewKeyword
		}

		if request.Description != nil {
			term.Description = *request.Description
		}

		// an empty source clears it
		if request.Source != nil {
			term.Source = nonEmpty(request.Source)
		}

		return tx.UpdateTerm(ctx, term)
	})
	if err != nil {
		return nil, statusError(err)
	}

	logrus.Infof("updated term %d: %s", term.ID, term.Keyword)
	g.publish(ctx, queue.NewEvent(queue.TermUpdated, term.ID, term.Keyword))

	return &v1.UpdateTermResponse{Term: termToProto(term)}, nil
}

// DeleteTerm deletes a term together with every relation touching it.
func (g *GlossaryService) DeleteTerm(ctx context.Context, request *v1.DeleteTermRequest) (*v1.DeleteTermResponse, error) {
	var term *model.Term

	err := g.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		term, err = tx.GetTerm(ctx, request.Keyword)
		if err != nil {
			return err
		}

		return tx.DeleteTerm(ctx, term.ID)
	})
	if err != nil {
		return nil, statusError(err)
	}

	logrus.Infof("deleted term %d: %s", term.ID, term.Keyword)
	g.publish(ctx, queue.NewEvent(queue.TermDeleted, term.ID, term.Keyword))

	return &v1.DeleteTermResponse{
		Success: true,
		Message: fmt.Sprintf("Term '%s' deleted successfully", term.Keyword),
	}, nil
}

func ensureKeywordFree(ctx context.Context, tx store.Store, keyword string) error {
	_, err := tx.GetTerm(ctx, keyword)
	if err == nil {
		return fmt.Errorf("%w: %s", store.ErrTermExists, keyword)
	}
	if errors.Is(err, store.ErrTermNotFound) {
		return nil
	}
	return err
}

// publish announces a committed change. Delivery failures never fail the request.
func (g *GlossaryService) publish(ctx context.Context, event queue.Event) {
	if err := g.publisher.Publish(ctx, event); err != nil {
		logrus.Warnf("failed to publish %s event for %d: %v", event.Kind, event.ID, err)
	}
}
