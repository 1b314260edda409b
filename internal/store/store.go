package store

import (
	"context"
	"errors"

	"github.com/emrgen/glossary/internal/model"
)

var (
	// ErrTermNotFound is returned when no term has the requested keyword.
	ErrTermNotFound = errors.New("term not found")
	// ErrTermExists is returned when a keyword is already taken by another term.
	ErrTermExists = errors.New("term already exists")
	// ErrRelationNotFound is returned when no relation has the requested id.
	ErrRelationNotFound = errors.New("relation not found")
	// ErrRelationExists is returned when the same typed edge already joins the two terms.
	ErrRelationExists = errors.New("relation already exists")
	// ErrSelfRelation is returned when a relation would join a term to itself.
	ErrSelfRelation = errors.New("source and target terms cannot be the same")
)

type Store interface {
	TermStore
	RelationStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

// ListOptions bounds a list query. Zero or negative values mean no bound.
type ListOptions struct {
	Limit  int
	Offset int
}

type TermStore interface {
	// CreateTerm inserts a new term and fills in its id.
	CreateTerm(ctx context.Context, term *model.Term) error
	// GetTerm retrieves a term by keyword.
	GetTerm(ctx context.Context, keyword string) (*model.Term, error)
	// ListTerms retrieves a page of terms ordered by keyword and the total term count.
	ListTerms(ctx context.Context, opts ListOptions) ([]*model.Term, int64, error)
	// ListAllTerms retrieves every term ordered by id.
	ListAllTerms(ctx context.Context) ([]*model.Term, error)
	// UpdateTerm saves the mutable fields of a term.
	UpdateTerm(ctx context.Context, term *model.Term) error
	// DeleteTerm removes a term and every relation where it is source or target.
	DeleteTerm(ctx context.Context, id int64) error
}

type RelationStore interface {
	// CreateRelation inserts a new relation and fills in its id.
	CreateRelation(ctx context.Context, relation *model.Relation) error
	// GetRelation retrieves a relation by id.
	GetRelation(ctx context.Context, id int64) (*model.Relation, error)
	// RelationExists reports whether the typed edge already joins the two terms.
	RelationExists(ctx context.Context, sourceID, targetID int64, relationType string) (bool, error)
	// ListRelations retrieves every relation with endpoint keywords, ordered by id.
	ListRelations(ctx context.Context) ([]*model.RelationDetail, error)
	// ListTermRelations retrieves the outgoing then the incoming relations of a term.
	ListTermRelations(ctx context.Context, termID int64) ([]*model.RelationDetail, error)
	// ListAllRelations retrieves every relation ordered by id.
	ListAllRelations(ctx context.Context) ([]*model.Relation, error)
	// DeleteRelation removes a relation by id.
	DeleteRelation(ctx context.Context, id int64) error
}
