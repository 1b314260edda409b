// Package v1 defines the messages and the gRPC service of the glossary API.
//
// Messages are plain Go structs carried by the JSON codec registered in
// codec.go; the REST facade serves the same structs.
package v1

import "time"

// Term is a glossary entry.
type Term struct {
	Id          int64     `json:"id"`
	Keyword     string    `json:"keyword"`
	Description string    `json:"description"`
	Source      *string   `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Relation is a typed edge between two terms, with the keywords of both ends.
type Relation struct {
	Id            int64   `json:"id"`
	SourceId      int64   `json:"source_id"`
	TargetId      int64   `json:"target_id"`
	RelationType  string  `json:"relation_type"`
	Description   *string `json:"description"`
	SourceKeyword string  `json:"source_keyword"`
	TargetKeyword string  `json:"target_keyword"`
}

// GraphNode is a term rendered for visualization.
type GraphNode struct {
	Id          int64   `json:"id"`
	Keyword     string  `json:"keyword"`
	Description string  `json:"description"`
	Source      *string `json:"source"`
}

// GraphEdge is a relation rendered for visualization.
type GraphEdge struct {
	Id           int64   `json:"id"`
	SourceId     int64   `json:"source_id"`
	TargetId     int64   `json:"target_id"`
	RelationType string  `json:"relation_type"`
	Description  *string `json:"description"`
}

type Graph struct {
	Nodes []*GraphNode `json:"nodes"`
	Edges []*GraphEdge `json:"edges"`
}

type ListTermsRequest struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

type ListTermsResponse struct {
	Terms []*Term `json:"terms"`
	Total int64   `json:"total"`
}

type GetTermRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

type GetTermResponse struct {
	Term *Term `json:"term"`
}

type CreateTermRequest struct {
	Keyword     string  `json:"keyword" validate:"required,max=128"`
	Description string  `json:"description" validate:"required,max=2048"`
	Source      *string `json:"source,omitempty" validate:"omitempty,max=512"`
}

type CreateTermResponse struct {
	Term *Term `json:"term"`
}

// UpdateTermRequest changes the term named by Keyword. Nil fields are left
// untouched; a supplied empty Source clears the source.
type UpdateTermRequest struct {
	Keyword     string  `json:"keyword" validate:"required"`
	NewKeyword  *string `json:"new_keyword,omitempty" validate:"omitempty,min=1,max=128"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=2048"`
	Source      *string `json:"source,omitempty" validate:"omitempty,max=512"`
}

type UpdateTermResponse struct {
	Term *Term `json:"term"`
}

type DeleteTermRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

type DeleteTermResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CreateRelationRequest struct {
	SourceKeyword string  `json:"source_keyword" validate:"required,max=128"`
	TargetKeyword string  `json:"target_keyword" validate:"required,max=128"`
	RelationType  string  `json:"relation_type" validate:"max=64"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=512"`
}

type CreateRelationResponse struct {
	Relation *Relation `json:"relation"`
}

type ListRelationsRequest struct{}

type ListRelationsResponse struct {
	Relations []*Relation `json:"relations"`
}

type ListTermRelationsRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

type ListTermRelationsResponse struct {
	Relations []*Relation `json:"relations"`
}

type DeleteRelationRequest struct {
	Id int64 `json:"id"`
}

type DeleteRelationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type GetGraphRequest struct{}

type GetGraphResponse struct {
	Graph *Graph `json:"graph"`
}
