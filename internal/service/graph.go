package service

import (
	"context"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/emrgen/glossary/internal/model"
	"github.com/emrgen/glossary/internal/store"
)

// GetGraph returns every term as a node and every relation as an edge.
// Both sets are read in one transaction and rebuilt on every call.
func (g *GlossaryService) GetGraph(ctx context.Context, request *v1.GetGraphRequest) (*v1.GetGraphResponse, error) {
	var terms []*model.Term
	var relations []*model.Relation

	err := g.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		if terms, err = tx.ListAllTerms(ctx); err != nil {
			return err
		}
		relations, err = tx.ListAllRelations(ctx)
		return err
	})
	if err != nil {
		return nil, statusError(err)
	}

	return &v1.GetGraphResponse{Graph: assembleGraph(terms, relations)}, nil
}

func assembleGraph(terms []*model.Term, relations []*model.Relation) *v1.Graph {
	graph := &v1.Graph{
		Nodes: make([]*v1.GraphNode, 0, len(terms)),
		Edges: make([]*v1.GraphEdge, 0, len(relations)),
	}

	for _, term := range terms {
		graph.Nodes = append(graph.Nodes, &v1.GraphNode{
			Id:          term.ID,
			Keyword:     term.Keyword,
			Description: term.Description,
			Source:      term.Source,
		})
	}

	for _, relation := range relations {
		graph.Edges = append(graph.Edges, &v1.GraphEdge{
			Id:           relation.ID,
			SourceId:     relation.SourceID,
			TargetId:     relation.TargetID,
			RelationType: relation.RelationType,
			Description:  relation.Description,
		})
	}

	return graph
}
