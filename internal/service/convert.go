package service

import (
	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/emrgen/glossary/internal/model"
)

func termToProto(term *model.Term) *v1.Term {
	return &v1.Term{
		Id:          term.ID,
		Keyword:     term.Keyword,
		Description: term.Description,
		Source:      term.Source,
		CreatedAt:   term.CreatedAt,
		UpdatedAt:   term.UpdatedAt,
	}
}

func relationToProto(relation *model.RelationDetail) *v1.Relation {
	return &v1.Relation{
		Id:            relation.ID,
		SourceId:      relation.SourceID,
		TargetId:      relation.TargetID,
		RelationType:  relation.RelationType,
		Description:   relation.Description,
		SourceKeyword: relation.SourceKeyword,
		TargetKeyword: relation.TargetKeyword,
	}
}

func relationsToProto(relations []*model.RelationDetail) []*v1.Relation {
	out := make([]*v1.Relation, 0, len(relations))
	for _, relation := range relations {
		out = append(out, relationToProto(relation))
	}
	return out
}

// nonEmpty returns nil for a missing or empty optional string.
func nonEmpty(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	v := *value
	return &v
}
