package model

import "time"

const (
	DefaultRelationType          = "related"
	MaxRelationTypeLength        = 64
	MaxRelationDescriptionLength = 512
)

// Relation is a directed, typed edge between two terms.
// The (SourceID, TargetID, RelationType) triple is unique.
type Relation struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	SourceID     int64   `gorm:"not null;uniqueIndex:idx_relations_edge,priority:1"`
	TargetID     int64   `gorm:"not null;uniqueIndex:idx_relations_edge,priority:2;index:idx_relations_target_id"`
	RelationType string  `gorm:"size:64;not null;default:related;uniqueIndex:idx_relations_edge,priority:3"`
	Description  *string `gorm:"size:512"`
	CreatedAt    time.Time
}

func (Relation) TableName() string {
	return "relations"
}

// RelationDetail is a relation joined with the keywords of both endpoints.
type RelationDetail struct {
	Relation
	SourceKeyword string
	TargetKeyword string
}
