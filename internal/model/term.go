package model

import "time"

const (
	MaxKeywordLength     = 128
	MaxDescriptionLength = 2048
	MaxSourceLength      = 512
)

// Term is a uniquely keyed glossary entry.
// Relations point at a term by id; the term itself keeps no reference back.
type Term struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Keyword     string  `gorm:"size:128;not null;uniqueIndex:idx_terms_keyword"`
	Description string  `gorm:"size:2048;not null"`
	Source      *string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Term) TableName() string {
	return "terms"
}

// SourceValue returns the source or an empty string when it is not set.
func (t *Term) SourceValue() string {
	if t.Source == nil {
		return ""
	}
	return *t.Source
}
