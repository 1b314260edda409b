package queue

import (
	"context"
	"time"
)

type EventKind string

const (
	TermCreated     EventKind = "term.created"
	TermUpdated     EventKind = "term.updated"
	TermDeleted     EventKind = "term.deleted"
	RelationCreated EventKind = "relation.created"
	RelationDeleted EventKind = "relation.deleted"
)

// Event announces a committed change to the glossary.
type Event struct {
	Kind       EventKind `json:"kind"`
	ID         int64     `json:"id"`
	Keyword    string    `json:"keyword,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers change events to subscribers outside the process.
type Publisher interface {
	// Publish sends the event. Callers publish only after the change is committed.
	Publish(ctx context.Context, event Event) error
	Close() error
}

func NewEvent(kind EventKind, id int64, keyword string) Event {
	return Event{
		Kind:       kind,
		ID:         id,
		Keyword:    keyword,
		OccurredAt: time.Now().UTC(),
	}
}

// NopPublisher drops every event.
type NopPublisher struct{}

func NewNop() NopPublisher {
	return NopPublisher{}
}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
