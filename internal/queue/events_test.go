package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent(TermCreated, 7, "API")

	assert.Equal(t, TermCreated, event.Kind)
	assert.Equal(t, int64(7), event.ID)
	assert.Equal(t, "API", event.Keyword)
	assert.False(t, event.OccurredAt.IsZero())

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "term.created", decoded["kind"])
	assert.Equal(t, "API", decoded["keyword"])
}

func TestNopPublisher(t *testing.T) {
	var publisher Publisher = NewNop()

	assert.NoError(t, publisher.Publish(context.TODO(), NewEvent(RelationDeleted, 1, "")))
	assert.NoError(t, publisher.Close())
}
