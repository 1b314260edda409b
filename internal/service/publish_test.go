package service

import (
	"context"
	"errors"
	"testing"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/emrgen/glossary/internal/queue"
	"github.com/emrgen/glossary/internal/store"
	"github.com/emrgen/glossary/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingPublisher rejects every event, like a publisher whose broker is down.
type failingPublisher struct {
	attempts int
}

func (f *failingPublisher) Publish(context.Context, queue.Event) error {
	f.attempts++
	return errors.New("redis: connection refused")
}

func (f *failingPublisher) Close() error {
	return nil
}

func TestGlossaryService_PublishFailureDoesNotFailWrites(t *testing.T) {
	publisher := &failingPublisher{}
	client := NewGlossaryService(store.NewGormStore(tester.TestDB(t)), publisher)
	ctx := context.TODO()

	rest, err := client.CreateTerm(ctx, &v1.CreateTermRequest{Keyword: "REST", Description: "Representational State Transfer"})
	require.NoError(t, err)
	assert.Equal(t, "REST", rest.Term.Keyword)

	_, err = client.CreateTerm(ctx, &v1.CreateTermRequest{Keyword: "HTTP", Description: "Hypertext Transfer Protocol"})
	require.NoError(t, err)

	relation, err := client.CreateRelation(ctx, &v1.CreateRelationRequest{SourceKeyword: "REST", TargetKeyword: "HTTP"})
	require.NoError(t, err)
	assert.NotZero(t, relation.Relation.Id)

	deleted, err := client.DeleteTerm(ctx, &v1.DeleteTermRequest{Keyword: "HTTP"})
	require.NoError(t, err)
	assert.True(t, deleted.Success)

	// the changes were committed even though every event was dropped
	_, err = client.GetTerm(ctx, &v1.GetTermRequest{Keyword: "REST"})
	assert.NoError(t, err)
	relations, err := client.ListRelations(ctx, &v1.ListRelationsRequest{})
	require.NoError(t, err)
	assert.Empty(t, relations.Relations)

	assert.Equal(t, 4, publisher.attempts)
}
