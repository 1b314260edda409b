package service

import (
	"context"
	"testing"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlossaryService_GetGraph(t *testing.T) {
	client, _ := newTestService(t)

	empty, err := client.GetGraph(context.TODO(), &v1.GetGraphRequest{})
	require.NoError(t, err)
	assert.Empty(t, empty.Graph.Nodes)
	assert.Empty(t, empty.Graph.Edges)

	for _, keyword := range []string{"REST", "HTTP", "API"} {
		mustCreateTerm(t, client, keyword)
	}
	for _, pair := range [][2]string{{"REST", "HTTP"}, {"API", "REST"}, {"API", "HTTP"}} {
		_, err := client.CreateRelation(context.TODO(), &v1.CreateRelationRequest{SourceKeyword: pair[0], TargetKeyword: pair[1]})
		require.NoError(t, err)
	}

	before, err := client.GetGraph(context.TODO(), &v1.GetGraphRequest{})
	require.NoError(t, err)
	assert.Len(t, before.Graph.Nodes, 3)
	assert.Len(t, before.Graph.Edges, 3)

	_, err = client.DeleteTerm(context.TODO(), &v1.DeleteTermRequest{Keyword: "HTTP"})
	require.NoError(t, err)

	after, err := client.GetGraph(context.TODO(), &v1.GetGraphRequest{})
	require.NoError(t, err)
	assert.Len(t, after.Graph.Nodes, 2)
	require.Len(t, after.Graph.Edges, 1)

	ids := map[int64]string{}
	for _, node := range after.Graph.Nodes {
		ids[node.Id] = node.Keyword
	}
	edge := after.Graph.Edges[0]
	assert.Equal(t, "API", ids[edge.SourceId])
	assert.Equal(t, "REST", ids[edge.TargetId])
}
