package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type restClient struct {
	t       *testing.T
	handler http.Handler
}

func newRestClient(t *testing.T) *restClient {
	return &restClient{t: t, handler: NewRestHandler(newTestGlossary(t))}
}

func (c *restClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(c.t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRest_Health(t *testing.T) {
	c := newRestClient(t)

	w := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRest_TermLifecycle(t *testing.T) {
	c := newRestClient(t)

	w := c.do(http.MethodPost, "/terms/", map[string]any{
		"keyword":     "API",
		"description": "Application Programming Interface",
		"source":      "https://en.wikipedia.org/wiki/API",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[v1.Term](t, w)
	assert.NotZero(t, created.Id)
	assert.Equal(t, "API", created.Keyword)

	w = c.do(http.MethodGet, "/terms/API", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[v1.Term](t, w)
	assert.Equal(t, created.Id, got.Id)
	assert.Equal(t, "Application Programming Interface", got.Description)
	require.NotNil(t, got.Source)
	assert.Equal(t, "https://en.wikipedia.org/wiki/API", *got.Source)

	w = c.do(http.MethodPost, "/terms/", map[string]any{"keyword": "API", "description": "again"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decode[map[string]any](t, w)["error"], "term already exists")

	w = c.do(http.MethodPut, "/terms/API", map[string]any{"keyword": "APIv2"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	renamed := decode[v1.Term](t, w)
	assert.Equal(t, "APIv2", renamed.Keyword)
	assert.Equal(t, created.Id, renamed.Id)
	assert.Equal(t, "Application Programming Interface", renamed.Description)

	w = c.do(http.MethodGet, "/terms/APIv2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodDelete, "/terms/APIv2", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = c.do(http.MethodGet, "/terms/APIv2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode[map[string]any](t, w)["error"], "term not found")
}

func TestRest_ListTerms(t *testing.T) {
	c := newRestClient(t)

	w := c.do(http.MethodGet, "/terms/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Equal(t, "0", w.Header().Get("X-Total-Count"))

	for _, keyword := range []string{"REST", "HTTP", "API"} {
		w := c.do(http.MethodPost, "/terms/", map[string]any{"keyword": keyword, "description": keyword})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = c.do(http.MethodGet, "/terms/?limit=2&offset=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-Total-Count"))
	terms := decode[[]v1.Term](t, w)
	require.Len(t, terms, 2)
	assert.Equal(t, "HTTP", terms[0].Keyword)
	assert.Equal(t, "REST", terms[1].Keyword)

	w = c.do(http.MethodGet, "/terms/?limit=many", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRest_InvalidInput(t *testing.T) {
	c := newRestClient(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		code   int
	}{
		{name: "malformed json", method: http.MethodPost, path: "/terms/", body: `{"keyword":`, code: http.StatusBadRequest},
		{name: "missing description", method: http.MethodPost, path: "/terms/", body: map[string]any{"keyword": "API"}, code: http.StatusBadRequest},
		{name: "empty description on update", method: http.MethodPut, path: "/terms/API", body: map[string]any{"description": ""}, code: http.StatusBadRequest},
		{name: "update missing term", method: http.MethodPut, path: "/terms/API", body: map[string]any{"description": "x"}, code: http.StatusNotFound},
		{name: "delete missing term", method: http.MethodDelete, path: "/terms/API", code: http.StatusNotFound},
		{name: "non numeric relation id", method: http.MethodDelete, path: "/graph/relations/abc", code: http.StatusBadRequest},
		{name: "missing relation", method: http.MethodDelete, path: "/graph/relations/42", code: http.StatusNotFound},
		{name: "zero relation id", method: http.MethodDelete, path: "/graph/relations/0", code: http.StatusNotFound},
		{name: "long keyword lookup", method: http.MethodGet, path: "/terms/" + strings.Repeat("a", 129), code: http.StatusNotFound},
		{name: "long keyword delete", method: http.MethodDelete, path: "/terms/" + strings.Repeat("a", 129), code: http.StatusNotFound},
		{name: "relations for missing term", method: http.MethodGet, path: "/graph/relations/API", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := c.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[map[string]any](t, w)["error"])
		})
	}

	w := c.do(http.MethodPost, "/terms/", map[string]any{"description": "no keyword"})
	body := decode[map[string]any](t, w)
	fields, ok := body["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "keyword", fields[0].(map[string]any)["field"])
}

func TestRest_UpdateReportsBodyField(t *testing.T) {
	c := newRestClient(t)

	w := c.do(http.MethodPost, "/terms/", map[string]any{"keyword": "API", "description": "interface"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodPut, "/terms/API", map[string]any{"keyword": ""})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	body := decode[map[string]any](t, w)
	fields, ok := body["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "keyword", fields[0].(map[string]any)["field"])
	assert.NotContains(t, body["error"], "new_keyword")
}

func TestRest_RelationScenario(t *testing.T) {
	c := newRestClient(t)

	for _, keyword := range []string{"REST", "HTTP"} {
		w := c.do(http.MethodPost, "/terms/", map[string]any{"keyword": keyword, "description": keyword + " description"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := c.do(http.MethodPost, "/graph/relations/", map[string]any{
		"source_keyword": "REST",
		"target_keyword": "HTTP",
		"relation_type":  "part_of",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	relation := decode[v1.Relation](t, w)
	assert.Equal(t, "REST", relation.SourceKeyword)
	assert.Equal(t, "HTTP", relation.TargetKeyword)
	assert.Equal(t, "part_of", relation.RelationType)

	w = c.do(http.MethodPost, "/graph/relations/", map[string]any{
		"source_keyword": "REST",
		"target_keyword": "HTTP",
		"relation_type":  "part_of",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodPost, "/graph/relations/", map[string]any{"source_keyword": "REST", "target_keyword": "REST"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/graph/relations/", map[string]any{"source_keyword": "REST", "target_keyword": "TCP"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodGet, "/graph/relations/REST", nil)
	require.Equal(t, http.StatusOK, w.Code)
	forTerm := decode[[]v1.Relation](t, w)
	require.Len(t, forTerm, 1)
	assert.Equal(t, relation.Id, forTerm[0].Id)

	w = c.do(http.MethodGet, "/graph/relations/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]v1.Relation](t, w), 1)

	w = c.do(http.MethodGet, "/graph/graph", nil)
	require.Equal(t, http.StatusOK, w.Code)
	graph := decode[v1.Graph](t, w)
	assert.Len(t, graph.Nodes, 2)
	require.Len(t, graph.Edges, 1)
	assert.Equal(t, relation.Id, graph.Edges[0].Id)

	w = c.do(http.MethodDelete, "/terms/HTTP", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = c.do(http.MethodGet, "/graph/graph", nil)
	require.Equal(t, http.StatusOK, w.Code)
	graph = decode[v1.Graph](t, w)
	assert.Len(t, graph.Nodes, 1)
	assert.Empty(t, graph.Edges)
}

func TestRest_DeleteRelation(t *testing.T) {
	c := newRestClient(t)

	for _, keyword := range []string{"REST", "HTTP"} {
		c.do(http.MethodPost, "/terms/", map[string]any{"keyword": keyword, "description": keyword})
	}
	w := c.do(http.MethodPost, "/graph/relations/", map[string]any{"source_keyword": "REST", "target_keyword": "HTTP"})
	require.Equal(t, http.StatusCreated, w.Code)
	relation := decode[v1.Relation](t, w)
	assert.Equal(t, "related", relation.RelationType)

	w = c.do(http.MethodDelete, "/graph/relations/"+strconv.FormatInt(relation.Id, 10), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = c.do(http.MethodGet, "/graph/relations/REST", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRest_Metrics(t *testing.T) {
	c := newRestClient(t)
	c.do(http.MethodGet, "/health", nil)

	w := c.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "glossary_requests_total")
}
