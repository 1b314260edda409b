package server

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newGrpcClient(t *testing.T) v1.GlossaryServiceClient {
	t.Helper()

	listener := bufconn.Listen(1024 * 1024)
	grpcServer := NewGrpcServer(newTestGlossary(t), 4)
	go func() {
		_ = grpcServer.Serve(listener)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(UnaryRequestTimeInterceptor()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return v1.NewGlossaryServiceClient(conn)
}

func TestGrpc_TermLifecycle(t *testing.T) {
	client := newGrpcClient(t)
	ctx := context.TODO()

	created, err := client.CreateTerm(ctx, &v1.CreateTermRequest{Keyword: "API", Description: "Application Programming Interface"})
	require.NoError(t, err)
	assert.NotZero(t, created.Term.Id)

	_, err = client.CreateTerm(ctx, &v1.CreateTermRequest{Keyword: "API", Description: "again"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	updated, err := client.UpdateTerm(ctx, &v1.UpdateTermRequest{Keyword: "API", NewKeyword: ptr("APIv2")})
	require.NoError(t, err)
	assert.Equal(t, "APIv2", updated.Term.Keyword)

	got, err := client.GetTerm(ctx, &v1.GetTermRequest{Keyword: "APIv2"})
	require.NoError(t, err)
	assert.Equal(t, created.Term.Id, got.Term.Id)

	list, err := client.ListTerms(ctx, &v1.ListTermsRequest{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Terms, 1)

	deleted, err := client.DeleteTerm(ctx, &v1.DeleteTermRequest{Keyword: "APIv2"})
	require.NoError(t, err)
	assert.True(t, deleted.Success)
	assert.Equal(t, "Term 'APIv2' deleted successfully", deleted.Message)

	_, err = client.GetTerm(ctx, &v1.GetTermRequest{Keyword: "APIv2"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGrpc_RelationParity(t *testing.T) {
	client := newGrpcClient(t)
	ctx := context.TODO()

	for _, keyword := range []string{"REST", "HTTP"} {
		_, err := client.CreateTerm(ctx, &v1.CreateTermRequest{Keyword: keyword, Description: keyword})
		require.NoError(t, err)
	}

	created, err := client.CreateRelation(ctx, &v1.CreateRelationRequest{SourceKeyword: "REST", TargetKeyword: "HTTP", RelationType: "part_of"})
	require.NoError(t, err)
	assert.Equal(t, "REST", created.Relation.SourceKeyword)
	assert.Equal(t, "HTTP", created.Relation.TargetKeyword)

	_, err = client.CreateRelation(ctx, &v1.CreateRelationRequest{SourceKeyword: "REST", TargetKeyword: "HTTP", RelationType: "part_of"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	forTerm, err := client.ListTermRelations(ctx, &v1.ListTermRelationsRequest{Keyword: "HTTP"})
	require.NoError(t, err)
	require.Len(t, forTerm.Relations, 1)

	all, err := client.ListRelations(ctx, &v1.ListRelationsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Relations, 1)

	graph, err := client.GetGraph(ctx, &v1.GetGraphRequest{})
	require.NoError(t, err)
	assert.Len(t, graph.Graph.Nodes, 2)
	assert.Len(t, graph.Graph.Edges, 1)

	_, err = client.DeleteTerm(ctx, &v1.DeleteTermRequest{Keyword: "HTTP"})
	require.NoError(t, err)

	graph, err = client.GetGraph(ctx, &v1.GetGraphRequest{})
	require.NoError(t, err)
	assert.Len(t, graph.Graph.Nodes, 1)
	assert.Empty(t, graph.Graph.Edges)

	_, err = client.DeleteRelation(ctx, &v1.DeleteRelationRequest{Id: created.Relation.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGrpc_ValidationFailure(t *testing.T) {
	client := newGrpcClient(t)

	_, err := client.CreateTerm(context.TODO(), &v1.CreateTermRequest{Keyword: "API"})
	st := status.Convert(err)
	require.Equal(t, codes.InvalidArgument, st.Code())

	require.Len(t, st.Details(), 1)
	badRequest, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)
	require.Len(t, badRequest.GetFieldViolations(), 1)
	assert.Equal(t, "description", badRequest.GetFieldViolations()[0].GetField())


	// nothing was written
	list, err := client.ListTerms(context.TODO(), &v1.ListTermsRequest{})
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestGrpc_LookupMisses(t *testing.T) {
	client := newGrpcClient(t)
	ctx := context.TODO()
	long := strings.Repeat("a", 129)

	_, err := client.DeleteRelation(ctx, &v1.DeleteRelationRequest{Id: 0})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetTerm(ctx, &v1.GetTermRequest{Keyword: long})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.DeleteTerm(ctx, &v1.DeleteTermRequest{Keyword: long})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.ListTermRelations(ctx, &v1.ListTermRelationsRequest{Keyword: long})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.UpdateTerm(ctx, &v1.UpdateTermRequest{Keyword: long, Description: ptr("x")})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGrpc_RequestID(t *testing.T) {
	client := newGrpcClient(t)

	var header metadata.MD
	ctx := metadata.AppendToOutgoingContext(context.TODO(), requestIDHeader, "req-1")
	_, err := client.ListTerms(ctx, &v1.ListTermsRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-1"}, header.Get(requestIDHeader))

	_, err = client.ListTerms(context.TODO(), &v1.ListTermsRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Len(t, header.Get(requestIDHeader), 1)
	assert.NotEqual(t, "req-1", header.Get(requestIDHeader)[0])
}

func TestUnaryConcurrencyLimitInterceptor(t *testing.T) {
	interceptor := UnaryConcurrencyLimitInterceptor(1)
	info := &grpc.UnaryServerInfo{FullMethod: v1.GlossaryService_GetGraph_FullMethodName}

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			close(started)
			<-release
			return nil, nil
		})
		done <- err
	}()
	<-started

	// the only slot is taken, so the second call waits until its deadline
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := interceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler ran without a free slot")
		return nil, nil
	})
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))

	close(release)
	require.NoError(t, <-done)

	_, err = interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
}

func ptr(s string) *string {
	return &s
}
