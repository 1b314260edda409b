package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "glossary.v1.GlossaryService"

const (
	GlossaryService_ListTerms_FullMethodName         = "/" + ServiceName + "/ListTerms"
	GlossaryService_GetTerm_FullMethodName           = "/" + ServiceName + "/GetTerm"
	GlossaryService_CreateTerm_FullMethodName        = "/" + ServiceName + "/CreateTerm"
	GlossaryService_UpdateTerm_FullMethodName        = "/" + ServiceName + "/UpdateTerm"
	GlossaryService_DeleteTerm_FullMethodName        = "/" + ServiceName + "/DeleteTerm"
	GlossaryService_CreateRelation_FullMethodName    = "/" + ServiceName + "/CreateRelation"
	GlossaryService_ListRelations_FullMethodName     = "/" + ServiceName + "/ListRelations"
	GlossaryService_ListTermRelations_FullMethodName = "/" + ServiceName + "/ListTermRelations"
	GlossaryService_DeleteRelation_FullMethodName    = "/" + ServiceName + "/DeleteRelation"
	GlossaryService_GetGraph_FullMethodName          = "/" + ServiceName + "/GetGraph"
)

// GlossaryServiceServer is the server API for the glossary service.
type GlossaryServiceServer interface {
	// ListTerms lists terms ordered by keyword, one page at a time.
	ListTerms(context.Context, *ListTermsRequest) (*ListTermsResponse, error)
	// GetTerm returns the term with the given keyword.
	GetTerm(context.Context, *GetTermRequest) (*GetTermResponse, error)
	// CreateTerm creates a term with a unique keyword.
	CreateTerm(context.Context, *CreateTermRequest) (*CreateTermResponse, error)
	// UpdateTerm changes the keyword, description or source of a term.
	UpdateTerm(context.Context, *UpdateTermRequest) (*UpdateTermResponse, error)
	// DeleteTerm deletes a term and every relation touching it.
	DeleteTerm(context.Context, *DeleteTermRequest) (*DeleteTermResponse, error)
	// CreateRelation creates a typed edge between two terms.
	CreateRelation(context.Context, *CreateRelationRequest) (*CreateRelationResponse, error)
	// ListRelations lists every relation.
	ListRelations(context.Context, *ListRelationsRequest) (*ListRelationsResponse, error)
	// ListTermRelations lists the outgoing then incoming relations of a term.
	ListTermRelations(context.Context, *ListTermRelationsRequest) (*ListTermRelationsResponse, error)
	// DeleteRelation deletes a relation by id.
	DeleteRelation(context.Context, *DeleteRelationRequest) (*DeleteRelationResponse, error)
	// GetGraph returns every term and relation as graph nodes and edges.
	GetGraph(context.Context, *GetGraphRequest) (*GetGraphResponse, error)
	mustEmbedUnimplementedGlossaryServiceServer()
}

// UnimplementedGlossaryServiceServer must be embedded by server implementations.
type UnimplementedGlossaryServiceServer struct{}

func (UnimplementedGlossaryServiceServer) ListTerms(context.Context, *ListTermsRequest) (*ListTermsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTerms not implemented")
}

func (UnimplementedGlossaryServiceServer) GetTerm(context.Context, *GetTermRequest) (*GetTermResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTerm not implemented")
}

func (UnimplementedGlossaryServiceServer) CreateTerm(context.Context, *CreateTermRequest) (*CreateTermResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTerm not implemented")
}

func (UnimplementedGlossaryServiceServer) UpdateTerm(context.Context, *UpdateTermRequest) (*UpdateTermResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateTerm not implemented")
}

func (UnimplementedGlossaryServiceServer) DeleteTerm(context.Context, *DeleteTermRequest) (*DeleteTermResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteTerm not implemented")
}

func (UnimplementedGlossaryServiceServer) CreateRelation(context.Context, *CreateRelationRequest) (*CreateRelationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateRelation not implemented")
}

func (UnimplementedGlossaryServiceServer) ListRelations(context.Context, *ListRelationsRequest) (*ListRelationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRelations not implemented")
}

func (UnimplementedGlossaryServiceServer) ListTermRelations(context.Context, *ListTermRelationsRequest) (*ListTermRelationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTermRelations not implemented")
}

func (UnimplementedGlossaryServiceServer) DeleteRelation(context.Context, *DeleteRelationRequest) (*DeleteRelationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteRelation not implemented")
}

func (UnimplementedGlossaryServiceServer) GetGraph(context.Context, *GetGraphRequest) (*GetGraphResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGraph not implemented")
}

func (UnimplementedGlossaryServiceServer) mustEmbedUnimplementedGlossaryServiceServer() {}

func RegisterGlossaryServiceServer(s grpc.ServiceRegistrar, srv GlossaryServiceServer) {
	s.RegisterService(&GlossaryService_ServiceDesc, srv)
}

func _GlossaryService_ListTerms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTermsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).ListTerms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_ListTerms_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GlossaryServiceServer).ListTerms(ctx, req.(*ListTermsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_GetTerm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTermRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).GetTerm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_GetTerm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GlossaryServiceServer).GetTerm(ctx, req.(*GetTermRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_CreateTerm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTermRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).CreateTerm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_CreateTerm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GlossaryServiceServer).CreateTerm(ctx, req.(*CreateTermRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_UpdateTerm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateTermRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).UpdateTerm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_UpdateTerm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GlossaryServiceServer).UpdateTerm(ctx, req.(*UpdateTermRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_DeleteTerm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteTermRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).DeleteTerm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_DeleteTerm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GlossaryServiceServer).DeleteTerm(ctx, req.(*DeleteTermRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_CreateRelation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateRelationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).CreateRelation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_CreateRelation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GlossaryServiceServer).CreateRelation(ctx, req.(*CreateRelationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_ListRelations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRelationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).ListRelations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_ListRelations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GlossaryServiceServer).ListRelations(ctx, req.(*ListRelationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_ListTermRelations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTermRelationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).ListTermRelations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_ListTermRelations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GlossaryServiceServer).ListTermRelations(ctx, req.(*ListTermRelationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_DeleteRelation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteRelationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).DeleteRelation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_DeleteRelation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GlossaryServiceServer).DeleteRelation(ctx, req.(*DeleteRelationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_GetGraph_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGraphRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).GetGraph(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_GetGraph_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GlossaryServiceServer).GetGraph(ctx, req.(*GetGraphRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// GlossaryService_ServiceDesc is the grpc.ServiceDesc for the glossary service.
var GlossaryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GlossaryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListTerms",
			Handler:    _GlossaryService_ListTerms_Handler,
		},
		{
			MethodName: "GetTerm",
			Handler:    _GlossaryService_GetTerm_Handler,
		},
		{
			MethodName: "CreateTerm",
			Handler:    _GlossaryService_CreateTerm_Handler,
		},
		{
			MethodName: "UpdateTerm",
			Handler:    _GlossaryService_UpdateTerm_Handler,
		},
		{
			MethodName: "DeleteTerm",
			Handler:    _GlossaryService_DeleteTerm_Handler,
		},
		{
			MethodName: "CreateRelation",
			Handler:    _GlossaryService_CreateRelation_Handler,
		},
		{
			MethodName: "ListRelations",
			Handler:    _GlossaryService_ListRelations_Handler,
		},
		{
			MethodName: "ListTermRelations",
			Handler:    _GlossaryService_ListTermRelations_Handler,
		},
		{
			MethodName: "DeleteRelation",
			Handler:    _GlossaryService_DeleteRelation_Handler,
		},
		{
			MethodName: "GetGraph",
			Handler:    _GlossaryService_GetGraph_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "apis/v1/service.go",
}

// GlossaryServiceClient is the client API for the glossary service.
type GlossaryServiceClient interface {
	ListTerms(ctx context.Context, in *ListTermsRequest, opts ...grpc.CallOption) (*ListTermsResponse, error)
	GetTerm(ctx context.Context, in *GetTermRequest, opts ...grpc.CallOption) (*GetTermResponse, error)
	CreateTerm(ctx context.Context, in *CreateTermRequest, opts ...grpc.CallOption) (*CreateTermResponse, error)
	UpdateTerm(ctx context.Context, in *UpdateTermRequest, opts ...grpc.CallOption) (*UpdateTermResponse, error)
	DeleteTerm(ctx context.Context, in *DeleteTermRequest, opts ...grpc.CallOption) (*DeleteTermResponse, error)
	CreateRelation(ctx context.Context, in *CreateRelationRequest, opts ...grpc.CallOption) (*CreateRelationResponse, error)
	ListRelations(ctx context.Context, in *ListRelationsRequest, opts ...grpc.CallOption) (*ListRelationsResponse, error)
	ListTermRelations(ctx context.Context, in *ListTermRelationsRequest, opts ...grpc.CallOption) (*ListTermRelationsResponse, error)
	DeleteRelation(ctx context.Context, in *DeleteRelationRequest, opts ...grpc.CallOption) (*DeleteRelationResponse, error)
	GetGraph(ctx context.Context, in *GetGraphRequest, opts ...grpc.CallOption) (*GetGraphResponse, error)
}

type glossaryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGlossaryServiceClient returns a client that sends every call with the JSON codec.
func NewGlossaryServiceClient(cc grpc.ClientConnInterface) GlossaryServiceClient {
	return &glossaryServiceClient{cc}
}

func (c *glossaryServiceClient) ListTerms(ctx context.Context, in *ListTermsRequest, opts ...grpc.CallOption) (*ListTermsResponse, error) {
	out := new(ListTermsResponse)
	err := c.cc.Invoke(ctx, GlossaryService_ListTerms_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) GetTerm(ctx context.Context, in *GetTermRequest, opts ...grpc.CallOption) (*GetTermResponse, error) {
	out := new(GetTermResponse)
	err := c.cc.Invoke(ctx, GlossaryService_GetTerm_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) CreateTerm(ctx context.Context, in *CreateTermRequest, opts ...grpc.CallOption) (*CreateTermResponse, error) {
	out := new(CreateTermResponse)
	err := c.cc.Invoke(ctx, GlossaryService_CreateTerm_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) UpdateTerm(ctx context.Context, in *UpdateTermRequest, opts ...grpc.CallOption) (*UpdateTermResponse, error) {
	out := new(UpdateTermResponse)
	err := c.cc.Invoke(ctx, GlossaryService_UpdateTerm_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) DeleteTerm(ctx context.Context, in *DeleteTermRequest, opts ...grpc.CallOption) (*DeleteTermResponse, error) {
	out := new(DeleteTermResponse)
	err := c.cc.Invoke(ctx, GlossaryService_DeleteTerm_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) CreateRelation(ctx context.Context, in *CreateRelationRequest, opts ...grpc.CallOption) (*CreateRelationResponse, error) {
	out := new(CreateRelationResponse)
	err := c.cc.Invoke(ctx, GlossaryService_CreateRelation_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) ListRelations(ctx context.Context, in *ListRelationsRequest, opts ...grpc.CallOption) (*ListRelationsResponse, error) {
	out := new(ListRelationsResponse)
	err := c.cc.Invoke(ctx, GlossaryService_ListRelations_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) ListTermRelations(ctx context.Context, in *ListTermRelationsRequest, opts ...grpc.CallOption) (*ListTermRelationsResponse, error) {
	out := new(ListTermRelationsResponse)
	err := c.cc.Invoke(ctx, GlossaryService_ListTermRelations_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) DeleteRelation(ctx context.Context, in *DeleteRelationRequest, opts ...grpc.CallOption) (*DeleteRelationResponse, error) {
	out := new(DeleteRelationResponse)
	err := c.cc.Invoke(ctx, GlossaryService_DeleteRelation_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) GetGraph(ctx context.Context, in *GetGraphRequest, opts ...grpc.CallOption) (*GetGraphResponse, error) {
	out := new(GetGraphResponse)
	err := c.cc.Invoke(ctx, GlossaryService_GetGraph_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
