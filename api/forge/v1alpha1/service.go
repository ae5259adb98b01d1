package forgev1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ForgeServiceName is the fully qualified gRPC service name
const ForgeServiceName = "itemforge.v1alpha1.ForgeService"

// Full method names
const (
	ForgeService_CreateTemplate_FullMethodName = "/" + ForgeServiceName + "/CreateTemplate"
	ForgeService_GetTemplate_FullMethodName    = "/" + ForgeServiceName + "/GetTemplate"
	ForgeService_ListTemplates_FullMethodName  = "/" + ForgeServiceName + "/ListTemplates"
	ForgeService_UpdateTemplate_FullMethodName = "/" + ForgeServiceName + "/UpdateTemplate"
	ForgeService_DeleteTemplate_FullMethodName = "/" + ForgeServiceName + "/DeleteTemplate"
	ForgeService_BuildItem_FullMethodName      = "/" + ForgeServiceName + "/BuildItem"
	ForgeService_BuildTemplate_FullMethodName  = "/" + ForgeServiceName + "/BuildTemplate"
)

// ForgeServiceServer is the server API for ForgeService
type ForgeServiceServer interface {
	CreateTemplate(context.Context, *CreateTemplateRequest) (*CreateTemplateResponse, error)
	GetTemplate(context.Context, *GetTemplateRequest) (*GetTemplateResponse, error)
	ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error)
	UpdateTemplate(context.Context, *UpdateTemplateRequest) (*UpdateTemplateResponse, error)
	DeleteTemplate(context.Context, *DeleteTemplateRequest) (*DeleteTemplateResponse, error)
	BuildItem(context.Context, *BuildItemRequest) (*BuildItemResponse, error)
	BuildTemplate(context.Context, *BuildTemplateRequest) (*BuildTemplateResponse, error)
	mustEmbedUnimplementedForgeServiceServer()
}

// UnimplementedForgeServiceServer must be embedded by servers so adding
// methods stays backwards compatible
type UnimplementedForgeServiceServer struct{}

func (UnimplementedForgeServiceServer) CreateTemplate(context.Context, *CreateTemplateRequest) (*CreateTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTemplate not implemented")
}

func (UnimplementedForgeServiceServer) GetTemplate(context.Context, *GetTemplateRequest) (*GetTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTemplate not implemented")
}

func (UnimplementedForgeServiceServer) ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTemplates not implemented")
}

func (UnimplementedForgeServiceServer) UpdateTemplate(context.Context, *UpdateTemplateRequest) (*UpdateTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateTemplate not implemented")
}

func (UnimplementedForgeServiceServer) DeleteTemplate(context.Context, *DeleteTemplateRequest) (*DeleteTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteTemplate not implemented")
}

func (UnimplementedForgeServiceServer) BuildItem(context.Context, *BuildItemRequest) (*BuildItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BuildItem not implemented")
}

func (UnimplementedForgeServiceServer) BuildTemplate(context.Context, *BuildTemplateRequest) (*BuildTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BuildTemplate not implemented")
}

func (UnimplementedForgeServiceServer) mustEmbedUnimplementedForgeServiceServer() {}

// RegisterForgeServiceServer registers srv with s
func RegisterForgeServiceServer(s grpc.ServiceRegistrar, srv ForgeServiceServer) {
	s.RegisterService(&ForgeService_ServiceDesc, srv)
}

func _ForgeService_CreateTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ForgeServiceServer).CreateTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ForgeService_CreateTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ForgeServiceServer).CreateTemplate(ctx, req.(*CreateTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ForgeService_GetTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ForgeServiceServer).GetTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ForgeService_GetTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ForgeServiceServer).GetTemplate(ctx, req.(*GetTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ForgeService_ListTemplates_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListTemplatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ForgeServiceServer).ListTemplates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ForgeService_ListTemplates_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ForgeServiceServer).ListTemplates(ctx, req.(*ListTemplatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ForgeService_UpdateTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ForgeServiceServer).UpdateTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ForgeService_UpdateTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ForgeServiceServer).UpdateTemplate(ctx, req.(*UpdateTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ForgeService_DeleteTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ForgeServiceServer).DeleteTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ForgeService_DeleteTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ForgeServiceServer).DeleteTemplate(ctx, req.(*DeleteTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ForgeService_BuildItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(BuildItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ForgeServiceServer).BuildItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ForgeService_BuildItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ForgeServiceServer).BuildItem(ctx, req.(*BuildItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ForgeService_BuildTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(BuildTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ForgeServiceServer).BuildTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ForgeService_BuildTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ForgeServiceServer).BuildTemplate(ctx, req.(*BuildTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ForgeService_ServiceDesc is the grpc.ServiceDesc for ForgeService
var ForgeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ForgeServiceName,
	HandlerType: (*ForgeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateTemplate",
			Handler:    _ForgeService_CreateTemplate_Handler,
		},
		{
			MethodName: "GetTemplate",
			Handler:    _ForgeService_GetTemplate_Handler,
		},
		{
			MethodName: "ListTemplates",
			Handler:    _ForgeService_ListTemplates_Handler,
		},
		{
			MethodName: "UpdateTemplate",
			Handler:    _ForgeService_UpdateTemplate_Handler,
		},
		{
			MethodName: "DeleteTemplate",
			Handler:    _ForgeService_DeleteTemplate_Handler,
		},
		{
			MethodName: "BuildItem",
			Handler:    _ForgeService_BuildItem_Handler,
		},
		{
			MethodName: "BuildTemplate",
			Handler:    _ForgeService_BuildTemplate_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "itemforge/v1alpha1/forge",
}

// ForgeServiceClient is the client API for ForgeService
type ForgeServiceClient interface {
	CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*CreateTemplateResponse, error)
	GetTemplate(ctx context.Context, in *GetTemplateRequest, opts ...grpc.CallOption) (*GetTemplateResponse, error)
	ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error)
	UpdateTemplate(ctx context.Context, in *UpdateTemplateRequest, opts ...grpc.CallOption) (*UpdateTemplateResponse, error)
	DeleteTemplate(ctx context.Context, in *DeleteTemplateRequest, opts ...grpc.CallOption) (*DeleteTemplateResponse, error)
	BuildItem(ctx context.Context, in *BuildItemRequest, opts ...grpc.CallOption) (*BuildItemResponse, error)
	BuildTemplate(ctx context.Context, in *BuildTemplateRequest, opts ...grpc.CallOption) (*BuildTemplateResponse, error)
}

type forgeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewForgeServiceClient creates a client that speaks the JSON codec
func NewForgeServiceClient(cc grpc.ClientConnInterface) ForgeServiceClient {
	return &forgeServiceClient{cc: cc}
}

func (c *forgeServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *forgeServiceClient) CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*CreateTemplateResponse, error) {
	out := new(CreateTemplateResponse)
	if err := c.invoke(ctx, ForgeService_CreateTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *forgeServiceClient) GetTemplate(ctx context.Context, in *GetTemplateRequest, opts ...grpc.CallOption) (*GetTemplateResponse, error) {
	out := new(GetTemplateResponse)
	if err := c.invoke(ctx, ForgeService_GetTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *forgeServiceClient) ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error) {
	out := new(ListTemplatesResponse)
	if err := c.invoke(ctx, ForgeService_ListTemplates_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *forgeServiceClient) UpdateTemplate(ctx context.Context, in *UpdateTemplateRequest, opts ...grpc.CallOption) (*UpdateTemplateResponse, error) {
	out := new(UpdateTemplateResponse)
	if err := c.invoke(ctx, ForgeService_UpdateTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *forgeServiceClient) DeleteTemplate(ctx context.Context, in *DeleteTemplateRequest, opts ...grpc.CallOption) (*DeleteTemplateResponse, error) {
	out := new(DeleteTemplateResponse)
	if err := c.invoke(ctx, ForgeService_DeleteTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *forgeServiceClient) BuildItem(ctx context.Context, in *BuildItemRequest, opts ...grpc.CallOption) (*BuildItemResponse, error) {
	out := new(BuildItemResponse)
	if err := c.invoke(ctx, ForgeService_BuildItem_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *forgeServiceClient) BuildTemplate(ctx context.Context, in *BuildTemplateRequest, opts ...grpc.CallOption) (*BuildTemplateResponse, error) {
	out := new(BuildTemplateResponse)
	if err := c.invoke(ctx, ForgeService_BuildTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
