package hidev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Hide_AddHideItem_FullMethodName    = "/hide.v1.Hide/AddHideItem"
	Hide_RemoveHideItem_FullMethodName = "/hide.v1.Hide/RemoveHideItem"
	Hide_ListHideItems_FullMethodName  = "/hide.v1.Hide/ListHideItems"
	Hide_EnableHide_FullMethodName     = "/hide.v1.Hide/EnableHide"
	Hide_DisableHide_FullMethodName    = "/hide.v1.Hide/DisableHide"
	Hide_Ping_FullMethodName           = "/hide.v1.Hide/Ping"
	Hide_HideStatus_FullMethodName     = "/hide.v1.Hide/HideStatus"
)

// HideClient is the client API for the hide.v1.Hide service.
type HideClient interface {
	AddHideItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*StatusReply, error)
	RemoveHideItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*StatusReply, error)
	ListHideItems(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ListItem], error)
	EnableHide(ctx context.Context, in *EnableRequest, opts ...grpc.CallOption) (*StatusReply, error)
	DisableHide(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusReply, error)
	Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingReply, error)
	HideStatus(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusInfo, error)
}

type hideClient struct {
	cc grpc.ClientConnInterface
}

func NewHideClient(cc grpc.ClientConnInterface) HideClient {
	return &hideClient{cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
}

func (c *hideClient) AddHideItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	out := new(StatusReply)
	if err := c.cc.Invoke(ctx, Hide_AddHideItem_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hideClient) RemoveHideItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	out := new(StatusReply)
	if err := c.cc.Invoke(ctx, Hide_RemoveHideItem_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hideClient) ListHideItems(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ListItem], error) {
	stream, err := c.cc.NewStream(ctx, &Hide_ServiceDesc.Streams[0], Hide_ListHideItems_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Empty, ListItem]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *hideClient) EnableHide(ctx context.Context, in *EnableRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	out := new(StatusReply)
	if err := c.cc.Invoke(ctx, Hide_EnableHide_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hideClient) DisableHide(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusReply, error) {
	out := new(StatusReply)
	if err := c.cc.Invoke(ctx, Hide_DisableHide_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hideClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingReply, error) {
	out := new(PingReply)
	if err := c.cc.Invoke(ctx, Hide_Ping_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hideClient) HideStatus(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatusInfo, error) {
	out := new(StatusInfo)
	if err := c.cc.Invoke(ctx, Hide_HideStatus_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// HideServer is the server API for the hide.v1.Hide service.
// Implementations must embed UnimplementedHideServer.
type HideServer interface {
	AddHideItem(context.Context, *ItemRequest) (*StatusReply, error)
	RemoveHideItem(context.Context, *ItemRequest) (*StatusReply, error)
	ListHideItems(*Empty, grpc.ServerStreamingServer[ListItem]) error
	EnableHide(context.Context, *EnableRequest) (*StatusReply, error)
	DisableHide(context.Context, *Empty) (*StatusReply, error)
	Ping(context.Context, *Empty) (*PingReply, error)
	HideStatus(context.Context, *Empty) (*StatusInfo, error)
	mustEmbedUnimplementedHideServer()
}

// UnimplementedHideServer must be embedded by value.
type UnimplementedHideServer struct{}

func (UnimplementedHideServer) AddHideItem(context.Context, *ItemRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method AddHideItem not implemented")
}
func (UnimplementedHideServer) RemoveHideItem(context.Context, *ItemRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveHideItem not implemented")
}
func (UnimplementedHideServer) ListHideItems(*Empty, grpc.ServerStreamingServer[ListItem]) error {
	return status.Error(codes.Unimplemented, "method ListHideItems not implemented")
}
func (UnimplementedHideServer) EnableHide(context.Context, *EnableRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method EnableHide not implemented")
}
func (UnimplementedHideServer) DisableHide(context.Context, *Empty) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method DisableHide not implemented")
}
func (UnimplementedHideServer) Ping(context.Context, *Empty) (*PingReply, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedHideServer) HideStatus(context.Context, *Empty) (*StatusInfo, error) {
	return nil, status.Error(codes.Unimplemented, "method HideStatus not implemented")
}
func (UnimplementedHideServer) mustEmbedUnimplementedHideServer() {}

func RegisterHideServer(s grpc.ServiceRegistrar, srv HideServer) {
	s.RegisterService(&Hide_ServiceDesc, srv)
}

func _Hide_AddHideItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HideServer).AddHideItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Hide_AddHideItem_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HideServer).AddHideItem(ctx, req.(*ItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Hide_RemoveHideItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HideServer).RemoveHideItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Hide_RemoveHideItem_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HideServer).RemoveHideItem(ctx, req.(*ItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Hide_ListHideItems_Handler(srv any, stream grpc.ServerStream) error {
	m := new(Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(HideServer).ListHideItems(m, &grpc.GenericServerStream[Empty, ListItem]{ServerStream: stream})
}

func _Hide_EnableHide_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EnableRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HideServer).EnableHide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Hide_EnableHide_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HideServer).EnableHide(ctx, req.(*EnableRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Hide_DisableHide_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HideServer).DisableHide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Hide_DisableHide_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HideServer).DisableHide(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Hide_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HideServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Hide_Ping_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HideServer).Ping(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Hide_HideStatus_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HideServer).HideStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Hide_HideStatus_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HideServer).HideStatus(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Hide_ServiceDesc is the grpc.ServiceDesc for the hide.v1.Hide service.
var Hide_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "hide.v1.Hide",
	HandlerType: (*HideServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddHideItem", Handler: _Hide_AddHideItem_Handler},
		{MethodName: "RemoveHideItem", Handler: _Hide_RemoveHideItem_Handler},
		{MethodName: "EnableHide", Handler: _Hide_EnableHide_Handler},
		{MethodName: "DisableHide", Handler: _Hide_DisableHide_Handler},
		{MethodName: "Ping", Handler: _Hide_Ping_Handler},
		{MethodName: "HideStatus", Handler: _Hide_HideStatus_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ListHideItems",
			Handler:       _Hide_ListHideItems_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "api/hide/v1/hide.go",
}
