// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: selfcare.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SelfcarePortalService_Login_FullMethodName                 = "/selfcare.portal.SelfcarePortalService/Login"
	SelfcarePortalService_RefreshToken_FullMethodName          = "/selfcare.portal.SelfcarePortalService/RefreshToken"
	SelfcarePortalService_Logout_FullMethodName                = "/selfcare.portal.SelfcarePortalService/Logout"
	SelfcarePortalService_GetCurrentUser_FullMethodName        = "/selfcare.portal.SelfcarePortalService/GetCurrentUser"
	SelfcarePortalService_Ping_FullMethodName                  = "/selfcare.portal.SelfcarePortalService/Ping"
	SelfcarePortalService_ListInvoices_FullMethodName          = "/selfcare.portal.SelfcarePortalService/ListInvoices"
	SelfcarePortalService_GetInvoiceDownloadUrl_FullMethodName = "/selfcare.portal.SelfcarePortalService/GetInvoiceDownloadUrl"
)

// SelfcarePortalServiceClient is the client API for SelfcarePortalService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SelfcarePortalService is the customer-portal API: authentication and
// the account-facing operations the terminal client exposes.
type SelfcarePortalServiceClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	GetCurrentUser(ctx context.Context, in *GetCurrentUserRequest, opts ...grpc.CallOption) (*GetCurrentUserResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error)
	GetInvoiceDownloadUrl(ctx context.Context, in *GetInvoiceDownloadUrlRequest, opts ...grpc.CallOption) (*GetInvoiceDownloadUrlResponse, error)
}

type selfcarePortalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSelfcarePortalServiceClient(cc grpc.ClientConnInterface) SelfcarePortalServiceClient {
	return &selfcarePortalServiceClient{cc}
}

func (c *selfcarePortalServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, SelfcarePortalService_Login_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *selfcarePortalServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RefreshTokenResponse)
	err := c.cc.Invoke(ctx, SelfcarePortalService_RefreshToken_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *selfcarePortalServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LogoutResponse)
	err := c.cc.Invoke(ctx, SelfcarePortalService_Logout_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *selfcarePortalServiceClient) GetCurrentUser(ctx context.Context, in *GetCurrentUserRequest, opts ...grpc.CallOption) (*GetCurrentUserResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCurrentUserResponse)
	err := c.cc.Invoke(ctx, SelfcarePortalService_GetCurrentUser_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *selfcarePortalServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, SelfcarePortalService_Ping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *selfcarePortalServiceClient) ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInvoicesResponse)
	err := c.cc.Invoke(ctx, SelfcarePortalService_ListInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *selfcarePortalServiceClient) GetInvoiceDownloadUrl(ctx context.Context, in *GetInvoiceDownloadUrlRequest, opts ...grpc.CallOption) (*GetInvoiceDownloadUrlResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetInvoiceDownloadUrlResponse)
	err := c.cc.Invoke(ctx, SelfcarePortalService_GetInvoiceDownloadUrl_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SelfcarePortalServiceServer is the server API for SelfcarePortalService service.
// All implementations must embed UnimplementedSelfcarePortalServiceServer
// for forward compatibility.
//
// SelfcarePortalService is the customer-portal API: authentication and
// the account-facing operations the terminal client exposes.
type SelfcarePortalServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	GetCurrentUser(context.Context, *GetCurrentUserRequest) (*GetCurrentUserResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error)
	GetInvoiceDownloadUrl(context.Context, *GetInvoiceDownloadUrlRequest) (*GetInvoiceDownloadUrlResponse, error)
	mustEmbedUnimplementedSelfcarePortalServiceServer()
}

// UnimplementedSelfcarePortalServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSelfcarePortalServiceServer struct{}

func (UnimplementedSelfcarePortalServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedSelfcarePortalServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedSelfcarePortalServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedSelfcarePortalServiceServer) GetCurrentUser(context.Context, *GetCurrentUserRequest) (*GetCurrentUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentUser not implemented")
}
func (UnimplementedSelfcarePortalServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedSelfcarePortalServiceServer) ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListInvoices not implemented")
}
func (UnimplementedSelfcarePortalServiceServer) GetInvoiceDownloadUrl(context.Context, *GetInvoiceDownloadUrlRequest) (*GetInvoiceDownloadUrlResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvoiceDownloadUrl not implemented")
}
func (UnimplementedSelfcarePortalServiceServer) mustEmbedUnimplementedSelfcarePortalServiceServer() {}
func (UnimplementedSelfcarePortalServiceServer) testEmbeddedByValue()                               {}

// UnsafeSelfcarePortalServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SelfcarePortalServiceServer will
// result in compilation errors.
type UnsafeSelfcarePortalServiceServer interface {
	mustEmbedUnimplementedSelfcarePortalServiceServer()
}

func RegisterSelfcarePortalServiceServer(s grpc.ServiceRegistrar, srv SelfcarePortalServiceServer) {
	// If the following call panics, it indicates UnimplementedSelfcarePortalServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SelfcarePortalService_ServiceDesc, srv)
}

func _SelfcarePortalService_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SelfcarePortalServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SelfcarePortalService_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SelfcarePortalServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SelfcarePortalService_RefreshToken_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SelfcarePortalServiceServer).RefreshToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SelfcarePortalService_RefreshToken_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SelfcarePortalServiceServer).RefreshToken(ctx, req.(*RefreshTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SelfcarePortalService_Logout_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LogoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SelfcarePortalServiceServer).Logout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SelfcarePortalService_Logout_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SelfcarePortalServiceServer).Logout(ctx, req.(*LogoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SelfcarePortalService_GetCurrentUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCurrentUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SelfcarePortalServiceServer).GetCurrentUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SelfcarePortalService_GetCurrentUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SelfcarePortalServiceServer).GetCurrentUser(ctx, req.(*GetCurrentUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SelfcarePortalService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SelfcarePortalServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SelfcarePortalService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SelfcarePortalServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SelfcarePortalService_ListInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SelfcarePortalServiceServer).ListInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SelfcarePortalService_ListInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SelfcarePortalServiceServer).ListInvoices(ctx, req.(*ListInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SelfcarePortalService_GetInvoiceDownloadUrl_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInvoiceDownloadUrlRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SelfcarePortalServiceServer).GetInvoiceDownloadUrl(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SelfcarePortalService_GetInvoiceDownloadUrl_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SelfcarePortalServiceServer).GetInvoiceDownloadUrl(ctx, req.(*GetInvoiceDownloadUrlRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SelfcarePortalService_ServiceDesc is the grpc.ServiceDesc for SelfcarePortalService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SelfcarePortalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "selfcare.portal.SelfcarePortalService",
	HandlerType: (*SelfcarePortalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Login",
			Handler:    _SelfcarePortalService_Login_Handler,
		},
		{
			MethodName: "RefreshToken",
			Handler:    _SelfcarePortalService_RefreshToken_Handler,
		},
		{
			MethodName: "Logout",
			Handler:    _SelfcarePortalService_Logout_Handler,
		},
		{
			MethodName: "GetCurrentUser",
			Handler:    _SelfcarePortalService_GetCurrentUser_Handler,
		},
		{
			MethodName: "Ping",
			Handler:    _SelfcarePortalService_Ping_Handler,
		},
		{
			MethodName: "ListInvoices",
			Handler:    _SelfcarePortalService_ListInvoices_Handler,
		},
		{
			MethodName: "GetInvoiceDownloadUrl",
			Handler:    _SelfcarePortalService_GetInvoiceDownloadUrl_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "selfcare.proto",
}
