package accountv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AccountService_SetTwoFA_FullMethodName                  = "/account.v1.AccountService/SetTwoFA"
	AccountService_VerifyPhone_FullMethodName               = "/account.v1.AccountService/VerifyPhone"
	AccountService_ValidatePhoneVerification_FullMethodName = "/account.v1.AccountService/ValidatePhoneVerification"
	AccountService_DisableTwoFAVerification_FullMethodName  = "/account.v1.AccountService/DisableTwoFAVerification"
	AccountService_GetUserInfo_FullMethodName               = "/account.v1.AccountService/GetUserInfo"
)

// AccountServiceServer is the server API for account.v1.AccountService.
type AccountServiceServer interface {
	SetTwoFA(context.Context, *SetTwoFARequest) (*SetTwoFAResponse, error)
	VerifyPhone(context.Context, *VerifyPhoneRequest) (*VerifyPhoneResponse, error)
	ValidatePhoneVerification(context.Context, *ValidatePhoneVerificationRequest) (*ValidatePhoneVerificationResponse, error)
	DisableTwoFAVerification(context.Context, *DisableTwoFAVerificationRequest) (*DisableTwoFAVerificationResponse, error)
	GetUserInfo(context.Context, *GetUserInfoRequest) (*GetUserInfoResponse, error)
}

// UnimplementedAccountServiceServer can be embedded for forward compatibility.
type UnimplementedAccountServiceServer struct{}

func (UnimplementedAccountServiceServer) SetTwoFA(context.Context, *SetTwoFARequest) (*SetTwoFAResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetTwoFA not implemented")
}

func (UnimplementedAccountServiceServer) VerifyPhone(context.Context, *VerifyPhoneRequest) (*VerifyPhoneResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method VerifyPhone not implemented")
}

func (UnimplementedAccountServiceServer) ValidatePhoneVerification(context.Context, *ValidatePhoneVerificationRequest) (*ValidatePhoneVerificationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidatePhoneVerification not implemented")
}

func (UnimplementedAccountServiceServer) DisableTwoFAVerification(context.Context, *DisableTwoFAVerificationRequest) (*DisableTwoFAVerificationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DisableTwoFAVerification not implemented")
}

func (UnimplementedAccountServiceServer) GetUserInfo(context.Context, *GetUserInfoRequest) (*GetUserInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserInfo not implemented")
}

// RegisterAccountServiceServer registers srv on s.
func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountService_ServiceDesc, srv)
}

func _AccountService_SetTwoFA_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetTwoFARequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServiceServer).SetTwoFA(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountService_SetTwoFA_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccountServiceServer).SetTwoFA(ctx, req.(*SetTwoFARequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountService_VerifyPhone_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyPhoneRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServiceServer).VerifyPhone(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountService_VerifyPhone_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccountServiceServer).VerifyPhone(ctx, req.(*VerifyPhoneRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountService_ValidatePhoneVerification_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidatePhoneVerificationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServiceServer).ValidatePhoneVerification(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountService_ValidatePhoneVerification_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccountServiceServer).ValidatePhoneVerification(ctx, req.(*ValidatePhoneVerificationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountService_DisableTwoFAVerification_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisableTwoFAVerificationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServiceServer).DisableTwoFAVerification(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountService_DisableTwoFAVerification_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccountServiceServer).DisableTwoFAVerification(ctx, req.(*DisableTwoFAVerificationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountService_GetUserInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServiceServer).GetUserInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountService_GetUserInfo_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccountServiceServer).GetUserInfo(ctx, req.(*GetUserInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AccountService_ServiceDesc is the grpc.ServiceDesc for account.v1.AccountService.
var AccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "account.v1.AccountService",
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SetTwoFA", Handler: _AccountService_SetTwoFA_Handler},
		{MethodName: "VerifyPhone", Handler: _AccountService_VerifyPhone_Handler},
		{MethodName: "ValidatePhoneVerification", Handler: _AccountService_ValidatePhoneVerification_Handler},
		{MethodName: "DisableTwoFAVerification", Handler: _AccountService_DisableTwoFAVerification_Handler},
		{MethodName: "GetUserInfo", Handler: _AccountService_GetUserInfo_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "account/v1/account.proto",
}

// AccountServiceClient is the client API for account.v1.AccountService.
type AccountServiceClient interface {
	SetTwoFA(ctx context.Context, in *SetTwoFARequest, opts ...grpc.CallOption) (*SetTwoFAResponse, error)
	VerifyPhone(ctx context.Context, in *VerifyPhoneRequest, opts ...grpc.CallOption) (*VerifyPhoneResponse, error)
	ValidatePhoneVerification(ctx context.Context, in *ValidatePhoneVerificationRequest, opts ...grpc.CallOption) (*ValidatePhoneVerificationResponse, error)
	DisableTwoFAVerification(ctx context.Context, in *DisableTwoFAVerificationRequest, opts ...grpc.CallOption) (*DisableTwoFAVerificationResponse, error)
	GetUserInfo(ctx context.Context, in *GetUserInfoRequest, opts ...grpc.CallOption) (*GetUserInfoResponse, error)
}

type accountServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAccountServiceClient returns a client that sends JSON-encoded messages over cc.
func NewAccountServiceClient(cc grpc.ClientConnInterface) AccountServiceClient {
	return &accountServiceClient{cc: cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *accountServiceClient) SetTwoFA(ctx context.Context, in *SetTwoFARequest, opts ...grpc.CallOption) (*SetTwoFAResponse, error) {
	out := new(SetTwoFAResponse)
	if err := c.cc.Invoke(ctx, AccountService_SetTwoFA_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountServiceClient) VerifyPhone(ctx context.Context, in *VerifyPhoneRequest, opts ...grpc.CallOption) (*VerifyPhoneResponse, error) {
	out := new(VerifyPhoneResponse)
	if err := c.cc.Invoke(ctx, AccountService_VerifyPhone_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountServiceClient) ValidatePhoneVerification(ctx context.Context, in *ValidatePhoneVerificationRequest, opts ...grpc.CallOption) (*ValidatePhoneVerificationResponse, error) {
	out := new(ValidatePhoneVerificationResponse)
	if err := c.cc.Invoke(ctx, AccountService_ValidatePhoneVerification_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountServiceClient) DisableTwoFAVerification(ctx context.Context, in *DisableTwoFAVerificationRequest, opts ...grpc.CallOption) (*DisableTwoFAVerificationResponse, error) {
	out := new(DisableTwoFAVerificationResponse)
	if err := c.cc.Invoke(ctx, AccountService_DisableTwoFAVerification_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountServiceClient) GetUserInfo(ctx context.Context, in *GetUserInfoRequest, opts ...grpc.CallOption) (*GetUserInfoResponse, error) {
	out := new(GetUserInfoResponse)
	if err := c.cc.Invoke(ctx, AccountService_GetUserInfo_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
