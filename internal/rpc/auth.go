// Package rpc is the wire contract of the auth service shared by server and
// client: request/response DTOs, the gRPC service descriptor and a client
// stub. Messages travel as the protobuf messages of auth.proto (see
// CodecName).
package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "auth.AuthService"

// Full gRPC method names.
const (
	MethodRegisterUser = "/" + ServiceName + "/RegisterUser"
	MethodLoginUser    = "/" + ServiceName + "/LoginUser"
	MethodVerifyUser   = "/" + ServiceName + "/VerifyUser"
)

// Operation names as seen by callers of the message-pattern API.
const (
	PatternRegisterUser = "auth.register.user"
	PatternLoginUser    = "auth.login.user"
	PatternVerifyUser   = "auth.verify.user"
)

// Patterns maps a full method name to its operation name.
var Patterns = map[string]string{
	MethodRegisterUser: PatternRegisterUser,
	MethodLoginUser:    PatternLoginUser,
	MethodVerifyUser:   PatternVerifyUser,
}

type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

type VerifyUserRequest struct {
	Token string `json:"token" validate:"required"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is the success body of all three operations.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// AuthServiceServer is implemented by the server side of the service.
type AuthServiceServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*AuthResponse, error)
	LoginUser(context.Context, *LoginUserRequest) (*AuthResponse, error)
	VerifyUser(context.Context, *VerifyUserRequest) (*AuthResponse, error)
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthServiceDesc, srv)
}

var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterUser", Handler: registerUserHandler},
		{MethodName: "LoginUser", Handler: loginUserHandler},
		{MethodName: "VerifyUser", Handler: verifyUserHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: ProtoFile,
}

func registerUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RegisterUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).RegisterUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodRegisterUser}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServiceServer).RegisterUser(ctx, req.(*RegisterUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func loginUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoginUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).LoginUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodLoginUser}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServiceServer).LoginUser(ctx, req.(*LoginUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func verifyUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VerifyUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).VerifyUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodVerifyUser}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServiceServer).VerifyUser(ctx, req.(*VerifyUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AuthServiceClient is the client API of the service.
type AuthServiceClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	LoginUser(ctx context.Context, in *LoginUserRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	VerifyUser(ctx context.Context, in *VerifyUserRequest, opts ...grpc.CallOption) (*AuthResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc: cc}
}

func (c *authServiceClient) invoke(ctx context.Context, method string, in any, opts []grpc.CallOption) (*AuthResponse, error) {
	out := new(AuthResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return c.invoke(ctx, MethodRegisterUser, in, opts)
}

func (c *authServiceClient) LoginUser(ctx context.Context, in *LoginUserRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return c.invoke(ctx, MethodLoginUser, in, opts)
}

func (c *authServiceClient) VerifyUser(ctx context.Context, in *VerifyUserRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return c.invoke(ctx, MethodVerifyUser, in, opts)
}
