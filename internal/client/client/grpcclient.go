// Package client is a thin gRPC client for the auth service. It converts
// status errors back into the service's error shapes.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      rpc.AuthServiceClient
}

// NewAuthClient creates a client for endpointURL. No connection is made
// until the first call. A non-positive timeout disables per-call deadlines.
func NewAuthClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewAuthServiceClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Register(ctx context.Context, email, name, password string) (*rpc.AuthResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var trailer metadata.MD
	resp, err := s.client.RegisterUser(ctx, &rpc.RegisterUserRequest{Email: email, Name: name, Password: password}, grpc.Trailer(&trailer))
	if err != nil {
		return nil, s.mapError(err, trailer)
	}
	return resp, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*rpc.AuthResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var trailer metadata.MD
	resp, err := s.client.LoginUser(ctx, &rpc.LoginUserRequest{Email: email, Password: password}, grpc.Trailer(&trailer))
	if err != nil {
		return nil, s.mapError(err, trailer)
	}
	return resp, nil
}

// Verify checks token and returns the user with a freshly issued token.
func (s *GRPCClient) Verify(ctx context.Context, token string) (*rpc.AuthResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var trailer metadata.MD
	resp, err := s.client.VerifyUser(ctx, &rpc.VerifyUserRequest{Token: token}, grpc.Trailer(&trailer))
	if err != nil {
		return nil, s.mapError(err, trailer)
	}
	return resp, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// mapError turns a call failure into ErrUnavailable, an ErrUnauthorized
// wrap, or a *common.RPCError carrying the server's status and message.
func (s *GRPCClient) mapError(err error, trailer metadata.MD) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.InvalidArgument, codes.Internal:
		return &common.RPCError{Status: statusFrom(trailer, st.Code()), Message: st.Message()}
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func statusFrom(trailer metadata.MD, code codes.Code) int {
	if v := trailer.Get(common.StatusTrailerName); len(v) > 0 {
		if n, err := strconv.Atoi(v[0]); err == nil {
			return n
		}
	}
	if code == codes.InvalidArgument {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
