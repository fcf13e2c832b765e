// Package grpc is the RPC entry point of the auth service: it decodes and
// validates requests, calls AuthService and turns domain failures into
// status-coded gRPC errors.
package grpc

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/rpc"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"
)

type authService interface {
	RegisterUser(ctx context.Context, email, name, password string) (*models.AuthResult, error)
	LoginUser(ctx context.Context, email, password string) (*models.AuthResult, error)
	VerifyToken(ctx context.Context, token string) (*models.AuthResult, error)
}

const defaultShutdownTimeout = 10 * time.Second

type GRPCServer struct {
	address         string
	auth            authService
	logger          logging.Logger
	validate        *validator.Validate
	shutdownTimeout time.Duration
}

type Option func(*GRPCServer)

// WithShutdownTimeout bounds how long a graceful stop may wait for in-flight
// calls before they are cut off.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *GRPCServer) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

func NewGRPCServer(a string, l logging.Logger, as authService, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		auth:            as,
		validate:        newValidator(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	rpc.RegisterAuthServiceServer(srv, s)

	served := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			s.stop(srv)
		case <-served:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	err := srv.Serve(lis)
	close(served)
	<-stopped
	// Stopped before Serve got going.
	if errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return err
}

func (s *GRPCServer) stop(srv *grpc.Server) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		s.logger.Warn(context.Background(), "Graceful stop timed out, forcing")
		srv.Stop()
		<-done
	}
}
