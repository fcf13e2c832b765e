package grpc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/rpc"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

func (s *GRPCServer) RegisterUser(ctx context.Context, req *rpc.RegisterUserRequest) (*rpc.AuthResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatusError(ctx, err)
	}

	result, err := s.auth.RegisterUser(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}
	return toResponse(result), nil
}

func (s *GRPCServer) LoginUser(ctx context.Context, req *rpc.LoginUserRequest) (*rpc.AuthResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatusError(ctx, err)
	}

	result, err := s.auth.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}
	return toResponse(result), nil
}

// VerifyUser reports every rejected token, including a missing one, as an
// invalid token.
func (s *GRPCServer) VerifyUser(ctx context.Context, req *rpc.VerifyUserRequest) (*rpc.AuthResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatusError(ctx, fmt.Errorf("%w: %v", common.ErrInvalidToken, err))
	}

	result, err := s.auth.VerifyToken(ctx, req.Token)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}
	return toResponse(result), nil
}

func toResponse(r *models.AuthResult) *rpc.AuthResponse {
	return &rpc.AuthResponse{
		User:  rpc.User{ID: r.User.ID, Email: r.User.Email, Name: r.User.Name},
		Token: r.Token,
	}
}
