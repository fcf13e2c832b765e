// Package services contains server-side business logic. This file implements
// AuthService, which registers users, logs them in and verifies (and rolls
// forward) their session tokens.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
)

// AuthService provides authentication operations:
// - RegisterUser: create a user and issue a token
// - LoginUser: check credentials and issue a token
// - VerifyToken: validate a token and issue a fresh one (sliding expiration)
//
// Every failure is logged here and returned as one of the common sentinel
// errors (or wrapping one), ready for common.ToRPCError.
type AuthService struct {
	users  users.Repository
	hasher auth.PasswordHasher
	tokens auth.TokenIssuer
	logger logging.Logger
}

func NewAuthService(repo users.Repository, hasher auth.PasswordHasher, tokens auth.TokenIssuer, logger logging.Logger) *AuthService {
	return &AuthService{
		users:  repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "auth_service"),
	}
}

func (s *AuthService) RegisterUser(ctx context.Context, email, name, password string) (*models.AuthResult, error) {
	log := s.logger.With("operation", "register", "email", email)

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		log.Warn(ctx, "registration rejected", "error", common.ErrUserAlreadyExists)
		return nil, common.ErrUserAlreadyExists
	case !errors.Is(err, common.ErrorNotFound):
		log.Error(ctx, "user lookup failed", "error", err)
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Warn(ctx, "password hashing failed", "error", err)
		return nil, err
	}

	user, err := s.users.Create(ctx, &models.User{Email: email, Name: name, PasswordHash: hash})
	if err != nil {
		// A concurrent registration won the race between lookup and insert.
		if errors.Is(err, common.ErrorAlreadyExists) {
			log.Warn(ctx, "registration rejected by store", "error", err)
			return nil, common.ErrUserAlreadyExists
		}
		log.Error(ctx, "user create failed", "error", err)
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(ctx, log, user.Payload())
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*models.AuthResult, error) {
	log := s.logger.With("operation", "login", "email", email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			log.Warn(ctx, "login rejected", "error", common.ErrUserNotFound)
			return nil, common.ErrUserNotFound
		}
		log.Error(ctx, "user lookup failed", "error", err)
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		log.Warn(ctx, "login rejected", "user_id", user.ID, "error", common.ErrInvalidPassword)
		return nil, common.ErrInvalidPassword
	}

	return s.issue(ctx, log, user.Payload())
}

// VerifyToken validates token and re-issues a token for the same payload
// with a new expiry.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*models.AuthResult, error) {
	log := s.logger.With("operation", "verify")

	payload, err := s.tokens.Verify(token)
	if err != nil {
		log.Warn(ctx, "token rejected", "error", err)
		return nil, err
	}

	return s.issue(ctx, log.With("email", payload.Email), payload)
}

func (s *AuthService) issue(ctx context.Context, log logging.Logger, payload models.TokenPayload) (*models.AuthResult, error) {
	token, err := s.tokens.Issue(payload)
	if err != nil {
		log.Error(ctx, "token issue failed", "user_id", payload.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	log.Info(ctx, "token issued", "user_id", payload.ID)
	return &models.AuthResult{User: payload, Token: token}, nil
}
