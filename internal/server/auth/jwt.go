// Package auth contains the server's credential primitives: password hashing
// and signed session tokens.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenValidity is the lifetime of a freshly issued token.
const DefaultTokenValidity = 24 * time.Hour

// Claims is the JWT body: the standard registered claims plus the user's
// token payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// TokenIssuer signs payloads into tokens and verifies them back.
type TokenIssuer interface {
	Issue(payload models.TokenPayload) (string, error)
	Verify(token string) (models.TokenPayload, error)
}

// JWTIssuer issues HS256 tokens with a fixed validity.
type JWTIssuer struct {
	secretKey        []byte
	validityDuration time.Duration
	now              func() time.Time
}

func NewJWTIssuer(secretKey []byte, validityDuration time.Duration) *JWTIssuer {
	if validityDuration <= 0 {
		validityDuration = DefaultTokenValidity
	}
	return &JWTIssuer{
		secretKey:        secretKey,
		validityDuration: validityDuration,
		now:              time.Now,
	}
}

// Issue signs payload with iat=now, exp=now+validity and sub=payload.ID.
// Every token gets a random jti, so two tokens for the same payload never
// share bytes even when issued within the same second.
func (j *JWTIssuer) Issue(payload models.TokenPayload) (string, error) {
	now := j.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   payload.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.validityDuration)),
		},
		UserID: payload.ID,
		Email:  payload.Email,
		Name:   payload.Name,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded payload with all registered claims stripped. Any failure wraps
// common.ErrInvalidToken.
func (j *JWTIssuer) Verify(tokenString string) (models.TokenPayload, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return models.TokenPayload{}, common.ErrInvalidToken
	}

	return models.TokenPayload{ID: claims.UserID, Email: claims.Email, Name: claims.Name}, nil
}
