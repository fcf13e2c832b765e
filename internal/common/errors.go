// Package common defines shared constants and sentinel errors used across
// client and server layers of the auth service. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal       = errors.New("internal error")
	ErrorValidation     = errors.New("validation error")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Auth errors.
	ErrUserAlreadyExists = errors.New("User already exists")
	ErrUserNotFound      = errors.New("User not found")
	ErrInvalidPassword   = errors.New("Invalid password")
	ErrInvalidToken      = errors.New("Invalid token")
)
