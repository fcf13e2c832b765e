// Package models holds the server-side domain types.
package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Payload returns the identity fields that may be embedded in a token.
func (u *User) Payload() TokenPayload {
	return TokenPayload{ID: u.ID, Email: u.Email, Name: u.Name}
}

// TokenPayload is the non-secret subset of a User carried inside a token.
type TokenPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResult is returned by every successful auth operation.
type AuthResult struct {
	User  TokenPayload `json:"user"`
	Token string       `json:"token"`
}
