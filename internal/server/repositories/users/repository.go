// Package users persists user records keyed by email.
package users

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// Repository is the user store capability set needed by the auth service.
//
// FindByEmail returns common.ErrorNotFound when no user has that email.
// Create must enforce email uniqueness atomically and return
// common.ErrorAlreadyExists when another record already holds the email.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
