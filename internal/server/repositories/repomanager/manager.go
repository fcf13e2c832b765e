// Package repomanager vends the user store selected by configuration and
// owns its lifecycle (migrations, close).
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Close() error
}

// New returns a PostgreSQL-backed manager for a non-empty dsn and an
// in-memory one otherwise.
func New(dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewInMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(dsn)
}
