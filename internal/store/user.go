package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// UserStore defines read access to users.
type UserStore interface {
	// List returns every user.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername returns the user with the given username.
	// Returns a domain.KindNotFound error ("Username not found") on miss.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
