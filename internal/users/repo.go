package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Repo defines persistence operations for users.
type Repo interface {
	// GetOrCreate looks the user up by email, inserting on first sight, and
	// refreshes last_login either way.
	GetOrCreate(ctx context.Context, email string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
