package users

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidEmail = errors.New("a valid email is required")

// Service contains business logic for users.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// GetOrCreate resolves the user for an email, creating the row on first
// sign-in and refreshing last_login on every call.
func (s *Service) GetOrCreate(ctx context.Context, email string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, ErrInvalidEmail
	}
	return s.Repo.GetOrCreate(ctx, email)
}
