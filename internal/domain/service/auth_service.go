package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// AuthService resolves the identity behind a bearer token
type AuthService interface {
	// CurrentUser returns the profile of the token owner
	CurrentUser(ctx context.Context, token string) (*entity.User, error)

	// Logout invalidates the token on the backend
	Logout(ctx context.Context, token string) error
}
