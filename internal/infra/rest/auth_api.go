package rest

import (
	"context"
	"net/http"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
)

const (
	mePath     = "/api/v1/auth/me"
	logoutPath = "/api/v1/auth/logout"
)

// authAPI implements service.AuthService.
type authAPI struct {
	client *Client
}

// NewAuthAPI creates the REST identity adapter.
func NewAuthAPI(client *Client) service.AuthService {
	return &authAPI{client: client}
}

func (a *authAPI) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	var user userDTO
	if err := a.client.do(ctx, http.MethodGet, mePath, token, nil, &user); err != nil {
		return nil, err
	}

	out := user.toEntity()

	return &out, nil
}

func (a *authAPI) Logout(ctx context.Context, token string) error {
	return a.client.do(ctx, http.MethodGet, logoutPath, token, nil, nil)
}
