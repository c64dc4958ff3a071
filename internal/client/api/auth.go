package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mobiledv/hrdesk/internal/client/models"
)

// AuthClient wraps the backend's authentication endpoints.
type AuthClient struct {
	c *Client
}

// NewAuthClient builds an AuthClient on the shared low-level Client.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// Login exchanges credentials for a bearer token and the user profile.
func (a *AuthClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var zero models.LoginResponse
	data, _, err := a.c.do(ctx, http.MethodPost, "/auth/login", nil, req)
	if err != nil {
		return zero, fmt.Errorf("login: %w", err)
	}
	return decodeResource[models.LoginResponse](data)
}

// Register creates a new user account. A successful registration does
// not authenticate: the caller still has to log in.
func (a *AuthClient) Register(ctx context.Context, req models.UserCreateRequest) (models.User, error) {
	var zero models.User
	data, _, err := a.c.do(ctx, http.MethodPost, "/auth/register", nil, req)
	if err != nil {
		return zero, fmt.Errorf("register: %w", err)
	}
	return decodeResource[models.User](data)
}

// Profile fetches the profile of the currently authenticated user.
func (a *AuthClient) Profile(ctx context.Context) (models.User, error) {
	var zero models.User
	data, _, err := a.c.do(ctx, http.MethodGet, "/user/profile", nil, nil)
	if err != nil {
		return zero, fmt.Errorf("get profile: %w", err)
	}
	return decodeResource[models.User](data)
}
