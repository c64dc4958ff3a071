package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/hrtest"
)

func TestAuthLoginSuccess(t *testing.T) {
	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddUser("Alice", "a@b.com", "x", models.RoleAdmin)

	auth := NewAuthClient(New(srv.URL, nil))
	resp, err := auth.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@b.com", resp.User.Email)
}

func TestAuthLoginBadCredentials(t *testing.T) {
	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddUser("Alice", "a@b.com", "x", models.RoleAdmin)

	auth := NewAuthClient(New(srv.URL, nil))
	_, err := auth.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthRegister(t *testing.T) {
	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)

	auth := NewAuthClient(New(srv.URL, nil))
	u, err := auth.Register(context.Background(), models.UserCreateRequest{
		FullName: "Bob",
		Email:    "bob@corp.test",
		Password: "secret",
		Role:     models.RoleEmployee,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "bob@corp.test", u.Email)

	// Registration does not log in: the same credentials still have to
	// go through /auth/login.
	resp, err := auth.Login(context.Background(), models.LoginRequest{Email: "bob@corp.test", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, resp.User.ID)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddUser("Bob", "bob@corp.test", "secret", models.RoleEmployee)

	auth := NewAuthClient(New(srv.URL, nil))
	_, err := auth.Register(context.Background(), models.UserCreateRequest{
		FullName: "Bob Again",
		Email:    "bob@corp.test",
		Password: "other",
		Role:     models.RoleEmployee,
	})
	require.Error(t, err)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "email already registered", serverErr.Message)
}

func TestAuthProfile(t *testing.T) {
	_, c := newAuthedClient(t)

	auth := NewAuthClient(c)
	u, err := auth.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin@corp.test", u.Email)
}
