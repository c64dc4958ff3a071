package cli

import (
	"context"
	"os"

	"github.com/mobiledv/hrdesk/internal/client/models"
)

// Login prompts for credentials and authenticates. On failure the
// session stays anonymous and the error is shown; nothing is retried.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	if user, ok := a.session.CurrentUser(); ok {
		printlnFn("Logged in as", user.FullName, "("+user.Role+")")
	}
	return nil
}

// Register prompts for the new account's details, creates it, and logs
// in with the same credentials. A failure of the follow-up login is
// reported as a login failure.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (ADMIN/MANAGER/EMPLOYEE)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	req := models.UserCreateRequest{
		FullName: fullName,
		Email:    email,
		Password: string(password),
		Role:     role,
	}
	if err := a.session.Register(ctx, req); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Account created, logged in as", email)
	return nil
}

// Logout drops the session and wipes the stored auth data.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Warning: could not clear local auth data:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the current user's profile.
func (a *App) WhoAmI(ctx context.Context) error {
	user, ok := a.session.CurrentUser()
	if !ok {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(user.FullName, "<"+user.Email+">", user.Role)
	return nil
}

// RefreshProfile re-fetches the profile from the backend. A failure
// keeps the cached profile; it never logs the user out.
func (a *App) RefreshProfile(ctx context.Context) error {
	if err := a.session.RefreshProfile(ctx); err != nil {
		printlnFn("Profile refresh failed, keeping cached profile:", err.Error())
		return err
	}
	return a.WhoAmI(ctx)
}
