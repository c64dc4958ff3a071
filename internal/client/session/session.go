// Package session holds the client's single source of truth for "is a
// user currently authenticated".
//
// The controller is a three-state machine: Unknown (before the durable
// store has been read), Anonymous, and Authenticated. Screens observe
// it through a reactive cell and must never show protected content
// while the phase is Unknown. Every transition into or out of
// Authenticated writes the durable store before the observable state
// changes, so a crash between the two cannot leave them disagreeing.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mobiledv/hrdesk/internal/client/api"
	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/client/state"
	"github.com/mobiledv/hrdesk/internal/client/store"
	"github.com/mobiledv/hrdesk/internal/logging"
)

// Phase is the authentication phase of the current process.
type Phase string

const (
	PhaseUnknown       Phase = "unknown"
	PhaseAnonymous     Phase = "anonymous"
	PhaseAuthenticated Phase = "authenticated"
)

// Durable store keys. Kept stable across releases; old installs must
// restore their sessions after an upgrade.
const (
	keyToken      = "auth_token"
	keyUser       = "current_user"
	keyIsLoggedIn = "is_logged_in"
)

// Session is the in-memory record of an authenticated identity. The
// token is immutable for the session's lifetime; a rotated token always
// produces a new Session value. Only User may be replaced, via
// RefreshProfile.
type Session struct {
	Token string
	User  models.User
}

// State is the observable value the controller publishes.
// Session is non-nil exactly when Phase is PhaseAuthenticated.
type State struct {
	Phase   Phase
	Session *Session
}

// Controller owns the live session and its durable copy.
//
// Operations are serialized: two concurrent calls are applied one after
// the other, and each publishes a complete State snapshot. Subscribers
// are invoked synchronously and must not call controller operations.
type Controller struct {
	store store.Store
	auth  *api.AuthClient
	log   logging.Logger

	mu   sync.Mutex
	cell *state.Cell[State]
}

// New builds a Controller in the Unknown phase. Call Bootstrap before
// any routing decision depends on the state.
func New(st store.Store, auth *api.AuthClient, log logging.Logger) *Controller {
	return &Controller{
		store: st,
		auth:  auth,
		log:   log.With("component", "session"),
		cell:  state.NewCell(State{Phase: PhaseUnknown}),
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	return c.cell.Get()
}

// Subscribe registers fn for state changes and returns a cancel func.
func (c *Controller) Subscribe(fn func(State)) (cancel func()) {
	return c.cell.Subscribe(fn)
}

// Token returns the current bearer token, or "" when not authenticated.
// Suitable as an api.TokenSource: it is consulted at call time, so
// resource clients built before login still send the fresh token after.
func (c *Controller) Token() string {
	s := c.cell.Get()
	if s.Session == nil {
		return ""
	}
	return s.Session.Token
}

// CurrentUser returns the authenticated user's profile, if any.
func (c *Controller) CurrentUser() (models.User, bool) {
	s := c.cell.Get()
	if s.Session == nil {
		return models.User{}, false
	}
	return s.Session.User, true
}

// Bootstrap resolves Unknown into Anonymous or Authenticated from the
// durable store: Authenticated requires a non-empty token and a
// parseable profile. Anything else, including store read errors and
// corrupt profile JSON, resolves to Anonymous so the app never routes
// on an Unknown phase.
func (c *Controller) Bootstrap(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	token, ok, err := c.store.Get(ctx, keyToken)
	if err != nil || !ok || token == "" {
		if err != nil {
			c.log.Warn(ctx, "settings store unreadable, starting anonymous", "err", err)
		}
		c.cell.Set(State{Phase: PhaseAnonymous})
		return
	}

	raw, ok, err := c.store.Get(ctx, keyUser)
	if err != nil || !ok {
		c.cell.Set(State{Phase: PhaseAnonymous})
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		c.log.Warn(ctx, "stored profile corrupt, starting anonymous", "err", err)
		c.cell.Set(State{Phase: PhaseAnonymous})
		return
	}

	c.log.Info(ctx, "session restored", "email", user.Email, "role", user.Role)
	c.cell.Set(State{Phase: PhaseAuthenticated, Session: &Session{Token: token, User: user}})
}

// Login authenticates with the backend. On success the session is
// persisted and the state becomes Authenticated. On failure the store
// is left untouched, the state stays Anonymous, and the error is
// returned for the caller to display. No automatic retry.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, err := c.auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		c.log.Warn(ctx, "login failed", "email", email, "err", err)
		return err
	}

	if err := c.persist(ctx, resp.Token, resp.User); err != nil {
		return err
	}

	c.log.Info(ctx, "login succeeded", "email", resp.User.Email, "role", resp.User.Role)
	c.cell.Set(State{Phase: PhaseAuthenticated, Session: &Session{Token: resp.Token, User: resp.User}})
	return nil
}

// Register creates an account and then logs in with the same
// credentials. Registration success alone does not authenticate; if the
// follow-up login fails, that failure is returned as a login error and
// the state stays Anonymous.
func (c *Controller) Register(ctx context.Context, req models.UserCreateRequest) error {
	// Not under c.mu: the nested Login takes it.
	if _, err := c.auth.Register(ctx, req); err != nil {
		c.log.Warn(ctx, "registration failed", "email", req.Email, "err", err)
		return fmt.Errorf("registration: %w", err)
	}

	c.log.Info(ctx, "registration succeeded", "email", req.Email)
	return c.Login(ctx, req.Email, req.Password)
}

// Logout clears the durable store unconditionally and publishes
// Anonymous. The transition happens even when clearing fails; the
// error is still reported so the caller can warn about the leftover
// local state.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.store.Clear(ctx)
	if err != nil {
		c.log.Error(ctx, "clearing settings store failed", "err", err)
	}

	c.cell.Set(State{Phase: PhaseAnonymous})
	c.log.Info(ctx, "logged out")
	return err
}

// RefreshProfile re-fetches the authenticated user's profile and
// replaces it in the current session, keeping the token. A failed fetch
// keeps the previous profile and never downgrades to Anonymous; only an
// explicit Logout does that.
func (c *Controller) RefreshProfile(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.cell.Get()
	if current.Session == nil {
		return fmt.Errorf("refresh profile: not authenticated")
	}

	user, err := c.auth.Profile(ctx)
	if err != nil {
		c.log.Warn(ctx, "profile refresh failed, keeping cached profile", "err", err)
		return err
	}

	if err := c.persist(ctx, current.Session.Token, user); err != nil {
		return err
	}

	c.cell.Set(State{Phase: PhaseAuthenticated, Session: &Session{Token: current.Session.Token, User: user}})
	return nil
}

// persist writes the durable copy of a session in one batch.
func (c *Controller) persist(ctx context.Context, token string, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	err = c.store.PutAll(ctx, map[string]string{
		keyToken:      token,
		keyUser:       string(raw),
		keyIsLoggedIn: "true",
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
