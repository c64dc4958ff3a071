package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobiledv/hrdesk/internal/client/api"
	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/hrtest"
	"github.com/mobiledv/hrdesk/internal/logging"
)

// memStore is an in-memory store.Store with injectable failures.
type memStore struct {
	data map[string]string

	failReads  bool
	failWrites bool
	failClear  bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

var errStoreBroken = errors.New("store broken")

func (m *memStore) Get(ctx context.Context, key string) (string, bool, error) {
	if m.failReads {
		return "", false, errStoreBroken
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Put(ctx context.Context, key, value string) error {
	if m.failWrites {
		return errStoreBroken
	}
	m.data[key] = value
	return nil
}

func (m *memStore) PutAll(ctx context.Context, pairs map[string]string) error {
	if m.failWrites {
		return errStoreBroken
	}
	for k, v := range pairs {
		m.data[k] = v
	}
	return nil
}

func (m *memStore) Remove(ctx context.Context, key string) error {
	if m.failWrites {
		return errStoreBroken
	}
	delete(m.data, key)
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	if m.failClear {
		return errStoreBroken
	}
	m.data = make(map[string]string)
	return nil
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

// newController wires a controller onto a fake backend with one known
// account (a@b.com / x).
func newController(t *testing.T, st *memStore) (*hrtest.Server, *Controller) {
	t.Helper()

	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddUser("Alice", "a@b.com", "x", models.RoleAdmin)

	var ctrl *Controller
	client := api.New(srv.URL, func() string {
		if ctrl == nil {
			return ""
		}
		return ctrl.Token()
	})
	ctrl = New(st, api.NewAuthClient(client), testLogger())
	return srv, ctrl
}

func TestStartsUnknown(t *testing.T) {
	_, ctrl := newController(t, newMemStore())
	assert.Equal(t, PhaseUnknown, ctrl.State().Phase)
}

func TestBootstrapEmptyStore(t *testing.T) {
	_, ctrl := newController(t, newMemStore())

	ctrl.Bootstrap(context.Background())
	s := ctrl.State()
	assert.Equal(t, PhaseAnonymous, s.Phase)
	assert.Nil(t, s.Session)
}

func TestBootstrapRestoresSession(t *testing.T) {
	st := newMemStore()
	profile, err := json.Marshal(models.User{ID: "1", FullName: "Alice", Email: "a@b.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	st.data[keyToken] = "T1"
	st.data[keyUser] = string(profile)
	st.data[keyIsLoggedIn] = "true"

	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())

	s := ctrl.State()
	require.Equal(t, PhaseAuthenticated, s.Phase)
	require.NotNil(t, s.Session)
	assert.Equal(t, "T1", s.Session.Token)
	assert.Equal(t, "a@b.com", s.Session.User.Email)
	assert.Equal(t, "T1", ctrl.Token())
}

func TestBootstrapTokenWithoutProfile(t *testing.T) {
	st := newMemStore()
	st.data[keyToken] = "T1"

	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())
	assert.Equal(t, PhaseAnonymous, ctrl.State().Phase)
}

func TestBootstrapCorruptProfile(t *testing.T) {
	st := newMemStore()
	st.data[keyToken] = "T1"
	st.data[keyUser] = "{not json"

	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())
	assert.Equal(t, PhaseAnonymous, ctrl.State().Phase)
}

func TestBootstrapStoreReadFailure(t *testing.T) {
	st := newMemStore()
	st.failReads = true

	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())
	// An unreadable store never blocks startup.
	assert.Equal(t, PhaseAnonymous, ctrl.State().Phase)
}

func TestLoginPersistsBeforePublishing(t *testing.T) {
	st := newMemStore()
	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())

	// Observe the store at the moment the Authenticated state is
	// published: the durable copy must already be there.
	var tokenAtPublish string
	cancel := ctrl.Subscribe(func(s State) {
		if s.Phase == PhaseAuthenticated {
			tokenAtPublish = st.data[keyToken]
		}
	})
	defer cancel()

	require.NoError(t, ctrl.Login(context.Background(), "a@b.com", "x"))

	s := ctrl.State()
	require.Equal(t, PhaseAuthenticated, s.Phase)
	require.NotNil(t, s.Session)
	assert.Equal(t, s.Session.Token, tokenAtPublish)
	assert.Equal(t, "true", st.data[keyIsLoggedIn])

	var stored models.User
	require.NoError(t, json.Unmarshal([]byte(st.data[keyUser]), &stored))
	assert.Equal(t, "a@b.com", stored.Email)

	u, ok := ctrl.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, u.Role)
}

func TestLoginFailureLeavesStoreUntouched(t *testing.T) {
	st := newMemStore()
	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())

	err := ctrl.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	assert.Equal(t, PhaseAnonymous, ctrl.State().Phase)
	assert.Empty(t, st.data)
	assert.Empty(t, ctrl.Token())
}

func TestLoginPersistFailureStaysAnonymous(t *testing.T) {
	st := newMemStore()
	st.failWrites = true
	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())

	err := ctrl.Login(context.Background(), "a@b.com", "x")
	require.Error(t, err)
	assert.Equal(t, PhaseAnonymous, ctrl.State().Phase)
}

func TestRegisterThenLogin(t *testing.T) {
	st := newMemStore()
	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())

	err := ctrl.Register(context.Background(), models.UserCreateRequest{
		FullName: "Bob",
		Email:    "bob@corp.test",
		Password: "secret",
		Role:     models.RoleEmployee,
	})
	require.NoError(t, err)

	s := ctrl.State()
	require.Equal(t, PhaseAuthenticated, s.Phase)
	assert.Equal(t, "bob@corp.test", s.Session.User.Email)
}

func TestRegisterSucceedsButLoginFails(t *testing.T) {
	st := newMemStore()
	srv, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())

	srv.FailLogins = true
	err := ctrl.Register(context.Background(), models.UserCreateRequest{
		FullName: "Bob",
		Email:    "bob@corp.test",
		Password: "secret",
		Role:     models.RoleEmployee,
	})
	require.Error(t, err)

	// Registration alone never authenticates.
	assert.Equal(t, PhaseAnonymous, ctrl.State().Phase)
	assert.Empty(t, st.data)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	st := newMemStore()
	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())

	req := models.UserCreateRequest{FullName: "Alice Again", Email: "a@b.com", Password: "y", Role: models.RoleEmployee}
	err := ctrl.Register(context.Background(), req)
	require.Error(t, err)

	var serverErr *api.ServerError
	assert.ErrorAs(t, err, &serverErr)
	assert.Equal(t, PhaseAnonymous, ctrl.State().Phase)
}

func TestLogoutClearsEverything(t *testing.T) {
	st := newMemStore()
	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())
	require.NoError(t, ctrl.Login(context.Background(), "a@b.com", "x"))

	require.NoError(t, ctrl.Logout(context.Background()))

	s := ctrl.State()
	assert.Equal(t, PhaseAnonymous, s.Phase)
	assert.Nil(t, s.Session)
	assert.Empty(t, st.data)
	assert.Empty(t, ctrl.Token())
}

func TestLogoutPublishesAnonymousEvenWhenClearFails(t *testing.T) {
	st := newMemStore()
	_, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())
	require.NoError(t, ctrl.Login(context.Background(), "a@b.com", "x"))

	st.failClear = true
	err := ctrl.Logout(context.Background())
	require.Error(t, err)
	assert.Equal(t, PhaseAnonymous, ctrl.State().Phase)
}

func TestRefreshProfileReplacesUser(t *testing.T) {
	st := newMemStore()
	srv, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())
	require.NoError(t, ctrl.Login(context.Background(), "a@b.com", "x"))

	tokenBefore := ctrl.Token()

	// The profile changes server-side; a refresh must pick it up.
	u, _ := ctrl.CurrentUser()
	users := api.NewResource[models.User, models.UserCreateRequest](api.New(srv.URL, func() string { return tokenBefore }), "/admin/users")
	_, err := users.Update(context.Background(), u.ID, models.UserCreateRequest{
		FullName: "Alice Renamed",
		Email:    "a@b.com",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	require.NoError(t, ctrl.RefreshProfile(context.Background()))

	got, ok := ctrl.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Alice Renamed", got.FullName)
	assert.Equal(t, tokenBefore, ctrl.Token())

	var stored models.User
	require.NoError(t, json.Unmarshal([]byte(st.data[keyUser]), &stored))
	assert.Equal(t, "Alice Renamed", stored.FullName)
}

func TestRefreshProfileFailureKeepsProfile(t *testing.T) {
	st := newMemStore()
	srv, ctrl := newController(t, st)
	ctrl.Bootstrap(context.Background())
	require.NoError(t, ctrl.Login(context.Background(), "a@b.com", "x"))

	before, _ := ctrl.CurrentUser()
	srv.Close()

	err := ctrl.RefreshProfile(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnavailable)

	s := ctrl.State()
	require.Equal(t, PhaseAuthenticated, s.Phase)
	got, ok := ctrl.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, before, got)
}

func TestRefreshProfileWithoutSession(t *testing.T) {
	_, ctrl := newController(t, newMemStore())
	ctrl.Bootstrap(context.Background())

	err := ctrl.RefreshProfile(context.Background())
	assert.Error(t, err)
}
