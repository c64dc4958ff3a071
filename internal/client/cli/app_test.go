package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobiledv/hrdesk/internal/client/config"
	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/client/session"
	"github.com/mobiledv/hrdesk/internal/hrtest"
	"github.com/mobiledv/hrdesk/internal/logging"
)

// newTestApp builds an App against a fake backend with a scripted input
// stream and captured output.
func newTestApp(t *testing.T, srv *hrtest.Server, script string) (*App, *[]string) {
	t.Helper()

	cfg := &config.Config{
		ServerBaseURL:  srv.URL,
		RequestTimeout: 5 * time.Second,
		SettingsDBPath: filepath.Join(t.TempDir(), "settings.db"),
	}
	log := logging.NewTextLogger(io.Discard, slog.LevelDebug)

	app, err := NewApp(context.Background(), cfg, log)
	require.NoError(t, err)
	app.reader = bufio.NewReader(strings.NewReader(script))

	var lines []string
	origPrintln := printlnFn
	t.Cleanup(func() { printlnFn = origPrintln })
	printlnFn = func(args ...any) {
		lines = append(lines, fmt.Sprintln(args...))
	}

	return app, &lines
}

func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return []byte(password), nil
	}
}

func output(lines *[]string) string {
	return strings.Join(*lines, "")
}

func TestAppLoginFlow(t *testing.T) {
	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddUser("Alice", "a@b.com", "x", models.RoleAdmin)
	stubPassword(t, "x")

	app, lines := newTestApp(t, srv, "login\na@b.com\nwhoami\nlogout\nexit\n")
	require.NoError(t, app.Run(context.Background()))

	out := output(lines)
	assert.Contains(t, out, "Logged in as Alice (ADMIN)")
	assert.Contains(t, out, "Alice <a@b.com> ADMIN")
	assert.Contains(t, out, "Logged out")
	assert.Contains(t, out, "Bye!")
}

func TestAppLoginFailureStaysAnonymous(t *testing.T) {
	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddUser("Alice", "a@b.com", "x", models.RoleAdmin)
	stubPassword(t, "wrong")

	app, lines := newTestApp(t, srv, "login\na@b.com\nexit\n")
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, output(lines), "Login failed:")
	assert.Equal(t, session.PhaseAnonymous, app.session.State().Phase)
}

func TestAppAuthenticatedCommandsHiddenWhenAnonymous(t *testing.T) {
	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)

	app, lines := newTestApp(t, srv, "whoami\nhelp\nexit\n")
	require.NoError(t, app.Run(context.Background()))

	out := output(lines)
	assert.Contains(t, out, "Unknown command: whoami")
	assert.Contains(t, out, helpAnonymous)
}

func TestAppSessionSurvivesRestart(t *testing.T) {
	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddUser("Alice", "a@b.com", "x", models.RoleAdmin)
	stubPassword(t, "x")

	dbPath := filepath.Join(t.TempDir(), "settings.db")
	cfg := &config.Config{
		ServerBaseURL:  srv.URL,
		RequestTimeout: 5 * time.Second,
		SettingsDBPath: dbPath,
	}
	log := logging.NewTextLogger(io.Discard, slog.LevelDebug)

	var lines []string
	origPrintln := printlnFn
	t.Cleanup(func() { printlnFn = origPrintln })
	printlnFn = func(args ...any) { lines = append(lines, fmt.Sprintln(args...)) }

	app1, err := NewApp(context.Background(), cfg, log)
	require.NoError(t, err)
	app1.reader = bufio.NewReader(strings.NewReader("login\na@b.com\nexit\n"))
	require.NoError(t, app1.Run(context.Background()))

	// Same settings database, new process: the session is restored
	// without asking for credentials again.
	app2, err := NewApp(context.Background(), cfg, log)
	require.NoError(t, err)
	app2.reader = bufio.NewReader(strings.NewReader("exit\n"))
	require.NoError(t, app2.Run(context.Background()))

	assert.Contains(t, strings.Join(lines, ""), "Welcome back, Alice")
	assert.Equal(t, session.PhaseAuthenticated, app2.session.State().Phase)
}

func TestAppRegisterFlow(t *testing.T) {
	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)
	stubPassword(t, "secret")

	app, lines := newTestApp(t, srv, "register\nBob Builder\nbob@corp.test\nEMPLOYEE\nexit\n")
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, output(lines), "Account created, logged in as bob@corp.test")
	assert.Equal(t, session.PhaseAuthenticated, app.session.State().Phase)
}
