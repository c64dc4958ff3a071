// Package cli is the terminal front end of the HR desktop client: a
// small REPL that routes between the auth flow and the main command set
// based on the session controller's observable state.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mobiledv/hrdesk/internal/client/api"
	"github.com/mobiledv/hrdesk/internal/client/config"
	"github.com/mobiledv/hrdesk/internal/client/controllers"
	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/client/session"
	"github.com/mobiledv/hrdesk/internal/client/store"
	"github.com/mobiledv/hrdesk/internal/logging"
)

// App wires the whole client together: the settings store, the session
// controller, the REST clients, and one controller per feature. It is
// the composition root; every collaborator is injected by constructor,
// with no runtime lookup.
type App struct {
	cfg *config.Config
	log logging.Logger
	db  *sql.DB

	session    *session.Controller
	employees  *controllers.EmployeesController
	users      *controllers.ListController[models.User, models.UserCreateRequest]
	projects   *controllers.ListController[models.Project, models.ProjectCreateRequest]
	attendance *controllers.AttendanceController
	salaries   *controllers.SalariesController
	dashboard  *controllers.DashboardController
	reports    *controllers.ReportsController

	reader *bufio.Reader
}

// NewApp builds the App from configuration.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	st, db, err := store.Open(ctx, cfg.SettingsDBPath)
	if err != nil {
		return nil, err
	}

	// The token source closes over the controller variable so resource
	// clients always read the token current at call time.
	var sess *session.Controller
	client := api.New(cfg.ServerBaseURL, func() string {
		if sess == nil {
			return ""
		}
		return sess.Token()
	}, api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))

	hr := api.NewHR(client)
	sess = session.New(st, hr.Auth, log)

	return &App{
		cfg:        cfg,
		log:        log,
		db:         db,
		session:    sess,
		employees:  controllers.NewEmployeesController(hr.Employees, log),
		users:      controllers.NewListController[models.User, models.UserCreateRequest](hr.Users, log, "users"),
		projects:   controllers.NewListController[models.Project, models.ProjectCreateRequest](hr.Projects, log, "projects"),
		attendance: controllers.NewAttendanceController(hr.Attendance, log),
		salaries:   controllers.NewSalariesController(hr.Salaries, log),
		dashboard:  controllers.NewDashboardController(hr, log),
		reports:    controllers.NewReportsController(hr, log),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session from the settings store and enters the REPL.
// Bootstrap happens before the first prompt, so the user never sees the
// authenticated command set while the phase is still unknown.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	a.session.Bootstrap(ctx)
	if user, ok := a.session.CurrentUser(); ok {
		printlnFn("Welcome back,", user.FullName)
	}

	a.repl(ctx)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Phase == session.PhaseAuthenticated
}

func (a *App) prompt() string {
	if user, ok := a.session.CurrentUser(); ok {
		return user.Email
	}
	return "anonymous"
}
