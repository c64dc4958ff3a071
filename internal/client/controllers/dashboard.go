package controllers

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/mobiledv/hrdesk/internal/client/api"
	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/client/state"
	"github.com/mobiledv/hrdesk/internal/logging"
)

// recentCount is how many recent employees/projects the dashboard shows.
const recentCount = 5

// DashboardData is the aggregated overview computed from the employee,
// attendance, project, and salary collections.
type DashboardData struct {
	TotalEmployees        int
	ActiveEmployees       int
	TotalProjects         int
	ActiveProjects        int
	PendingSalaries       int
	MonthlyAttendanceRate float64
	RecentEmployees       []models.Employee
	RecentProjects        []models.Project
}

// DashboardState is the dashboard screen's observable state.
type DashboardState struct {
	Data      *DashboardData
	IsLoading bool
	Error     string
}

// DashboardController loads all four collections and reduces them to
// DashboardData. Any one failing fails the whole load; the previous
// data is kept.
type DashboardController struct {
	hr  *api.HR
	log logging.Logger

	mu   sync.Mutex
	cell *state.Cell[DashboardState]
	gen  atomic.Uint64
}

// NewDashboardController builds the controller over the full client set.
func NewDashboardController(hr *api.HR, log logging.Logger) *DashboardController {
	return &DashboardController{
		hr:   hr,
		log:  log.With("controller", "dashboard"),
		cell: state.NewCell(DashboardState{}),
	}
}

// State returns the current snapshot.
func (c *DashboardController) State() DashboardState {
	return c.cell.Get()
}

// Subscribe registers fn for state changes and returns a cancel func.
func (c *DashboardController) Subscribe(fn func(DashboardState)) (cancel func()) {
	return c.cell.Subscribe(fn)
}

// Invalidate drops the result of any load still in flight.
func (c *DashboardController) Invalidate() {
	c.gen.Add(1)
}

// Load fetches everything the dashboard aggregates.
func (c *DashboardController) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	gen := c.gen.Load()
	c.cell.Update(func(s DashboardState) DashboardState {
		s.IsLoading = true
		s.Error = ""
		return s
	})

	data, err := c.collect(ctx)
	if err != nil {
		c.log.Warn(ctx, "dashboard load failed", "err", err)
		if c.gen.Load() != gen {
			return err
		}
		c.cell.Update(func(s DashboardState) DashboardState {
			s.IsLoading = false
			s.Error = err.Error()
			return s
		})
		return err
	}
	if c.gen.Load() != gen {
		return nil
	}

	c.cell.Set(DashboardState{Data: data})
	return nil
}

func (c *DashboardController) collect(ctx context.Context) (*DashboardData, error) {
	employees, err := c.hr.Employees.List(ctx)
	if err != nil {
		return nil, err
	}
	attendance, err := c.hr.Attendance.ListPage(ctx, 1, DefaultPageSize)
	if err != nil {
		return nil, err
	}
	projects, err := c.hr.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	salaries, err := c.hr.Salaries.List(ctx)
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		TotalEmployees:        len(employees),
		TotalProjects:         len(projects),
		MonthlyAttendanceRate: attendanceRate(attendance.Data),
	}
	for _, e := range employees {
		if e.IsActive {
			data.ActiveEmployees++
		}
	}
	for _, p := range projects {
		if p.Status == models.ProjectActive {
			data.ActiveProjects++
		}
	}
	for _, s := range salaries {
		if s.PaymentStatus == models.PaymentPending {
			data.PendingSalaries++
		}
	}

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].CreatedAt.After(employees[j].CreatedAt)
	})
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	data.RecentEmployees = head(employees, recentCount)
	data.RecentProjects = head(projects, recentCount)

	return data, nil
}

// attendanceRate is the share of PRESENT records, in percent.
func attendanceRate(records []models.Attendance) float64 {
	if len(records) == 0 {
		return 0
	}
	present := 0
	for _, a := range records {
		if a.Status == models.AttendancePresent {
			present++
		}
	}
	return float64(present) / float64(len(records)) * 100
}

func head[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}
