package controllers

import (
	"context"
	"sync"

	"github.com/mobiledv/hrdesk/internal/client/api"
	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/client/state"
	"github.com/mobiledv/hrdesk/internal/logging"
)

// ReportState holds the per-collection report snapshots. Each generate
// operation fills exactly one slice; the others keep their last value.
type ReportState struct {
	EmployeeReport   []models.Employee
	AttendanceReport []models.Attendance
	SalaryReport     []models.SalaryRecord
	ProjectReport    []models.Project
	IsLoading        bool
	Error            string
}

// ReportsController produces the flat collection dumps the reports
// screen renders into its templates.
type ReportsController struct {
	hr  *api.HR
	log logging.Logger

	mu   sync.Mutex
	cell *state.Cell[ReportState]
}

// NewReportsController builds the controller over the full client set.
func NewReportsController(hr *api.HR, log logging.Logger) *ReportsController {
	return &ReportsController{
		hr:   hr,
		log:  log.With("controller", "reports"),
		cell: state.NewCell(ReportState{}),
	}
}

// State returns the current snapshot.
func (c *ReportsController) State() ReportState {
	return c.cell.Get()
}

// Subscribe registers fn for state changes and returns a cancel func.
func (c *ReportsController) Subscribe(fn func(ReportState)) (cancel func()) {
	return c.cell.Subscribe(fn)
}

// GenerateEmployeeReport loads the employee collection into the report.
func (c *ReportsController) GenerateEmployeeReport(ctx context.Context) error {
	return c.generate(ctx, func(ctx context.Context, s *ReportState) error {
		items, err := c.hr.Employees.List(ctx)
		if err != nil {
			return err
		}
		s.EmployeeReport = items
		return nil
	})
}

// GenerateAttendanceReport loads the first attendance page into the report.
func (c *ReportsController) GenerateAttendanceReport(ctx context.Context) error {
	return c.generate(ctx, func(ctx context.Context, s *ReportState) error {
		page, err := c.hr.Attendance.ListPage(ctx, 1, DefaultPageSize)
		if err != nil {
			return err
		}
		s.AttendanceReport = page.Data
		return nil
	})
}

// GenerateSalaryReport loads the salary collection into the report.
func (c *ReportsController) GenerateSalaryReport(ctx context.Context) error {
	return c.generate(ctx, func(ctx context.Context, s *ReportState) error {
		items, err := c.hr.Salaries.List(ctx)
		if err != nil {
			return err
		}
		s.SalaryReport = items
		return nil
	})
}

// GenerateProjectReport loads the project collection into the report.
func (c *ReportsController) GenerateProjectReport(ctx context.Context) error {
	return c.generate(ctx, func(ctx context.Context, s *ReportState) error {
		items, err := c.hr.Projects.List(ctx)
		if err != nil {
			return err
		}
		s.ProjectReport = items
		return nil
	})
}

func (c *ReportsController) generate(ctx context.Context, fill func(ctx context.Context, s *ReportState) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cell.Update(func(s ReportState) ReportState {
		s.IsLoading = true
		s.Error = ""
		return s
	})

	next := c.cell.Get()
	if err := fill(ctx, &next); err != nil {
		c.log.Warn(ctx, "report generation failed", "err", err)
		c.cell.Update(func(s ReportState) ReportState {
			s.IsLoading = false
			s.Error = err.Error()
			return s
		})
		return err
	}

	next.IsLoading = false
	next.Error = ""
	c.cell.Set(next)
	return nil
}
