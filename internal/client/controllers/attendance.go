package controllers

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/mobiledv/hrdesk/internal/client/api"
	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/client/state"
	"github.com/mobiledv/hrdesk/internal/logging"
)

// DefaultPageSize matches the backend's default for attendance listings.
const DefaultPageSize = 20

// AttendanceState is the attendance screen's observable state: one page
// of records plus the paging bookkeeping needed for next/previous.
type AttendanceState struct {
	Items      []models.Attendance
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	IsLoading  bool
	Error      string
}

// HasNextPage reports whether a later page exists.
func (s AttendanceState) HasNextPage() bool { return s.Page < s.TotalPages }

// HasPreviousPage reports whether an earlier page exists.
func (s AttendanceState) HasPreviousPage() bool { return s.Page > 1 }

// AttendanceController drives the attendance screen: paged listing,
// CRUD, and the manager check-in/check-out actions. Mutations reload
// the page that is currently shown.
type AttendanceController struct {
	api *api.AttendanceClient
	log logging.Logger

	mu   sync.Mutex
	cell *state.Cell[AttendanceState]
	gen  atomic.Uint64
}

// NewAttendanceController builds the controller over the attendance client.
func NewAttendanceController(a *api.AttendanceClient, log logging.Logger) *AttendanceController {
	return &AttendanceController{
		api:  a,
		log:  log.With("controller", "attendance"),
		cell: state.NewCell(AttendanceState{Page: 1, PageSize: DefaultPageSize}),
	}
}

// State returns the current snapshot.
func (c *AttendanceController) State() AttendanceState {
	return c.cell.Get()
}

// Subscribe registers fn for state changes and returns a cancel func.
func (c *AttendanceController) Subscribe(fn func(AttendanceState)) (cancel func()) {
	return c.cell.Subscribe(fn)
}

// Invalidate drops the result of any operation still in flight.
func (c *AttendanceController) Invalidate() {
	c.gen.Add(1)
}

// Load fetches the given page. Page numbers are 1-indexed; values below
// 1 load the first page.
func (c *AttendanceController) Load(ctx context.Context, page int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx, page)
}

// Create adds an attendance record and reloads the current page.
func (c *AttendanceController) Create(ctx context.Context, req models.AttendanceCreateRequest) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.Create(ctx, req)
		return err
	})
}

// Update replaces an attendance record and reloads the current page.
func (c *AttendanceController) Update(ctx context.Context, id string, req models.AttendanceCreateRequest) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.Update(ctx, id, req)
		return err
	})
}

// Delete removes an attendance record and reloads the current page.
func (c *AttendanceController) Delete(ctx context.Context, id string) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.Delete(ctx, id)
		return err
	})
}

// CheckIn records the start of an employee's day and reloads the page.
func (c *AttendanceController) CheckIn(ctx context.Context, employeeID string) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.CheckIn(ctx, employeeID)
		return err
	})
}

// CheckOut records the end of an employee's day and reloads the page.
func (c *AttendanceController) CheckOut(ctx context.Context, employeeID string) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.CheckOut(ctx, employeeID)
		return err
	})
}

func (c *AttendanceController) mutate(ctx context.Context, op func(ctx context.Context) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	gen := c.gen.Load()
	c.setLoading()

	if err := op(ctx); err != nil {
		c.fail(ctx, gen, err)
		return err
	}
	return c.load(ctx, c.cell.Get().Page)
}

func (c *AttendanceController) load(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	gen := c.gen.Load()
	c.setLoading()

	resp, err := c.api.ListPage(ctx, page, c.cell.Get().PageSize)
	if err != nil {
		c.fail(ctx, gen, err)
		return err
	}
	if c.gen.Load() != gen {
		return nil
	}

	c.cell.Update(func(s AttendanceState) AttendanceState {
		s.Items = resp.Data
		s.Page = resp.Page
		s.PageSize = resp.PageSize
		s.TotalItems = resp.TotalItems
		s.TotalPages = resp.TotalPages
		s.IsLoading = false
		s.Error = ""
		return s
	})
	return nil
}

func (c *AttendanceController) setLoading() {
	c.cell.Update(func(s AttendanceState) AttendanceState {
		s.IsLoading = true
		s.Error = ""
		return s
	})
}

func (c *AttendanceController) fail(ctx context.Context, gen uint64, err error) {
	c.log.Warn(ctx, "operation failed", "err", err)
	if c.gen.Load() != gen {
		return
	}
	c.cell.Update(func(s AttendanceState) AttendanceState {
		s.IsLoading = false
		s.Error = err.Error()
		return s
	})
}
