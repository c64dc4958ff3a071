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

// SalariesController drives the salary screen. The salary collection is
// not a plain CRUD resource: records are produced by the backend's
// calculate endpoint and then move through payment statuses.
type SalariesController struct {
	api *api.SalariesClient
	log logging.Logger

	mu   sync.Mutex
	cell *state.Cell[ListState[models.SalaryRecord]]
	gen  atomic.Uint64
}

// NewSalariesController builds the controller over the salaries client.
func NewSalariesController(a *api.SalariesClient, log logging.Logger) *SalariesController {
	return &SalariesController{
		api:  a,
		log:  log.With("controller", "salaries"),
		cell: state.NewCell(ListState[models.SalaryRecord]{}),
	}
}

// State returns the current snapshot.
func (c *SalariesController) State() ListState[models.SalaryRecord] {
	return c.cell.Get()
}

// Subscribe registers fn for state changes and returns a cancel func.
func (c *SalariesController) Subscribe(fn func(ListState[models.SalaryRecord])) (cancel func()) {
	return c.cell.Subscribe(fn)
}

// Invalidate drops the result of any operation still in flight.
func (c *SalariesController) Invalidate() {
	c.gen.Add(1)
}

// Load replaces the record list with the server's current state.
func (c *SalariesController) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Calculate asks the backend to compute a new salary record and reloads
// the list on success.
func (c *SalariesController) Calculate(ctx context.Context, req models.SalaryCalculationRequest) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.Calculate(ctx, req)
		return err
	})
}

// UpdatePaymentStatus changes a record's payment status and reloads the
// list on success.
func (c *SalariesController) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.UpdatePaymentStatus(ctx, id, status)
		return err
	})
}

// History fetches one employee's salary history. The result is returned
// directly and does not replace the screen's list snapshot.
func (c *SalariesController) History(ctx context.Context, employeeID string) ([]models.SalaryRecord, error) {
	return c.api.History(ctx, employeeID)
}

func (c *SalariesController) mutate(ctx context.Context, op func(ctx context.Context) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	gen := c.gen.Load()
	c.setLoading()

	if err := op(ctx); err != nil {
		c.fail(ctx, gen, err)
		return err
	}
	return c.load(ctx)
}

func (c *SalariesController) load(ctx context.Context) error {
	gen := c.gen.Load()
	c.setLoading()

	items, err := c.api.List(ctx)
	if err != nil {
		c.fail(ctx, gen, err)
		return err
	}
	if c.gen.Load() != gen {
		return nil
	}

	c.cell.Update(func(s ListState[models.SalaryRecord]) ListState[models.SalaryRecord] {
		s.Items = items
		s.IsLoading = false
		s.Error = ""
		return s
	})
	return nil
}

func (c *SalariesController) setLoading() {
	c.cell.Update(func(s ListState[models.SalaryRecord]) ListState[models.SalaryRecord] {
		s.IsLoading = true
		s.Error = ""
		return s
	})
}

func (c *SalariesController) fail(ctx context.Context, gen uint64, err error) {
	c.log.Warn(ctx, "operation failed", "err", err)
	if c.gen.Load() != gen {
		return
	}
	c.cell.Update(func(s ListState[models.SalaryRecord]) ListState[models.SalaryRecord] {
		s.IsLoading = false
		s.Error = err.Error()
		return s
	})
}
