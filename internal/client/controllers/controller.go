// Package controllers holds the per-feature state holders sitting
// between the presentation layer and the REST clients. Each controller
// owns a list snapshot plus loading/error flags, published through a
// reactive cell; mutations reload the list from the server instead of
// patching it in place.
package controllers

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/mobiledv/hrdesk/internal/client/state"
	"github.com/mobiledv/hrdesk/internal/logging"
)

// CrudAPI is the resource-client surface the generic controller needs.
// api.Resource and the typed clients embedding it satisfy this.
type CrudAPI[T any, C any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload C) (T, error)
	Update(ctx context.Context, id string, payload C) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ListState is a feature controller's observable state. Items always
// holds the last successfully loaded snapshot; Error is "" when the
// last operation succeeded.
type ListState[T any] struct {
	Items     []T
	IsLoading bool
	Error     string
}

// ListController implements the load / create / update / delete pattern
// shared by the employees, users, and projects screens.
//
// Operations are serialized per controller; controllers for different
// features run independently. Invalidate discards the effect of any
// operation still in flight, for teardown.
type ListController[T any, C any] struct {
	api CrudAPI[T, C]
	log logging.Logger

	mu   sync.Mutex
	cell *state.Cell[ListState[T]]
	gen  atomic.Uint64
}

// NewListController builds a controller over a CRUD client. name tags
// the controller's log lines.
func NewListController[T any, C any](a CrudAPI[T, C], log logging.Logger, name string) *ListController[T, C] {
	return &ListController[T, C]{
		api:  a,
		log:  log.With("controller", name),
		cell: state.NewCell(ListState[T]{}),
	}
}

// State returns the current snapshot.
func (c *ListController[T, C]) State() ListState[T] {
	return c.cell.Get()
}

// Subscribe registers fn for state changes and returns a cancel func.
func (c *ListController[T, C]) Subscribe(fn func(ListState[T])) (cancel func()) {
	return c.cell.Subscribe(fn)
}

// Invalidate marks every in-flight operation stale: when it completes,
// its result is dropped instead of being applied to the state. Called
// on teardown so a late response cannot resurrect a dead screen's state.
func (c *ListController[T, C]) Invalidate() {
	c.gen.Add(1)
}

// Load replaces Items with the server's current collection. On failure
// the previous Items are kept and Error carries the message.
func (c *ListController[T, C]) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Create posts a new entity and reloads the list on success.
func (c *ListController[T, C]) Create(ctx context.Context, payload C) error {
	return c.Mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.Create(ctx, payload)
		return err
	})
}

// Update replaces an entity and reloads the list on success.
func (c *ListController[T, C]) Update(ctx context.Context, id string, payload C) error {
	return c.Mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.Update(ctx, id, payload)
		return err
	})
}

// Delete removes an entity and reloads the list on success.
func (c *ListController[T, C]) Delete(ctx context.Context, id string) error {
	return c.Mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.Delete(ctx, id)
		return err
	})
}

// Mutate runs an arbitrary mutation under the controller's standard
// semantics: loading flag up, error cleared, full reload after success.
// Typed controllers use it for their extra operations.
func (c *ListController[T, C]) Mutate(ctx context.Context, op func(ctx context.Context) error) error {
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

// load is the unlocked core of Load, reused after mutations.
func (c *ListController[T, C]) load(ctx context.Context) error {
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

	c.cell.Update(func(s ListState[T]) ListState[T] {
		s.Items = items
		s.IsLoading = false
		s.Error = ""
		return s
	})
	return nil
}

func (c *ListController[T, C]) setLoading() {
	c.cell.Update(func(s ListState[T]) ListState[T] {
		s.IsLoading = true
		s.Error = ""
		return s
	})
}

// fail records an operation failure, keeping the last good Items.
func (c *ListController[T, C]) fail(ctx context.Context, gen uint64, err error) {
	c.log.Warn(ctx, "operation failed", "err", err)
	if c.gen.Load() != gen {
		return
	}
	c.cell.Update(func(s ListState[T]) ListState[T] {
		s.IsLoading = false
		s.Error = err.Error()
		return s
	})
}
