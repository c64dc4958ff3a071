// Package state implements the observable state container the
// controllers publish through: one mutable cell per controller, updated
// by full-value replacement, with subscribers notified synchronously
// after each replacement.
package state

import "sync"

// Cell holds a single value of type T. Reads return the current
// snapshot; writes replace it wholesale, so observers never see a
// partially updated value.
type Cell[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]func(T)
	next  int
}

// NewCell builds a Cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value and notifies subscribers with the new value.
// Notification is synchronous: Set returns after every subscriber has
// run. Subscribers must not call back into the same Cell's Set.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	subs := make([]func(T), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Update applies fn to the current value and stores the result, under
// the same notification rules as Set.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	v := fn(c.value)
	c.value = v
	subs := make([]func(T), 0, len(c.subs))
	for _, s := range c.subs {
		subs = append(subs, s)
	}
	c.mu.Unlock()

	for _, s := range subs {
		s(v)
	}
}

// Subscribe registers fn for future updates and returns a cancel
// function. fn is not called with the current value; call Get for that.
func (c *Cell[T]) Subscribe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
