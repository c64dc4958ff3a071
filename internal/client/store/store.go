// Package store implements the durable settings store the session layer
// persists auth state into. It is a string key-value table in a local
// SQLite database, surviving process restarts. Single-process,
// last-write-wins; there is no cross-process locking contract.
package store

import "context"

// Store is the durable key-value contract.
//
// Get reports ok=false when the key is absent; absence is not an error.
// PutAll writes a batch atomically: after a crash either all of the
// batch is visible or none of it.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
	PutAll(ctx context.Context, values map[string]string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
