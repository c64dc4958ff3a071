package api

import (
	"context"
	"net/http"
	"net/url"
)

// Resource is a generic CRUD accessor for one backend collection.
// T is the entity type, C the create/update payload type.
//
// Every method is a single request mapped to a value or an error; there
// is no retry or caching at this layer.
type Resource[T any, C any] struct {
	c        *Client
	basePath string
}

// NewResource binds a Resource to a collection path, e.g. "/admin/projects".
func NewResource[T any, C any](c *Client, basePath string) *Resource[T, C] {
	return &Resource[T, C]{c: c, basePath: basePath}
}

// List fetches the whole collection.
func (r *Resource[T, C]) List(ctx context.Context) ([]T, error) {
	data, _, err := r.c.do(ctx, http.MethodGet, r.basePath, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeResource[[]T](data)
}

// Get fetches a single entity by id.
func (r *Resource[T, C]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	data, _, err := r.c.do(ctx, http.MethodGet, r.basePath+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return zero, err
	}
	return decodeResource[T](data)
}

// Create posts a new entity and returns the server-assigned record.
func (r *Resource[T, C]) Create(ctx context.Context, payload C) (T, error) {
	var zero T
	data, _, err := r.c.do(ctx, http.MethodPost, r.basePath, nil, payload)
	if err != nil {
		return zero, err
	}
	return decodeResource[T](data)
}

// Update replaces the entity with the given id.
func (r *Resource[T, C]) Update(ctx context.Context, id string, payload C) (T, error) {
	var zero T
	data, _, err := r.c.do(ctx, http.MethodPut, r.basePath+"/"+url.PathEscape(id), nil, payload)
	if err != nil {
		return zero, err
	}
	return decodeResource[T](data)
}

// Delete removes the entity with the given id. The result reports
// whether the backend answered 200, matching the original contract.
func (r *Resource[T, C]) Delete(ctx context.Context, id string) (bool, error) {
	_, status, err := r.c.do(ctx, http.MethodDelete, r.basePath+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return false, err
	}
	return status == http.StatusOK, nil
}
