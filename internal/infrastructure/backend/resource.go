package backend

import (
	"context"
	"fmt"
)

// resource CRUD uniforme sobre una colección REST. Cada API de entidad lo embebe.
type resource[T any] struct {
	c    *Client
	base string
}

func newResource[T any](c *Client, base string) resource[T] {
	return resource[T]{c: c, base: base}
}

func (r resource[T]) item(id int64) string {
	return fmt.Sprintf("%s/%d", r.base, id)
}

// GetAll GET /{base}. Una respuesta vacía se devuelve como lista vacía.
func (r resource[T]) GetAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.get(ctx, r.base, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// GetByID GET /{base}/{id}.
func (r resource[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.c.get(ctx, r.item(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create POST /{base} y devuelve la entidad creada por el backend.
func (r resource[T]) Create(ctx context.Context, in T) (*T, error) {
	var out T
	if err := r.c.post(ctx, r.base, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /{base}/{id}.
func (r resource[T]) Update(ctx context.Context, id int64, in T) (*T, error) {
	var out T
	if err := r.c.put(ctx, r.item(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /{base}/{id}.
func (r resource[T]) Delete(ctx context.Context, id int64) error {
	return r.c.delete(ctx, r.item(id))
}
