package gateway

import (
	"context"

	"github.com/jwalitptl/clinic-console/internal/apiclient"
)

// Resource maps CRUD intents onto one collection's endpoints. T is the
// server record, D the client draft sent on create and update.
type Resource[T any, D any] struct {
	client *apiclient.Client
	path   string
}

func NewResource[T any, D any](client *apiclient.Client, path string) *Resource[T, D] {
	return &Resource[T, D]{client: client, path: path}
}

func (r *Resource[T, D]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.Get(ctx, r.path+"/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T, D]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.client.Get(ctx, r.path+"/"+id, &out)
	return out, err
}

func (r *Resource[T, D]) Create(ctx context.Context, draft D) error {
	return r.client.Post(ctx, r.path+"/add", draft, nil)
}

func (r *Resource[T, D]) Update(ctx context.Context, id string, draft D) error {
	return r.client.Put(ctx, r.path+"/update/"+id, draft, nil)
}

func (r *Resource[T, D]) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.path+"/delete/"+id)
}

// ReadOnly exposes list and get for collections this surface never mutates.
type ReadOnly[T any] struct {
	client *apiclient.Client
	path   string
}

func NewReadOnly[T any](client *apiclient.Client, path string) *ReadOnly[T] {
	return &ReadOnly[T]{client: client, path: path}
}

func (r *ReadOnly[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.Get(ctx, r.path+"/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReadOnly[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.client.Get(ctx, r.path+"/"+id, &out)
	return out, err
}
