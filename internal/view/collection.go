package view

import (
	"context"
)

// Collection owns one screen's fetched items and the fetch lifecycle.
// A failed refetch keeps the prior items and surfaces the static load
// error; the user retries by re-invoking the fetch.
type Collection[T any] struct {
	list    func(context.Context) ([]T, error)
	loadErr string
	items   []T
	loading bool
	errMsg  string
}

func NewCollection[T any](list func(context.Context) ([]T, error), loadErr string) *Collection[T] {
	return &Collection[T]{list: list, loadErr: loadErr}
}

func (c *Collection[T]) Refetch(ctx context.Context) {
	c.loading = true
	defer func() { c.loading = false }()

	items, err := c.list(ctx)
	if err != nil {
		c.errMsg = c.loadErr
		return
	}
	c.items = items
	c.errMsg = ""
}

func (c *Collection[T]) Items() []T {
	return c.items
}

func (c *Collection[T]) Loading() bool {
	return c.loading
}

// Err returns the load error message, empty when the last fetch succeeded.
func (c *Collection[T]) Err() string {
	return c.errMsg
}
