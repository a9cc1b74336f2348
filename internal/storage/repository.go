// Package storage holds the record repositories behind the storefront and
// languages endpoints. Every backend stores a flat, append-only list.
package storage

import (
	"context"
	"fmt"
)

// Repository is the storage contract the services depend on.
type Repository[T any] interface {
	// Get returns every record in insertion order.
	Get(ctx context.Context) ([]T, error)
	// Append adds one record at the end.
	Append(ctx context.Context, item T) error
	// FindByKey returns the first record whose key equals key.
	FindByKey(ctx context.Context, key string) (T, bool, error)
}

// KeyFunc extracts the lookup key of a record.
type KeyFunc[T any] func(T) string

// Copy appends every record of src to dst and reports how many were copied.
func Copy[T any](ctx context.Context, dst, src Repository[T]) (int, error) {
	items, err := src.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("copy: %w", err)
	}
	for i, item := range items {
		if err := dst.Append(ctx, item); err != nil {
			return i, fmt.Errorf("copy record %d: %w", i, err)
		}
	}
	return len(items), nil
}

func find[T any](items []T, key KeyFunc[T], want string) (T, bool) {
	for _, item := range items {
		if key(item) == want {
			return item, true
		}
	}
	var zero T
	return zero, false
}
