package storage

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-process Repository, used by tests and by callers that
// want a scratch store.
type Memory[T any] struct {
	mu    sync.RWMutex
	items []T
	key   KeyFunc[T]
}

func NewMemory[T any](key KeyFunc[T], items ...T) *Memory[T] {
	return &Memory[T]{items: slices.Clone(items), key: key}
}

func (m *Memory[T]) Get(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *Memory[T]) Append(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
	return nil
}

func (m *Memory[T]) FindByKey(ctx context.Context, key string) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := find(m.items, m.key, key)
	return item, ok, nil
}
