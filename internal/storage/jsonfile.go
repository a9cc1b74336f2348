package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// JSONFile keeps a JSON array in a single file. Every Append reads the whole
// file, appends and rewrites it; the mutex only serialises callers inside
// this process.
type JSONFile[T any] struct {
	path string
	key  KeyFunc[T]
	mu   sync.Mutex
}

func NewJSONFile[T any](path string, key KeyFunc[T]) *JSONFile[T] {
	return &JSONFile[T]{path: path, key: key}
}

func (f *JSONFile[T]) Get(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *JSONFile[T]) Append(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.read()
	if err != nil {
		return err
	}
	items = append(items, item)

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

func (f *JSONFile[T]) FindByKey(ctx context.Context, key string) (T, bool, error) {
	var zero T
	items, err := f.Get(ctx)
	if err != nil {
		return zero, false, err
	}
	item, ok := find(items, f.key, key)
	return item, ok, nil
}

// read treats a blank file as an empty list.
func (f *JSONFile[T]) read() ([]T, error) {
	content, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	items := []T{}
	if len(bytes.TrimSpace(content)) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(content, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return items, nil
}

// Document is a read-only JSON document of any shape, read fresh on each Load.
type Document[T any] struct {
	path string
}

func NewDocument[T any](path string) *Document[T] {
	return &Document[T]{path: path}
}

func (d *Document[T]) Load(ctx context.Context) (T, error) {
	var v T
	if err := ctx.Err(); err != nil {
		return v, err
	}
	content, err := os.ReadFile(d.path)
	if err != nil {
		return v, fmt.Errorf("read %s: %w", d.path, err)
	}
	if err := json.Unmarshal(content, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", d.path, err)
	}
	return v, nil
}
