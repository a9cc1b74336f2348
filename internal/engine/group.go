package engine

// KeyFunc derives a single group key from a record.
// ok is false when the record has no value for the key.
type KeyFunc[T any] func(T) (key string, ok bool)

// KeysFunc derives every group key of a multi-valued field.
type KeysFunc[T any] func(T) []string

// Bucket is the sequence of records sharing one key, in input order.
type Bucket[T any] struct {
	Key   string
	Items []T
}

func (b Bucket[T]) Len() int { return len(b.Items) }

// Groups is a key -> bucket mapping whose keys enumerate in first-seen order.
type Groups[T any] struct {
	buckets []Bucket[T]
	index   map[string]int
}

func (g Groups[T]) Len() int { return len(g.buckets) }

func (g Groups[T]) Keys() []string {
	keys := make([]string, len(g.buckets))
	for i, b := range g.buckets {
		keys[i] = b.Key
	}
	return keys
}

func (g Groups[T]) Get(key string) ([]T, bool) {
	i, ok := g.index[key]
	if !ok {
		return nil, false
	}
	return g.buckets[i].Items, true
}

// Buckets returns the buckets in first-seen key order.
func (g Groups[T]) Buckets() []Bucket[T] {
	out := make([]Bucket[T], len(g.buckets))
	copy(out, g.buckets)
	return out
}

// Branch is one outer key of a Tree with its inner buckets.
type Branch[T any] struct {
	Key     string
	Buckets []Bucket[T]
}

// Size is the sum of all inner bucket sizes.
func (b Branch[T]) Size() int {
	n := 0
	for _, bk := range b.Buckets {
		n += len(bk.Items)
	}
	return n
}

// Tree is the two-level variant of Groups: outer key -> inner key -> bucket.
type Tree[T any] struct {
	branches []Branch[T]
	index    map[string]int
}

func (t Tree[T]) Len() int { return len(t.branches) }

func (t Tree[T]) Branches() []Branch[T] {
	out := make([]Branch[T], len(t.branches))
	copy(out, t.branches)
	return out
}

func (t Tree[T]) Get(outer, inner string) ([]T, bool) {
	i, ok := t.index[outer]
	if !ok {
		return nil, false
	}
	for _, b := range t.branches[i].Buckets {
		if b.Key == inner {
			return b.Items, true
		}
	}
	return nil, false
}

type options struct {
	missingLabel string
}

// Option tunes a grouping pass.
type Option func(*options)

// WithMissingLabel buckets records without a key value under label.
// Without it such records are dropped from the result.
func WithMissingLabel(label string) Option {
	return func(o *options) { o.missingLabel = label }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) resolve(key string, ok bool) (string, bool) {
	if ok {
		return key, true
	}
	if o.missingLabel != "" {
		return o.missingLabel, true
	}
	return "", false
}

// GroupBy partitions items into one bucket per distinct key value.
func GroupBy[T any](items []T, key KeyFunc[T], opts ...Option) Groups[T] {
	o := newOptions(opts)
	s := newBucketStore[T]()
	for _, item := range items {
		k, ok := o.resolve(key(item))
		if !ok {
			continue
		}
		s.add(k, item)
	}
	return s.groups()
}

// GroupByEach places every item into one bucket per distinct value of a
// multi-valued field. An item listing two values lands in two buckets.
func GroupByEach[T any](items []T, keys KeysFunc[T], opts ...Option) Groups[T] {
	o := newOptions(opts)
	s := newBucketStore[T]()
	for _, item := range items {
		values := keys(item)
		if len(values) == 0 {
			if k, ok := o.resolve("", false); ok {
				s.add(k, item)
			}
			continue
		}
		for i, v := range values {
			if containsBefore(values, i) {
				continue
			}
			s.add(v, item)
		}
	}
	return s.groups()
}

// containsBefore reports whether values[i] already occurs in values[:i].
func containsBefore(values []string, i int) bool {
	for _, v := range values[:i] {
		if v == values[i] {
			return true
		}
	}
	return false
}

// GroupByTwoLevel builds tree[outer][inner]. Both levels enumerate keys in
// first-seen order. A missing outer or inner key drops the item unless a
// missing label is configured.
func GroupByTwoLevel[T any](items []T, outer, inner KeyFunc[T], opts ...Option) Tree[T] {
	o := newOptions(opts)
	dict := NewDict()
	var stores []*bucketStore[T]

	for _, item := range items {
		outerKey, found := o.resolve(outer(item))
		if !found {
			continue
		}
		innerKey, found := o.resolve(inner(item))
		if !found {
			continue
		}
		id := dict.ID(outerKey)
		if int(id) == len(stores) {
			stores = append(stores, newBucketStore[T]())
		}
		stores[id].add(innerKey, item)
	}

	t := Tree[T]{
		branches: make([]Branch[T], len(stores)),
		index:    make(map[string]int, len(stores)),
	}
	for i, s := range stores {
		key := dict.Key(int32(i))
		t.branches[i] = Branch[T]{Key: key, Buckets: s.groups().buckets}
		t.index[key] = i
	}
	return t
}
