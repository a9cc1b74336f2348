package engine

import (
	"cmp"
	"slices"
)

// OrderGroups returns the buckets sorted by descending size.
// Equal sizes keep their first-seen key order.
func OrderGroups[T any](g Groups[T]) []Bucket[T] {
	return orderBuckets(g.buckets)
}

func orderBuckets[T any](buckets []Bucket[T]) []Bucket[T] {
	out := slices.Clone(buckets)
	slices.SortStableFunc(out, func(a, b Bucket[T]) int {
		return cmp.Compare(len(b.Items), len(a.Items))
	})
	return out
}

// OrderTree sorts branches by their total size and the buckets inside each
// branch by their own size, both descending and stable.
func OrderTree[T any](t Tree[T]) []Branch[T] {
	out := make([]Branch[T], len(t.branches))
	for i, br := range t.branches {
		out[i] = Branch[T]{Key: br.Key, Buckets: orderBuckets(br.Buckets)}
	}
	slices.SortStableFunc(out, func(a, b Branch[T]) int {
		return cmp.Compare(b.Size(), a.Size())
	})
	return out
}

// OrderRecords returns a sorted copy of items; items itself is left as is.
func OrderRecords[T any](items []T, compare func(a, b T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, compare)
	return out
}

// SortByText orders records ascending by a text field using c.
func SortByText[T any](items []T, text func(T) string, c *Collator) []T {
	return OrderRecords(items, func(a, b T) int {
		return c.Compare(text(a), text(b))
	})
}
