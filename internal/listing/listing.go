// Package listing filters fetched collections for the list views.
//
// Every function is pure: it returns a new slice and never mutates its
// input, so a collection held by a live view can be re-filtered on every
// change without being refetched.
package listing

import "strings"

// All is the choice label meaning "no constraint".
const All = "All"

// Predicate reports whether an item belongs in the view. A nil Predicate
// imposes no constraint.
type Predicate[T any] func(T) bool

// Filter returns the items for which every non-nil predicate holds, in
// their original order.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range active {
			if !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// Equals matches items whose field equals value exactly. An empty value or
// All yields a nil predicate.
func Equals[T any](value string, field func(T) string) Predicate[T] {
	if value == "" || value == All {
		return nil
	}
	return func(it T) bool { return field(it) == value }
}

// Search matches items where any of the fields contains query, ignoring
// case and surrounding whitespace. An empty or blank query yields a nil
// predicate.
func Search[T any](query string, fields ...func(T) string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(it T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(it)), q) {
				return true
			}
		}
		return false
	}
}

// Truncate returns the first n items. n <= 0 means no limit.
func Truncate[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return append([]T(nil), items...)
	}
	return append([]T(nil), items[:n]...)
}

// View is the filtered, truncated slice a list renders.
type View[T any] struct {
	Items   []T
	Total   int // size of the collection
	Matched int // items matching before truncation
}

// Empty reports whether the view renders its empty state.
func (v View[T]) Empty() bool { return len(v.Items) == 0 }

// Slice filters items and truncates the result to limit.
func Slice[T any](items []T, limit int, preds ...Predicate[T]) View[T] {
	matched := Filter(items, preds...)
	return View[T]{
		Items:   Truncate(matched, limit),
		Total:   len(items),
		Matched: len(matched),
	}
}

// Distinct returns the non-empty field values in first-seen order, after
// the lead entries.
func Distinct[T any](items []T, field func(T) string, lead ...string) []string {
	seen := make(map[string]struct{}, len(items)+len(lead))
	out := make([]string, 0, len(items)+len(lead))
	for _, l := range lead {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	for _, it := range items {
		v := field(it)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Bucket is one group of items sharing a key.
type Bucket[K comparable, T any] struct {
	Key   K
	Items []T
}

// Group buckets items by key. Buckets follow order; keys not in order
// are appended in first-seen order. Empty buckets are omitted.
func Group[K comparable, T any](items []T, key func(T) K, order ...K) []Bucket[K, T] {
	idx := make(map[K]int, len(order))
	groups := make([]Bucket[K, T], 0, len(order))
	for _, k := range order {
		if _, ok := idx[k]; ok {
			continue
		}
		idx[k] = len(groups)
		groups = append(groups, Bucket[K, T]{Key: k})
	}
	for _, it := range items {
		k := key(it)
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, Bucket[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, it)
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g.Items) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// Find returns the first item matching pred.
func Find[T any](items []T, pred Predicate[T]) (T, bool) {
	for _, it := range items {
		if pred(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Not inverts a predicate. Not(nil) is nil.
func Not[T any](p Predicate[T]) Predicate[T] {
	if p == nil {
		return nil
	}
	return func(it T) bool { return !p(it) }
}
