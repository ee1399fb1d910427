package state

import "github.com/odvcencio/fuzzy-state/stream"

// List is the list container: a Value over an ordered slice, with
// list-specific queries and element-level mutators. Mutations are
// copy-on-write; every mutation broadcasts the whole new list.
type List[T any] struct {
	Value[[]T]
}

// NewList creates a list container seeded with items.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	initial := make([]T, len(items))
	copy(initial, items)
	l.current = emission[[]T]{value: initial, present: true}
	l.has = true
	return l
}

// Len returns the current element count.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Get())
}

// Contains reports exact membership by structural equality.
func (l *List[T]) Contains(item T) bool {
	if l == nil {
		return false
	}
	return containsDeep(l.Get(), item)
}

// FirstItem returns the first element satisfying pred in the current list.
func (l *List[T]) FirstItem(pred func(T) bool) (T, bool) {
	if l == nil || pred == nil {
		var zero T
		return zero, false
	}
	return firstMatch(l.Get(), pred)
}

// Items returns all elements satisfying pred in the current list.
func (l *List[T]) Items(pred func(T) bool) []T {
	if l == nil || pred == nil {
		return nil
	}
	return matchItems(l.Get(), pred)
}

// ItemState is a live membership stream for item, deduplicated. With the
// Substring option and textual elements, membership is substring
// containment on any element instead of exact equality.
func (l *List[T]) ItemState(item T, opts ...QueryOption) stream.Source[bool] {
	if l == nil {
		return nil
	}
	cfg := applyQueryOptions(opts)
	src := stream.Map(l.setStream(), func(items []T) bool {
		return containsMatch(items, item, cfg.substring)
	})
	return stream.DistinctUntilChanged(src, func(a, b bool) bool { return a == b })
}

// StateOfItem waits until some element satisfies pred, emits that element
// once, and completes. It is a one-shot wait, not a live item tracker.
func (l *List[T]) StateOfItem(pred func(T) bool) stream.Source[T] {
	if l == nil || pred == nil {
		return nil
	}
	withMatch := stream.Filter(l.setStream(), func(items []T) bool {
		_, ok := firstMatch(items, pred)
		return ok
	})
	matched := stream.Map(withMatch, func(items []T) T {
		v, _ := firstMatch(items, pred)
		return v
	})
	return stream.First(matched)
}

// StateOfItems is a live stream of all elements satisfying pred,
// re-emitted on every set but deduplicated by deep structural equality of
// the matching subset.
func (l *List[T]) StateOfItems(pred func(T) bool) stream.Source[[]T] {
	if l == nil || pred == nil {
		return nil
	}
	matched := stream.Map(l.setStream(), func(items []T) []T {
		return matchItems(items, pred)
	})
	return stream.DistinctUntilChanged(matched, nil)
}

// Add appends item and broadcasts the new list. Duplicates are dropped
// unless the AllowDuplicate option is given.
func (l *List[T]) Add(item T, opts ...WriteOption) {
	if l == nil {
		return
	}
	cfg := applyWriteOptions(opts)
	items := l.Get()
	if !cfg.allowDup && containsDeep(items, item) {
		return
	}
	next := make([]T, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, item)
	l.publish(next, cfg.quiet)
}

// Remove drops every element exactly matching item and broadcasts the new
// list.
func (l *List[T]) Remove(item T, opts ...WriteOption) {
	if l == nil {
		return
	}
	cfg := applyWriteOptions(opts)
	items := l.Get()
	next := make([]T, 0, len(items))
	for _, it := range items {
		if !deepEqual(it, item) {
			next = append(next, it)
		}
	}
	l.publish(next, cfg.quiet)
}

func firstMatch[T any](items []T, pred func(T) bool) (T, bool) {
	for _, it := range items {
		if pred(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func matchItems[T any](items []T, pred func(T) bool) []T {
	matched := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			matched = append(matched, it)
		}
	}
	return matched
}
