package state

import "github.com/odvcencio/fuzzy-state/stream"

// MultiMap is the key-to-value-list container: a Map whose values are
// slices, with element-level mutators per key. Mutations copy the whole
// mapping and broadcast it.
type MultiMap[V any] struct {
	Map[[]V]
}

// NewMultiMap creates an empty multimap container.
func NewMultiMap[V any]() *MultiMap[V] {
	return NewMultiMapOf(map[string][]V{})
}

// NewMultiMapOf creates a multimap container seeded with a copy of initial.
// The per-key slices are copied too.
func NewMultiMapOf[V any](initial map[string][]V) *MultiMap[V] {
	m := &MultiMap[V]{}
	seed := make(map[string][]V, len(initial))
	for k, list := range initial {
		cp := make([]V, len(list))
		copy(cp, list)
		seed[k] = cp
	}
	m.current = emission[map[string][]V]{value: seed, present: true}
	m.has = true
	return m
}

// AddToValue appends item to the list at key, creating the key if needed.
// Duplicates within the key's list are dropped unless AllowDuplicate is
// given.
func (m *MultiMap[V]) AddToValue(key string, item V, opts ...WriteOption) {
	if m == nil {
		return
	}
	cfg := applyWriteOptions(opts)
	current := m.Get()
	list := current[key]
	if !cfg.allowDup && containsDeep(list, item) {
		return
	}
	next := make(map[string][]V, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	grown := make([]V, 0, len(list)+1)
	grown = append(grown, list...)
	grown = append(grown, item)
	next[key] = grown
	m.publish(next, cfg.quiet)
}

// RemoveFromValue drops every element of the list at key exactly matching
// item. The key stays present even when its list becomes empty; use Unset
// to drop the key.
func (m *MultiMap[V]) RemoveFromValue(key string, item V, opts ...WriteOption) {
	if m == nil {
		return
	}
	cfg := applyWriteOptions(opts)
	current := m.Get()
	list, ok := current[key]
	if !ok {
		return
	}
	next := make(map[string][]V, len(current))
	for k, v := range current {
		next[k] = v
	}
	kept := make([]V, 0, len(list))
	for _, it := range list {
		if !deepEqual(it, item) {
			kept = append(kept, it)
		}
	}
	next[key] = kept
	m.publish(next, cfg.quiet)
}

// KeyContains reports exact membership of item in the list at key.
func (m *MultiMap[V]) KeyContains(key string, item V) bool {
	if m == nil {
		return false
	}
	return containsDeep(m.Get()[key], item)
}

// KeyItemState is a live membership stream for item within the list at
// key, deduplicated. The Substring option applies to textual elements as
// in List.ItemState.
func (m *MultiMap[V]) KeyItemState(key string, item V, opts ...QueryOption) stream.Source[bool] {
	if m == nil {
		return nil
	}
	cfg := applyQueryOptions(opts)
	present := stream.Map(m.setStream(), func(mv map[string][]V) bool {
		return containsMatch(mv[key], item, cfg.substring)
	})
	return stream.DistinctUntilChanged(present, func(a, b bool) bool { return a == b })
}

// OnFirstNonEmptySet waits until the mapping holds at least one key,
// delivers it once, and completes. Setting an empty mapping does not
// qualify.
func (m *MultiMap[V]) OnFirstNonEmptySet(fn func(map[string][]V), opts ...SubscribeOption) *stream.Subscription {
	if m == nil {
		return stream.Closed()
	}
	return subscribe(stream.First(m.nonEmptyStream()), fn, opts)
}

// OnFirstNonEmptyChange is OnFirstNonEmptySet over the deduplicated change
// stream.
func (m *MultiMap[V]) OnFirstNonEmptyChange(fn func(map[string][]V), opts ...SubscribeOption) *stream.Subscription {
	if m == nil {
		return stream.Closed()
	}
	changed := stream.DistinctUntilChanged(m.nonEmptyStream(), m.equalFunc())
	return subscribe(stream.First(changed), fn, opts)
}

// TotalLen is the total element count across all keys, counting nested
// list-shaped values recursively.
func (m *MultiMap[V]) TotalLen() int {
	if m == nil {
		return 0
	}
	total := 0
	for _, list := range m.Get() {
		total += CountElements(list)
	}
	return total
}

func (m *MultiMap[V]) nonEmptyStream() stream.Source[map[string][]V] {
	return stream.Filter(m.setStream(), func(mv map[string][]V) bool {
		return len(mv) > 0
	})
}
