package state

import (
	"sort"
	"strings"

	"github.com/odvcencio/fuzzy-state/stream"
)

// KeySeparator joins the parts of a composite key. No key part may contain
// it, or composite keys collide.
const KeySeparator = "####"

// Key synthesizes a composite key from parts.
func Key(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}

// Map is the key-to-value container: a Value over a string-keyed mapping
// with per-key accessors, per-key live streams, and composite-key
// addressing. Mutations are copy-on-write; every mutation broadcasts the
// whole new mapping.
type Map[V any] struct {
	Value[map[string]V]
}

// NewMap creates an empty map container.
func NewMap[V any]() *Map[V] {
	return NewMapOf(map[string]V{})
}

// NewMapOf creates a map container seeded with a copy of initial.
func NewMapOf[V any](initial map[string]V) *Map[V] {
	m := &Map[V]{}
	seed := make(map[string]V, len(initial))
	for k, v := range initial {
		seed[k] = v
	}
	m.current = emission[map[string]V]{value: seed, present: true}
	m.has = true
	return m
}

// GetValue returns the value at key.
func (m *Map[V]) GetValue(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.Get()[key]
	return v, ok
}

// SetValue stores value at key and broadcasts the new mapping.
func (m *Map[V]) SetValue(key string, value V, opts ...WriteOption) {
	if m == nil {
		return
	}
	cfg := applyWriteOptions(opts)
	current := m.Get()
	next := make(map[string]V, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[key] = value
	m.publish(next, cfg.quiet)
}

// Unset deletes key and broadcasts the new mapping.
func (m *Map[V]) Unset(key string, opts ...WriteOption) {
	if m == nil {
		return
	}
	cfg := applyWriteOptions(opts)
	current := m.Get()
	next := make(map[string]V, len(current))
	for k, v := range current {
		if k != key {
			next[k] = v
		}
	}
	m.publish(next, cfg.quiet)
}

// Reset replaces the mapping with an empty one.
func (m *Map[V]) Reset(opts ...WriteOption) {
	if m == nil {
		return
	}
	cfg := applyWriteOptions(opts)
	m.publish(map[string]V{}, cfg.quiet)
}

// Len returns the current key count.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Get())
}

// Keys returns the current keys in sorted order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	current := m.Get()
	keys := make([]string, 0, len(current))
	for k := range current {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeyState is a live stream of the value at key. Emissions while the key
// is absent are filtered out unless IncludeAbsent is given; adjacent
// duplicates are eliminated unless EverySet is given.
func (m *Map[V]) KeyState(key string, opts ...QueryOption) stream.Source[V] {
	if m == nil {
		return nil
	}
	cfg := applyQueryOptions(opts)
	src := m.setStream()
	if !cfg.includeAbsent {
		src = stream.Filter(src, func(mv map[string]V) bool {
			_, ok := mv[key]
			return ok
		})
	}
	values := stream.Map(src, func(mv map[string]V) V { return mv[key] })
	if cfg.everySet {
		return values
	}
	return stream.DistinctUntilChanged(values, nil)
}

// HasKey is a live boolean stream of key presence, deduplicated. With the
// Substring option, presence means some existing key contains key as a
// substring.
func (m *Map[V]) HasKey(key string, opts ...QueryOption) stream.Source[bool] {
	if m == nil {
		return nil
	}
	cfg := applyQueryOptions(opts)
	present := stream.Map(m.setStream(), func(mv map[string]V) bool {
		return hasKeyMatch(mv, key, cfg.substring)
	})
	return stream.DistinctUntilChanged(present, func(a, b bool) bool { return a == b })
}

// OnKeyChange subscribes fn to changes of the value at key, skipping
// emissions while the key is absent. Use KeyState with Observe for
// different filtering.
func (m *Map[V]) OnKeyChange(key string, fn func(V), opts ...SubscribeOption) *stream.Subscription {
	if m == nil {
		return stream.Closed()
	}
	return subscribe(m.KeyState(key), fn, opts)
}

// GetValueByKeys is GetValue addressed by a composite key.
func (m *Map[V]) GetValueByKeys(parts ...string) (V, bool) {
	return m.GetValue(Key(parts...))
}

// SetValueByKeys is SetValue addressed by a composite key.
func (m *Map[V]) SetValueByKeys(value V, parts ...string) {
	m.SetValue(Key(parts...), value)
}

// UnsetByKeys is Unset addressed by a composite key.
func (m *Map[V]) UnsetByKeys(parts ...string) {
	m.Unset(Key(parts...))
}

// KeyStateByKeys is KeyState addressed by a composite key.
func (m *Map[V]) KeyStateByKeys(parts ...string) stream.Source[V] {
	return m.KeyState(Key(parts...))
}

func hasKeyMatch[V any](mv map[string]V, key string, substring bool) bool {
	if substring {
		for k := range mv {
			if strings.Contains(k, key) {
				return true
			}
		}
		return false
	}
	_, ok := mv[key]
	return ok
}
