package state

import (
	"sync"

	"github.com/odvcencio/fuzzy-state/stream"
)

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// Value is the single-value container. It holds one current value, readable
// synchronously with Get, and broadcasts every Set to subscribers. New
// subscribers are replayed the current value first when one is present.
type Value[T any] struct {
	mu      sync.Mutex
	subject stream.Subject[emission[T]]
	current emission[T]
	has     bool
	equal   EqualFunc[T]
}

// NewValue creates a container with no current value. The OnSet/OnChange
// families stay silent until the first explicit Set.
func NewValue[T any]() *Value[T] {
	return &Value[T]{}
}

// NewValueOf creates a container seeded with an initial value.
func NewValueOf[T any](initial T) *Value[T] {
	v := &Value[T]{}
	v.current = emission[T]{value: initial, present: !IsAbsent(initial)}
	v.has = true
	return v
}

// SetEqualFunc overrides the equality used by the OnChange family. The
// default is deep structural equality.
func (v *Value[T]) SetEqualFunc(fn EqualFunc[T]) {
	if v == nil {
		return
	}
	v.mu.Lock()
	v.equal = fn
	v.mu.Unlock()
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	if v == nil {
		var zero T
		return zero
	}
	v.mu.Lock()
	value := v.current.value
	v.mu.Unlock()
	return value
}

// Present reports whether the container holds a non-absent value.
func (v *Value[T]) Present() bool {
	if v == nil {
		return false
	}
	v.mu.Lock()
	present := v.has && v.current.present
	v.mu.Unlock()
	return present
}

// Set replaces the current value and broadcasts it. The Quiet option makes
// this one write invisible to the OnSet/OnChange families; the raw State
// stream still observes it.
func (v *Value[T]) Set(value T, opts ...WriteOption) {
	cfg := applyWriteOptions(opts)
	v.publish(value, cfg.quiet)
}

// Update replaces the value using fn.
// fn runs outside the container lock; Update is not atomic across goroutines.
func (v *Value[T]) Update(fn func(T) T, opts ...WriteOption) {
	if v == nil || fn == nil {
		return
	}
	v.Set(fn(v.Get()), opts...)
}

// State returns the raw broadcast stream: every Set, unfiltered, with the
// current value replayed to new subscribers.
func (v *Value[T]) State() stream.Source[T] {
	return stream.Map(v.source(), func(e emission[T]) T { return e.value })
}

// Notify subscribes a unit callback to every broadcast, without replaying
// the current value. It exists for derived values and render invalidation.
func (v *Value[T]) Notify(fn func()) *stream.Subscription {
	if v == nil || fn == nil {
		return stream.Closed()
	}
	return v.subject.Subscribe(stream.Observer[emission[T]]{
		Next: func(emission[T]) { fn() },
	})
}

// OnSet fires for every Set of a non-absent value that was not tagged Quiet.
func (v *Value[T]) OnSet(fn func(T), opts ...SubscribeOption) *stream.Subscription {
	return subscribe(v.setStream(), fn, opts)
}

// OnChange is OnSet minus adjacent duplicates.
func (v *Value[T]) OnChange(fn func(T), opts ...SubscribeOption) *stream.Subscription {
	return subscribe(v.changeStream(), fn, opts)
}

// OnFirstSet delivers only the first qualifying emission, then completes.
func (v *Value[T]) OnFirstSet(fn func(T), opts ...SubscribeOption) *stream.Subscription {
	return subscribe(stream.First(v.setStream()), fn, opts)
}

// OnFirstChange delivers only the first changed emission, then completes.
func (v *Value[T]) OnFirstChange(fn func(T), opts ...SubscribeOption) *stream.Subscription {
	return subscribe(stream.First(v.changeStream()), fn, opts)
}

// OnFromSecondSet delivers every qualifying emission except the first.
// Because the current value replays on subscribe, this reads as "every set
// from now on" when a value is already present.
func (v *Value[T]) OnFromSecondSet(fn func(T), opts ...SubscribeOption) *stream.Subscription {
	return subscribe(stream.Skip(v.setStream(), 1), fn, opts)
}

// OnFromSecondChange delivers every changed emission except the first.
func (v *Value[T]) OnFromSecondChange(fn func(T), opts ...SubscribeOption) *stream.Subscription {
	return subscribe(stream.Skip(v.changeStream(), 1), fn, opts)
}

// publish stores the value and broadcasts it. The suppress tag rides on the
// broadcast only; the stored slot is normalized so later subscribers still
// replay the current value.
func (v *Value[T]) publish(value T, quiet bool) {
	if v == nil {
		return
	}
	e := emission[T]{value: value, present: !IsAbsent(value), suppress: quiet}
	v.mu.Lock()
	stored := e
	stored.suppress = false
	v.current = stored
	v.has = true
	v.mu.Unlock()
	v.subject.Next(e)
}

// source is the envelope stream: subscribe to future broadcasts, replaying
// the current slot first when the container has ever been set.
func (v *Value[T]) source() stream.Source[emission[T]] {
	return stream.SourceFunc[emission[T]](func(obs stream.Observer[emission[T]]) *stream.Subscription {
		if v == nil {
			return stream.Closed()
		}
		v.mu.Lock()
		current, has := v.current, v.has
		v.mu.Unlock()

		sub := v.subject.Subscribe(obs)
		if has && sub.Active() && obs.Next != nil {
			obs.Next(current)
		}
		return sub
	})
}

// setStream is the qualifying stream feeding the OnSet family: non-absent,
// non-suppressed values.
func (v *Value[T]) setStream() stream.Source[T] {
	src := stream.Filter(v.source(), func(e emission[T]) bool {
		return e.present && !e.suppress
	})
	return stream.Map(src, func(e emission[T]) T { return e.value })
}

// changeStream is setStream minus adjacent duplicates.
func (v *Value[T]) changeStream() stream.Source[T] {
	return stream.DistinctUntilChanged(v.setStream(), v.equalFunc())
}

func (v *Value[T]) equalFunc() EqualFunc[T] {
	if v == nil {
		return nil
	}
	v.mu.Lock()
	equal := v.equal
	v.mu.Unlock()
	return equal
}
