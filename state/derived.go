package state

import (
	"sync"

	"github.com/odvcencio/fuzzy-state/stream"
)

// Derived computes its value from other containers. It recomputes on every
// dependency broadcast and rebroadcasts the result; downstream OnChange
// subscriptions see only actual changes.
type Derived[T any] struct {
	behavior *stream.Behavior[T]
	compute  func() T
	mu       sync.Mutex
	subs     []*stream.Subscription
	equal    EqualFunc[T]
}

// NewDerived creates a derived value over deps.
func NewDerived[T any](compute func() T, deps ...Notifier) *Derived[T] {
	if compute == nil {
		compute = func() T {
			var zero T
			return zero
		}
	}
	d := &Derived[T]{
		behavior: stream.NewBehavior(compute()),
		compute:  compute,
	}
	for _, dep := range deps {
		if dep == nil {
			continue
		}
		sub := dep.Notify(d.recompute)
		if sub != nil {
			d.subs = append(d.subs, sub)
		}
	}
	return d
}

// SetEqualFunc overrides the equality used by OnChange. The default is
// deep structural equality.
func (d *Derived[T]) SetEqualFunc(fn EqualFunc[T]) {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.equal = fn
	d.mu.Unlock()
}

// Get returns the current computed value.
func (d *Derived[T]) Get() T {
	if d == nil {
		var zero T
		return zero
	}
	v, _ := d.behavior.Value()
	return v
}

// State returns the raw recompute stream with replay of the current value.
func (d *Derived[T]) State() stream.Source[T] {
	if d == nil {
		return nil
	}
	return d.behavior
}

// Notify subscribes a unit callback to every recompute.
func (d *Derived[T]) Notify(fn func()) *stream.Subscription {
	if d == nil || fn == nil {
		return stream.Closed()
	}
	return d.behavior.Subscribe(stream.Observer[T]{
		Next: func(T) { fn() },
	})
}

// OnChange subscribes fn to changes of the computed value.
func (d *Derived[T]) OnChange(fn func(T), opts ...SubscribeOption) *stream.Subscription {
	if d == nil {
		return stream.Closed()
	}
	d.mu.Lock()
	equal := d.equal
	d.mu.Unlock()
	return subscribe(stream.DistinctUntilChanged[T](d.behavior, equal), fn, opts)
}

// Stop detaches the derived value from its dependencies.
func (d *Derived[T]) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	subs := d.subs
	d.subs = nil
	d.mu.Unlock()
	for _, sub := range subs {
		sub.Unsubscribe()
	}
}

func (d *Derived[T]) recompute() {
	if d == nil {
		return
	}
	d.behavior.Next(d.compute())
}
