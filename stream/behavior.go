package stream

import "sync"

// Behavior is a single-slot subject: it remembers the latest pushed value
// and replays it to every new subscriber before future emissions. An empty
// behavior replays nothing until the first Next.
type Behavior[T any] struct {
	mu      sync.Mutex
	value   T
	has     bool
	subject Subject[T]
}

// NewBehavior creates a behavior holding an initial value.
func NewBehavior[T any](initial T) *Behavior[T] {
	return &Behavior[T]{value: initial, has: true}
}

// NewEmptyBehavior creates a behavior with no current value.
func NewEmptyBehavior[T any]() *Behavior[T] {
	return &Behavior[T]{}
}

// Value returns the current value and whether one has been set.
func (b *Behavior[T]) Value() (T, bool) {
	if b == nil {
		var zero T
		return zero, false
	}
	b.mu.Lock()
	v, has := b.value, b.has
	b.mu.Unlock()
	return v, has
}

// Subscribe registers an observer, replaying the current value first when
// one is present.
func (b *Behavior[T]) Subscribe(obs Observer[T]) *Subscription {
	if b == nil {
		return Closed()
	}
	b.mu.Lock()
	v, has := b.value, b.has
	b.mu.Unlock()

	sub := b.subject.Subscribe(obs)
	if has && sub.Active() {
		obs.emitNext(v)
	}
	return sub
}

// Next stores and broadcasts a new value.
func (b *Behavior[T]) Next(v T) {
	if b == nil || b.subject.Terminated() {
		return
	}
	b.mu.Lock()
	b.value = v
	b.has = true
	b.mu.Unlock()
	b.subject.Next(v)
}

// Fail terminates the behavior with an error.
func (b *Behavior[T]) Fail(err error) {
	if b == nil {
		return
	}
	b.subject.Fail(err)
}

// Done completes the behavior.
func (b *Behavior[T]) Done() {
	if b == nil {
		return
	}
	b.subject.Done()
}
