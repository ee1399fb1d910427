package state

import "github.com/odvcencio/fuzzy-state/stream"

// Readable exposes the read side shared by every container.
type Readable[T any] interface {
	Get() T
	State() stream.Source[T]
	OnSet(fn func(T), opts ...SubscribeOption) *stream.Subscription
	OnChange(fn func(T), opts ...SubscribeOption) *stream.Subscription
}

// Writable exposes read/write container state.
type Writable[T any] interface {
	Readable[T]
	Set(value T, opts ...WriteOption)
	Update(fn func(T) T, opts ...WriteOption)
}

// Notifier emits a unit notification for every broadcast. Derived values
// and render invalidators depend on containers through it.
type Notifier interface {
	Notify(fn func()) *stream.Subscription
}
