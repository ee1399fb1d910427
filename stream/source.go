package stream

// Source is anything that can be subscribed to.
type Source[T any] interface {
	Subscribe(Observer[T]) *Subscription
}

// SourceFunc adapts a function into a Source.
type SourceFunc[T any] func(Observer[T]) *Subscription

// Subscribe invokes the wrapped function.
func (f SourceFunc[T]) Subscribe(obs Observer[T]) *Subscription {
	if f == nil {
		return Closed()
	}
	return f(obs)
}
