// Package stream provides a small push-based broadcast primitive and the
// combinator operators reactive state containers are built from.
package stream

// Observer receives emissions from a Source. Next handles values; Error and
// Complete are optional terminal callbacks per the push-stream contract: a
// source that errors or completes emits nothing further.
type Observer[T any] struct {
	Next     func(T)
	Error    func(error)
	Complete func()
}

// OnNext builds an observer from a plain value callback.
func OnNext[T any](fn func(T)) Observer[T] {
	return Observer[T]{Next: fn}
}

func (o Observer[T]) emitNext(v T) {
	if o.Next != nil {
		o.Next(v)
	}
}

func (o Observer[T]) emitError(err error) {
	if o.Error != nil {
		o.Error(err)
	}
}

func (o Observer[T]) emitComplete() {
	if o.Complete != nil {
		o.Complete()
	}
}

// Scheduled wraps an observer so every callback is dispatched through
// scheduler. A nil scheduler returns the observer unchanged.
func Scheduled[T any](scheduler Scheduler, obs Observer[T]) Observer[T] {
	if scheduler == nil {
		return obs
	}
	out := Observer[T]{}
	if obs.Next != nil {
		next := obs.Next
		out.Next = func(v T) {
			scheduler.Schedule(func() { next(v) })
		}
	}
	if obs.Error != nil {
		fail := obs.Error
		out.Error = func(err error) {
			scheduler.Schedule(func() { fail(err) })
		}
	}
	if obs.Complete != nil {
		complete := obs.Complete
		out.Complete = func() {
			scheduler.Schedule(complete)
		}
	}
	return out
}
