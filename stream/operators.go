package stream

import (
	"reflect"
	"sync"
)

// Filter emits only values for which keep returns true. A nil predicate
// keeps everything.
func Filter[T any](src Source[T], keep func(T) bool) Source[T] {
	return SourceFunc[T](func(obs Observer[T]) *Subscription {
		if src == nil {
			return Closed()
		}
		return src.Subscribe(Observer[T]{
			Next: func(v T) {
				if keep == nil || keep(v) {
					obs.emitNext(v)
				}
			},
			Error:    obs.Error,
			Complete: obs.Complete,
		})
	})
}

// Map transforms each value with fn.
func Map[T, U any](src Source[T], fn func(T) U) Source[U] {
	return SourceFunc[U](func(obs Observer[U]) *Subscription {
		if src == nil || fn == nil {
			return Closed()
		}
		return src.Subscribe(Observer[T]{
			Next: func(v T) {
				obs.emitNext(fn(v))
			},
			Error:    obs.Error,
			Complete: obs.Complete,
		})
	})
}

// DistinctUntilChanged drops values equal to the immediately preceding one.
// Only adjacent duplicates are eliminated. A nil eq falls back to deep
// structural equality.
func DistinctUntilChanged[T any](src Source[T], eq func(a, b T) bool) Source[T] {
	return SourceFunc[T](func(obs Observer[T]) *Subscription {
		if src == nil {
			return Closed()
		}
		equal := eq
		if equal == nil {
			equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
		}
		var (
			mu   sync.Mutex
			last T
			seen bool
		)
		return src.Subscribe(Observer[T]{
			Next: func(v T) {
				mu.Lock()
				if seen && equal(last, v) {
					mu.Unlock()
					return
				}
				last = v
				seen = true
				mu.Unlock()
				obs.emitNext(v)
			},
			Error:    obs.Error,
			Complete: obs.Complete,
		})
	})
}

// Take emits the first n values, then completes and unsubscribes upstream.
func Take[T any](src Source[T], n int) Source[T] {
	return SourceFunc[T](func(obs Observer[T]) *Subscription {
		if src == nil {
			return Closed()
		}
		if n <= 0 {
			obs.emitComplete()
			return Closed()
		}
		var (
			mu       sync.Mutex
			taken    int
			finished bool
			upstream *Subscription
		)
		sub := src.Subscribe(Observer[T]{
			Next: func(v T) {
				mu.Lock()
				if finished {
					mu.Unlock()
					return
				}
				taken++
				last := taken >= n
				if last {
					finished = true
				}
				mu.Unlock()
				obs.emitNext(v)
				if last {
					obs.emitComplete()
					mu.Lock()
					up := upstream
					mu.Unlock()
					// upstream is nil while the subscribe call is still
					// replaying; the post-subscribe check below covers it.
					if up != nil {
						up.Unsubscribe()
					}
				}
			},
			Error: func(err error) {
				mu.Lock()
				if finished {
					mu.Unlock()
					return
				}
				finished = true
				mu.Unlock()
				obs.emitError(err)
			},
			Complete: func() {
				mu.Lock()
				if finished {
					mu.Unlock()
					return
				}
				finished = true
				mu.Unlock()
				obs.emitComplete()
			},
		})
		mu.Lock()
		upstream = sub
		done := finished
		mu.Unlock()
		if done {
			sub.Unsubscribe()
		}
		return sub
	})
}

// First emits the first value, then completes.
func First[T any](src Source[T]) Source[T] {
	return Take(src, 1)
}

// Skip drops the first n values.
func Skip[T any](src Source[T], n int) Source[T] {
	return SourceFunc[T](func(obs Observer[T]) *Subscription {
		if src == nil {
			return Closed()
		}
		var (
			mu      sync.Mutex
			skipped int
		)
		return src.Subscribe(Observer[T]{
			Next: func(v T) {
				mu.Lock()
				if skipped < n {
					skipped++
					mu.Unlock()
					return
				}
				mu.Unlock()
				obs.emitNext(v)
			},
			Error:    obs.Error,
			Complete: obs.Complete,
		})
	})
}
