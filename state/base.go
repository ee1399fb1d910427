// Package state provides reactive state containers for component-based
// terminal UIs: a single-value container, a list container, a key-to-value
// map container, and a key-to-value-list multimap container. Each holds one
// current value, broadcasts mutations on a push stream, and offers named
// subscription variants scoped to an owner's lifetime on request.
package state

import "github.com/odvcencio/fuzzy-state/stream"

// emission is one broadcast: the new value, whether it counts as present
// for the non-absent filters, and whether this particular write asked to be
// invisible to the OnSet/OnChange families.
type emission[T any] struct {
	value    T
	present  bool
	suppress bool
}

// Observe subscribes fn to src, tying the subscription to sc when sc is
// non-nil. A nil scope means the caller manages the subscription manually.
func Observe[T any](sc *Scope, src stream.Source[T], fn func(T)) *stream.Subscription {
	return ObserveWith(sc, src, stream.OnNext(fn))
}

// ObserveWith is Observe for a full next/error/complete observer.
func ObserveWith[T any](sc *Scope, src stream.Source[T], obs stream.Observer[T]) *stream.Subscription {
	if src == nil {
		return stream.Closed()
	}
	sub := src.Subscribe(obs)
	if sc != nil {
		sc.Add(sub.Unsubscribe)
	}
	return sub
}

// subscribe wires a callback plus subscription options to a source. Every
// named On* variant funnels through here.
func subscribe[T any](src stream.Source[T], fn func(T), opts []SubscribeOption) *stream.Subscription {
	cfg := applySubscribeOptions(opts)
	obs := stream.Observer[T]{Next: fn, Error: cfg.onError, Complete: cfg.onComplete}
	if cfg.scheduler != nil {
		obs = stream.Scheduled(cfg.scheduler, obs)
	}
	return ObserveWith(cfg.scope, src, obs)
}
