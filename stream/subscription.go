package stream

import (
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
)

// Subscription is the handle returned by Subscribe. Unsubscribe is
// idempotent and safe on a nil receiver.
type Subscription struct {
	id       string
	once     sync.Once
	active   atomic.Bool
	teardown func()
}

// NewSubscription creates an active subscription whose teardown runs once
// on the first Unsubscribe.
func NewSubscription(teardown func()) *Subscription {
	s := &Subscription{
		id:       ulid.Make().String(),
		teardown: teardown,
	}
	s.active.Store(true)
	return s
}

// ID returns the subscription's unique identifier.
func (s *Subscription) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Active reports whether the subscription has not been torn down.
func (s *Subscription) Active() bool {
	if s == nil {
		return false
	}
	return s.active.Load()
}

// Unsubscribe tears the subscription down.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.active.Store(false)
		if s.teardown != nil {
			s.teardown()
		}
	})
}

// Closed returns an already-unsubscribed subscription.
func Closed() *Subscription {
	s := NewSubscription(nil)
	s.Unsubscribe()
	return s
}
