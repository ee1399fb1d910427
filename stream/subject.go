package stream

import "sync"

type entry[T any] struct {
	id  string
	obs Observer[T]
}

// Subject is a hot multicast source. Values pushed with Next are delivered
// synchronously to all current subscribers in subscription order. Fail and
// Done are terminal: after either, no further values are delivered and late
// subscribers receive the terminal event immediately.
type Subject[T any] struct {
	mu      sync.Mutex
	entries []entry[T]
	err     error
	failed  bool
	done    bool
}

// NewSubject creates an empty subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe registers an observer for future emissions.
func (s *Subject[T]) Subscribe(obs Observer[T]) *Subscription {
	if s == nil {
		return Closed()
	}
	s.mu.Lock()
	if s.failed {
		err := s.err
		s.mu.Unlock()
		obs.emitError(err)
		return Closed()
	}
	if s.done {
		s.mu.Unlock()
		obs.emitComplete()
		return Closed()
	}
	var sub *Subscription
	sub = NewSubscription(func() { s.remove(sub.id) })
	s.entries = append(s.entries, entry[T]{id: sub.id, obs: obs})
	s.mu.Unlock()
	return sub
}

// Next broadcasts a value to all current subscribers.
func (s *Subject[T]) Next(v T) {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.failed || s.done {
		s.mu.Unlock()
		return
	}
	entries := s.copyEntriesLocked()
	s.mu.Unlock()

	for _, e := range entries {
		e.obs.emitNext(v)
	}
}

// Fail terminates the subject with an error.
func (s *Subject[T]) Fail(err error) {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.failed || s.done {
		s.mu.Unlock()
		return
	}
	s.failed = true
	s.err = err
	entries := s.entries
	s.entries = nil
	s.mu.Unlock()

	for _, e := range entries {
		e.obs.emitError(err)
	}
}

// Done completes the subject.
func (s *Subject[T]) Done() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.failed || s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	entries := s.entries
	s.entries = nil
	s.mu.Unlock()

	for _, e := range entries {
		e.obs.emitComplete()
	}
}

// Terminated reports whether the subject has failed or completed.
func (s *Subject[T]) Terminated() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	terminated := s.failed || s.done
	s.mu.Unlock()
	return terminated
}

func (s *Subject[T]) remove(id string) {
	s.mu.Lock()
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
}

func (s *Subject[T]) copyEntriesLocked() []entry[T] {
	if len(s.entries) == 0 {
		return nil
	}
	entries := make([]entry[T], len(s.entries))
	copy(entries, s.entries)
	return entries
}
