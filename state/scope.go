package state

import "sync"

// Scope represents an owner's lifetime, typically a mounted UI component.
// Subscriptions registered against a scope are torn down together when the
// scope is disposed; registering against an already-disposed scope tears
// down immediately.
type Scope struct {
	mu        sync.Mutex
	disposed  bool
	teardowns []func()
}

// NewScope creates a live scope.
func NewScope() *Scope {
	return &Scope{}
}

// Add registers a teardown to run on disposal.
func (s *Scope) Add(teardown func()) {
	if s == nil || teardown == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		teardown()
		return
	}
	s.teardowns = append(s.teardowns, teardown)
	s.mu.Unlock()
}

// Disposed reports whether the scope has been disposed.
func (s *Scope) Disposed() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	disposed := s.disposed
	s.mu.Unlock()
	return disposed
}

// Dispose runs all registered teardowns once. The scope stays disposed.
func (s *Scope) Dispose() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	teardowns := s.teardowns
	s.teardowns = nil
	s.mu.Unlock()
	for _, teardown := range teardowns {
		teardown()
	}
}
