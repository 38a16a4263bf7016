// Package store holds the client-side application state: a generic typed
// container plus the session and notes slices built on top of it.
//
// A Store is an explicit handle passed to its consumers; there are no
// package-level singletons. Every transition replaces the state value
// wholesale, so readers never observe a half-applied update.
package store

import "sync"

// Store is a minimal typed state container. Transitions are pure
// functions from the current state to the next one, applied through
// Dispatch; subscribers are notified with the new value after each
// transition.
type Store[S any] struct {
	mu    sync.RWMutex
	state S
	subs  map[int]func(S)
	next  int
}

// New returns a Store seeded with the given initial state.
func New[S any](initial S) *Store[S] {
	return &Store[S]{state: initial, subs: make(map[int]func(S))}
}

// State returns the current state value.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a transition and notifies subscribers with the result.
func (s *Store[S]) Dispatch(transition func(S) S) {
	s.mu.Lock()
	s.state = transition(s.state)
	next := s.state
	subs := make([]func(S), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers fn to be called after every transition and returns
// a function that removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
