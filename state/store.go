/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package state

import (
	"sync"
	"time"

	"github.com/humaidq/medreport/i18n"
)

type entry struct {
	state    State
	changed  chan struct{}
	lastSeen time.Time
}

// Store holds the state of every browser session in memory.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

func (s *Store) lookup(id string) (*entry, bool) {
	e, ok := s.sessions[id]
	if ok {
		e.lastSeen = s.now()
	}

	return e, ok
}

// Ensure returns the state of session id, creating it in lang when absent.
func (s *Store) Ensure(id string, lang i18n.Language) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.lookup(id); ok {
		return e.state
	}

	e := &entry{
		state:    New(lang),
		changed:  make(chan struct{}),
		lastSeen: s.now(),
	}
	s.sessions[id] = e

	return e.state
}

// Get returns the state of session id.
func (s *Store) Get(id string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(id)
	if !ok {
		return State{}, false
	}

	return e.state, true
}

// Snapshot returns the state of session id and a channel that is closed on
// its next change.
func (s *Store) Snapshot(id string) (State, <-chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(id)
	if !ok {
		return State{}, nil, ErrSessionNotFound
	}

	return e.state, e.changed, nil
}

// Update applies fn to the state of session id. The state fn leaves behind
// is stored even when fn returns an error, since failed transitions such as
// BeginAnalysis without a file still move the state. Watchers are woken
// only when fn succeeds or changed the state.
func (s *Store) Update(id string, fn func(*State) error) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(id)
	if !ok {
		return State{}, ErrSessionNotFound
	}

	next := e.state
	err := fn(&next)

	if err == nil || next != e.state {
		e.state = next
		close(e.changed)
		e.changed = make(chan struct{})
	}

	return e.state, err
}

// Delete forgets session id.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[id]; ok {
		close(e.changed)
		delete(s.sessions, id)
	}
}

// Prune drops sessions not seen for longer than idle and returns how many
// were removed. Sessions with an analysis in flight are kept.
func (s *Store) Prune(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0

	for id, e := range s.sessions {
		if e.state.Loading() || !e.lastSeen.Before(cutoff) {
			continue
		}

		close(e.changed)
		delete(s.sessions, id)
		removed++
	}

	return removed
}

// Len returns the number of tracked sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
