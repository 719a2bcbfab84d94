package route

import (
	"sync"
)

// Store owns the single active route. Replacement is atomic: a reader
// observes either the fully-old or fully-new route, never a mix. The
// generation counter moves on every mutation so an in-flight reroute result
// can detect that it went stale.
type Store struct {
	mu         sync.RWMutex
	active     *Route
	generation uint64
}

// NewStore creates an empty route store
func NewStore() *Store {
	return &Store{}
}

// Get returns the active route, or nil when none is set. The returned route
// is immutable and safe to read without further locking.
func (s *Store) Get() *Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Set replaces the active route and returns the new generation.
func (s *Store) Set(r *Route) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = r
	s.generation++
	return s.generation
}

// SetIfGeneration installs r only when the store has not moved since the
// caller observed gen. Returns false when the result is stale and must be
// discarded (clear or another reroute won the race).
func (s *Store) SetIfGeneration(r *Route, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return false
	}
	s.active = r
	s.generation++
	return true
}

// Clear removes the active route. Dependent queries report no_route until
// the next Set.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	s.generation++
}

// Generation returns the current mutation counter.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Snapshot returns the active route together with the generation it was
// read at.
func (s *Store) Snapshot() (*Route, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.generation
}
