package scene

import (
	"slices"
	"sync"

	"github.com/lixenwraith/steer/core"
)

// Store is a generic sparse-set container keyed by entity
// Insertion order is kept for stable iteration
type Store[T any] struct {
	mu       sync.RWMutex
	values   map[core.EntityID]T
	entities []core.EntityID
}

// NewStore creates an empty store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		values:   make(map[core.EntityID]T),
		entities: make([]core.EntityID, 0, 16),
	}
}

// Set inserts or replaces the value for e
func (s *Store[T]) Set(e core.EntityID, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.values[e] = val
}

// Get returns the value for e
func (s *Store[T]) Get(e core.EntityID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[e]
	return val, ok
}

// Update applies fn to the stored value in place, false if e is absent
func (s *Store[T]) Update(e core.EntityID, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.values[e]
	if !ok {
		return false
	}
	fn(&val)
	s.values[e] = val
	return true
}

// Remove deletes e, reporting whether it was present
func (s *Store[T]) Remove(e core.EntityID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[e]; !exists {
		return false
	}
	delete(s.values, e)
	if i := slices.Index(s.entities, e); i >= 0 {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
	return true
}

// Has reports whether e is stored
func (s *Store[T]) Has(e core.EntityID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[e]
	return ok
}

// Len returns the number of stored entities
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Each calls fn for every entity in insertion order under a read lock
func (s *Store[T]) Each(fn func(core.EntityID, T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entities {
		fn(e, s.values[e])
	}
}

// Clear removes everything
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[core.EntityID]T)
	s.entities = s.entities[:0]
}
