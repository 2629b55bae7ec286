package engine

import (
	"sync"

	"github.com/lixenwraith/meteor-fighter/core"
)

// Store is a sparse set for one component type
// Values are packed densely, removal swaps the last element into the hole
type Store[T any] struct {
	mu       sync.RWMutex
	index    map[core.Entity]int // Entity -> dense slot
	entities []core.Entity
	values   []T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{index: make(map[core.Entity]int)}
}

// Set inserts or overwrites the component of e
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// Get returns a copy of the component of e
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// Remove drops the component of e, no-op if absent
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		moved := s.entities[last]
		s.entities[i] = moved
		s.values[i] = s.values[last]
		s.index[moved] = i
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// All returns a copy of the dense entity list, safe to mutate the store while iterating it
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Entity(nil), s.entities...)
}

func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.index)
	clear(s.values)
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}

// AnyStore is the type-erased view World uses to manage every store uniformly
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	All() []core.Entity
	Clear()
}
