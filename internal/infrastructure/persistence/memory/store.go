// Package memory implements the in-memory persistence layer for the registry.
// Data lives for the process lifetime only.
package memory

import (
	"iter"
	"sync"
)

// Store is an insertion-ordered collection guarded by a mutex.
// It is the common storage behind PersonRepository and StudentRepository.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
}

// Append adds an item to the end of the collection.
func (s *Store[T]) Append(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
}

// Snapshot returns a copy of the collection in insertion order.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored items.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Filter returns a lazy sequence of items matching the predicate.
// The collection is snapshotted when iteration starts, so the consumer may
// append to the store while ranging without deadlocking.
func (s *Store[T]) Filter(match func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.Snapshot() {
			if !match(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}
