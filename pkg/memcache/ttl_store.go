// pkg/memcache/ttl_store.go
package mem

import (
	"sync"
	"time"
)

type TTLStore[V any] interface {
	Set(key string, value V, ttl time.Duration)

	// Get returns the value for key if not expired.
	Get(key string) (V, bool)

	Delete(key string)

	// Sweep drops expired entries and returns how many were removed.
	Sweep() int
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type Store[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
}

func NewStore[V any]() *Store[V] {
	return &Store[V]{
		data: make(map[string]entry[V]),
	}
}

func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero V
	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return zero, false
	}
	return e.value, true
}

func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *Store[V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}
