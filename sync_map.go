package skipmap

import (
	"cmp"
	"sync"
)

// SyncMap guards an OrderedMap with a read/write lock. Lookups share the lock;
// every mutation holds it exclusively for the whole operation.
type SyncMap[K, V any] struct {
	mu sync.RWMutex
	m  *OrderedMap[K, V]
}

// NewSync returns an empty SyncMap over a cmp.Ordered key type.
func NewSync[K cmp.Ordered, V any](maxLevel int, probability float64, opts ...Option) (*SyncMap[K, V], error) {
	m, err := New[K, V](maxLevel, probability, opts...)
	if err != nil {
		return nil, err
	}
	return Synchronized(m), nil
}

// Synchronized wraps m. The caller must stop using m directly.
func Synchronized[K, V any](m *OrderedMap[K, V]) *SyncMap[K, V] {
	return &SyncMap[K, V]{m: m}
}

func (s *SyncMap[K, V]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Contains(key)
}

func (s *SyncMap[K, V]) Select(key K) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Select(key)
}

func (s *SyncMap[K, V]) SelectOrDefault(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.SelectOrDefault(key)
}

func (s *SyncMap[K, V]) Insert(key K, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Insert(key, value)
}

func (s *SyncMap[K, V]) Upsert(key K, value V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Upsert(key, value)
}

func (s *SyncMap[K, V]) Update(key K, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Update(key, value)
}

func (s *SyncMap[K, V]) Delete(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Delete(key)
}

func (s *SyncMap[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Clear()
}

func (s *SyncMap[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

func (s *SyncMap[K, V]) Level() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Level()
}

// Entries returns a consistent ascending snapshot of the map.
func (s *SyncMap[K, V]) Entries() []Entry[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Entries()
}

// Range calls fn for each entry in ascending order until fn returns false.
// fn runs under the read lock and must not call back into s for writes.
func (s *SyncMap[K, V]) Range(fn func(key K, value V) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for k, v := range s.m.All() {
		if !fn(k, v) {
			return
		}
	}
}

func (s *SyncMap[K, V]) Stats() Stats {
	return s.m.Stats()
}
