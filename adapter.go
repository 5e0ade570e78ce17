package skipmap

import (
	"fmt"
	"iter"
)

// Entry is a key/value pair as produced by Entries and CopyTo.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Set stores value under key, replacing any previous value.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	m.Upsert(key, value)
}

// All yields every entry in ascending key order. The map must not be mutated
// from inside the loop body.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for idx := m.first(); idx != nilIndex; idx = m.advance(idx) {
			n := m.nodes.at(idx)
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}

// Keys returns every key in ascending order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.length)
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns every value in ascending key order.
func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, m.length)
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// Entries returns every entry in ascending key order.
func (m *OrderedMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], m.length)
	_ = m.CopyTo(entries, 0)
	return entries
}

// CopyTo writes every entry in ascending key order into dst starting at
// index. Nothing is written when the entries don't fit.
func (m *OrderedMap[K, V]) CopyTo(dst []Entry[K, V], index int) error {
	if index < 0 || index+m.length > len(dst) {
		return fmt.Errorf("%w: %d entries at index %d into %d slots", ErrIndexOutOfRange, m.length, index, len(dst))
	}
	for k, v := range m.All() {
		dst[index] = Entry[K, V]{Key: k, Value: v}
		index++
	}
	return nil
}
