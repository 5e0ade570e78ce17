package skipmap

// Iterator provides a forward-only view over the map in ascending key order.
// Mutating the map while iterating leaves the iterator undefined.
type Iterator[K, V any] struct {
	m       *OrderedMap[K, V]
	current int32
	key     K
	value   V
	valid   bool
}

// Iterator returns a new iterator positioned before the first element.
func (m *OrderedMap[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, current: nilIndex}
}

// SeekGE returns an iterator positioned at the first element whose key is
// greater than or equal to the provided key. The returned iterator is valid
// if and only if such an element exists.
func (m *OrderedMap[K, V]) SeekGE(key K) *Iterator[K, V] {
	it := m.Iterator()
	it.SeekGE(key)
	return it
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K, V]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Key returns the key at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Key() K {
	var zero K
	if it == nil || !it.valid {
		return zero
	}
	return it.key
}

// Value returns the value at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Value() V {
	var zero V
	if it == nil || !it.valid {
		return zero
	}
	return it.value
}

// SeekGE positions the iterator at the first element whose key is
// greater than or equal to the provided key. It returns true if such an
// element exists.
func (it *Iterator[K, V]) SeekGE(key K) bool {
	if it == nil || it.m == nil {
		return false
	}
	return it.moveTo(it.m.findPreds(key, nil))
}

// Next advances the iterator to the next element and reports whether it
// successfully moved forward. If the iterator was not valid prior to the
// call, it advances to the first element.
func (it *Iterator[K, V]) Next() bool {
	if it == nil || it.m == nil {
		return false
	}
	if !it.valid {
		return it.moveTo(it.m.first())
	}
	return it.moveTo(it.m.advance(it.current))
}

func (it *Iterator[K, V]) moveTo(idx int32) bool {
	if idx == nilIndex {
		it.invalidate()
		return false
	}
	n := it.m.nodes.at(idx)
	it.current = idx
	it.key = n.key
	it.value = n.val
	it.valid = true
	return true
}

func (it *Iterator[K, V]) invalidate() {
	it.current = nilIndex
	it.valid = false
	var zeroK K
	var zeroV V
	it.key = zeroK
	it.value = zeroV
}
