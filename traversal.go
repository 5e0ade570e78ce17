package skipmap

// findPreds descends from the head at the current top level down to level 0,
// advancing at each level while the next key is strictly less than key. When
// preds is non-nil, preds[i] receives the last node visited at level i.
// It returns the level-0 successor of that walk: the first node whose key is
// greater than or equal to key, or nilIndex.
//
// Every read and write path goes through this one routine so they all agree
// on the same "strictly less, then check the successor" discipline.
func (m *OrderedMap[K, V]) findPreds(key K, preds []int32) int32 {
	x := headIndex
	for i := m.level - 1; i >= 0; i-- {
		for {
			next := m.nodes.at(x).next[i]
			if next == nilIndex || m.compare(m.nodes.at(next).key, key) >= 0 {
				break
			}
			x = next
		}
		if preds != nil {
			preds[i] = x
		}
	}
	return m.nodes.at(x).next[0]
}

// find returns the slot holding key.
func (m *OrderedMap[K, V]) find(key K) (int32, bool) {
	succ := m.findPreds(key, nil)
	if !m.matches(succ, key) {
		return nilIndex, false
	}
	return succ, true
}

// matches reports whether slot idx holds key.
func (m *OrderedMap[K, V]) matches(idx int32, key K) bool {
	return idx != nilIndex && m.compare(m.nodes.at(idx).key, key) == 0
}

// first returns the level-0 successor of the head.
func (m *OrderedMap[K, V]) first() int32 {
	return m.nodes.at(headIndex).next[0]
}

// advance returns the level-0 successor of idx.
func (m *OrderedMap[K, V]) advance(idx int32) int32 {
	if idx == nilIndex {
		return nilIndex
	}
	return m.nodes.at(idx).next[0]
}
