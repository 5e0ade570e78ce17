package skipmap

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Insert adds key with value. When key is already present the outcome follows
// the map's DuplicatePolicy: DuplicateReject returns an error wrapping
// ErrDuplicateKey and leaves the map untouched, DuplicateIgnore does nothing,
// DuplicateOverwrite replaces the stored value.
func (m *OrderedMap[K, V]) Insert(key K, value V) error {
	preds := make([]int32, m.config.maxLevel)
	succ := m.findPreds(key, preds)

	if m.matches(succ, key) {
		switch m.config.duplicates {
		case DuplicateIgnore:
			m.metrics.IncDuplicate()
		case DuplicateOverwrite:
			m.nodes.at(succ).val = value
			m.metrics.IncUpdate()
		default:
			m.metrics.IncDuplicate()
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
		return nil
	}

	m.link(key, value, preds)
	return nil
}

// Upsert inserts or replaces the value for key regardless of the duplicate
// policy. It returns the previous value and whether one was replaced.
func (m *OrderedMap[K, V]) Upsert(key K, value V) (V, bool) {
	preds := make([]int32, m.config.maxLevel)
	succ := m.findPreds(key, preds)

	if m.matches(succ, key) {
		n := m.nodes.at(succ)
		old := n.val
		n.val = value
		m.metrics.IncUpdate()
		return old, true
	}

	m.link(key, value, preds)
	var zero V
	return zero, false
}

// Update replaces the value stored for key in place. It reports whether the
// key was present; an absent key leaves the map unchanged.
func (m *OrderedMap[K, V]) Update(key K, value V) bool {
	idx, found := m.find(key)
	if !found {
		m.metrics.RecordLookup(false)
		return false
	}
	m.nodes.at(idx).val = value
	m.metrics.IncUpdate()
	return true
}

// Delete removes key. It returns the removed value and true, or the zero
// value and false when the key was absent.
func (m *OrderedMap[K, V]) Delete(key K) (V, bool) {
	preds := make([]int32, m.config.maxLevel)
	succ := m.findPreds(key, preds)
	if !m.matches(succ, key) {
		m.metrics.RecordLookup(false)
		var zero V
		return zero, false
	}

	old := m.unlink(succ, preds)
	m.metrics.IncDelete()
	return old, true
}

// Clear removes every entry and returns the map to its freshly built state.
func (m *OrderedMap[K, V]) Clear() {
	m.nodes.reset()
	m.level = 0
	m.length = 0
}

// link allocates a node for key and splices it after preds[i] at every level
// of its height. Levels above the current top are entered from the head.
func (m *OrderedMap[K, V]) link(key K, value V, preds []int32) {
	height := m.levels.RandomLevel()
	for i := m.level; i < height; i++ {
		preds[i] = headIndex
	}

	idx := m.nodes.alloc(key, value, height)
	n := m.nodes.at(idx)
	for i := 0; i < height; i++ {
		pred := m.nodes.at(preds[i])
		n.next[i] = pred.next[i]
		pred.next[i] = idx
		if linkLevelHook != nil {
			linkLevelHook(i, preds[i], idx)
		}
	}

	if height > m.level {
		klog.V(5).InfoS("Skip list level grew", "from", m.level, "to", height)
		m.level = height
		m.metrics.IncGrow()
	}
	m.length++
	m.metrics.IncInsert()
}

// unlink removes the node in slot idx from every level it occupies, releases
// its slot and lowers the current level past any emptied top levels.
func (m *OrderedMap[K, V]) unlink(idx int32, preds []int32) V {
	target := m.nodes.at(idx)
	for i := 0; i < target.height(); i++ {
		pred := m.nodes.at(preds[i])
		if pred.next[i] != idx {
			break
		}
		pred.next[i] = target.next[i]
		if unlinkLevelHook != nil {
			unlinkLevelHook(i, preds[i], idx)
		}
	}

	old := target.val
	m.nodes.release(idx)
	m.length--
	m.shrink()
	return old
}

func (m *OrderedMap[K, V]) shrink() {
	head := m.nodes.at(headIndex)
	from := m.level
	for m.level > 0 && head.next[m.level-1] == nilIndex {
		m.level--
	}
	if m.level < from {
		klog.V(5).InfoS("Skip list level shrank", "from", from, "to", m.level)
		m.metrics.IncShrink()
	}
}
