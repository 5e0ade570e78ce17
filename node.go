package skipmap

// nilIndex marks the end of a level chain.
const nilIndex int32 = -1

// headIndex is the arena slot permanently owned by the head sentinel.
const headIndex int32 = 0

// node holds key/value and per-level forward links. Links are arena slot
// indices, never pointers, so an unlinked node can't be reached by accident.
type node[K, V any] struct {
	key  K
	val  V
	next []int32
}

func (n *node[K, V]) height() int {
	return len(n.next)
}

// arena owns every node of a map. Released slots go onto a free list and are
// handed out again by alloc before the slice grows.
type arena[K, V any] struct {
	nodes []node[K, V]
	free  []int32
}

func newArena[K, V any](maxLevel int) *arena[K, V] {
	a := &arena[K, V]{nodes: make([]node[K, V], 1, 16)}
	head := &a.nodes[headIndex]
	head.next = make([]int32, maxLevel)
	for i := range head.next {
		head.next[i] = nilIndex
	}
	return a
}

// at returns the node stored in slot idx. The pointer is only valid until the
// next alloc, which may grow the backing slice.
func (a *arena[K, V]) at(idx int32) *node[K, V] {
	return &a.nodes[idx]
}

func (a *arena[K, V]) alloc(key K, val V, level int) int32 {
	var idx int32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, node[K, V]{})
		idx = int32(len(a.nodes) - 1)
	}

	nd := &a.nodes[idx]
	if cap(nd.next) < level {
		nd.next = make([]int32, level)
	} else {
		nd.next = nd.next[:level]
	}
	for i := range nd.next {
		nd.next[i] = nilIndex
	}
	nd.key = key
	nd.val = val
	return idx
}

func (a *arena[K, V]) release(idx int32) {
	if idx == headIndex || idx == nilIndex {
		return
	}
	nd := &a.nodes[idx]
	var zeroK K
	var zeroV V
	nd.key = zeroK
	nd.val = zeroV
	nd.next = nd.next[:0]
	a.free = append(a.free, idx)
}

// reset drops every node except the head and unlinks the head at all levels.
func (a *arena[K, V]) reset() {
	head := a.nodes[headIndex]
	for i := range head.next {
		head.next[i] = nilIndex
	}
	clear(a.nodes[1:])
	a.nodes = a.nodes[:1]
	a.free = a.free[:0]
}

// live reports the number of slots currently holding real nodes.
func (a *arena[K, V]) live() int {
	return len(a.nodes) - 1 - len(a.free)
}
