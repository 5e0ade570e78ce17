package skipmap

import (
	"cmp"
	"fmt"

	"k8s.io/klog/v2"
)

// OrderedMap is a generic ordered map backed by a probabilistic skip list.
//
// An OrderedMap is not safe for concurrent use; wrap it in a SyncMap when
// several goroutines share it.
type OrderedMap[K, V any] struct {
	compare Compare[K]
	nodes   *arena[K, V]
	levels  levelGenerator
	config  Config
	metrics *Metrics

	// level is the height of the tallest node present, 0 when empty.
	level  int
	length int
}

// New returns an empty map over a cmp.Ordered key type.
func New[K cmp.Ordered, V any](maxLevel int, probability float64, opts ...Option) (*OrderedMap[K, V], error) {
	return NewFunc[K, V](maxLevel, probability, Ordered[K](), opts...)
}

// NewFunc returns an empty map ordered by compare.
func NewFunc[K, V any](maxLevel int, probability float64, compare Compare[K], opts ...Option) (*OrderedMap[K, V], error) {
	opts = append(opts[:len(opts):len(opts)], WithMaxLevel(maxLevel), WithProbability(probability))
	return NewWithConfig[K, V](NewConfig(opts...), compare)
}

// NewWithConfig returns an empty map built from an explicit Config.
func NewWithConfig[K, V any](config Config, compare Compare[K]) (*OrderedMap[K, V], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrInvalidConfiguration)
	}
	if config.src == nil {
		config.src = NewRNG()
	}

	m := &OrderedMap[K, V]{
		compare: compare,
		nodes:   newArena[K, V](config.maxLevel),
		levels: levelGenerator{
			src:         config.src,
			maxLevel:    config.maxLevel,
			probability: config.probability,
		},
		config:  config,
		metrics: &Metrics{},
	}
	klog.V(4).InfoS("Created skip list",
		"maxLevel", config.maxLevel,
		"probability", config.probability,
		"duplicates", config.duplicates)
	return m, nil
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return m.length
}

// Level returns the height of the tallest node currently present.
func (m *OrderedMap[K, V]) Level() int {
	return m.level
}

// MaxLevel returns the configured level ceiling.
func (m *OrderedMap[K, V]) MaxLevel() int {
	return m.config.maxLevel
}

// Probability returns the configured level-growth probability.
func (m *OrderedMap[K, V]) Probability() float64 {
	return m.config.probability
}

// Config returns the configuration the map was built with.
func (m *OrderedMap[K, V]) Config() Config {
	return m.config
}

// Stats returns a snapshot of the operation counters.
func (m *OrderedMap[K, V]) Stats() Stats {
	return m.metrics.Snapshot()
}

// Contains reports whether key is present.
func (m *OrderedMap[K, V]) Contains(key K) bool {
	_, found := m.find(key)
	m.metrics.RecordLookup(found)
	return found
}

// Select returns the value stored for key, or an error wrapping
// ErrKeyNotFound.
func (m *OrderedMap[K, V]) Select(key K) (V, error) {
	idx, found := m.find(key)
	m.metrics.RecordLookup(found)
	if !found {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return m.nodes.at(idx).val, nil
}

// SelectOrDefault returns the value stored for key. The boolean is false, and
// the value the zero V, when the key is absent.
func (m *OrderedMap[K, V]) SelectOrDefault(key K) (V, bool) {
	idx, found := m.find(key)
	m.metrics.RecordLookup(found)
	if !found {
		var zero V
		return zero, false
	}
	return m.nodes.at(idx).val, true
}

// LevelHistogram returns, for each height h in [1, MaxLevel], the number of
// nodes of that height at index h-1.
func (m *OrderedMap[K, V]) LevelHistogram() []int {
	hist := make([]int, m.config.maxLevel)
	for idx := m.first(); idx != nilIndex; idx = m.advance(idx) {
		hist[m.nodes.at(idx).height()-1]++
	}
	return hist
}
