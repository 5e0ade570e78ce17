package skipmap

import "sync/atomic"

// Metrics counts operations on a map. Counters are atomic so readers holding
// a shared lock in SyncMap can record hits and misses concurrently.
type Metrics struct {
	inserts    atomic.Int64
	updates    atomic.Int64
	deletes    atomic.Int64
	hits       atomic.Int64
	misses     atomic.Int64
	duplicates atomic.Int64
	grows      atomic.Int64
	shrinks    atomic.Int64
}

// Stats is a point-in-time copy of Metrics.
type Stats struct {
	Inserts    int64
	Updates    int64
	Deletes    int64
	Hits       int64
	Misses     int64
	Duplicates int64
	// LevelGrows counts inserts that raised the current level.
	LevelGrows int64
	// LevelShrinks counts deletes that lowered it.
	LevelShrinks int64
}

func (m *Metrics) IncInsert()    { m.inserts.Add(1) }
func (m *Metrics) IncUpdate()    { m.updates.Add(1) }
func (m *Metrics) IncDelete()    { m.deletes.Add(1) }
func (m *Metrics) IncDuplicate() { m.duplicates.Add(1) }
func (m *Metrics) IncGrow()      { m.grows.Add(1) }
func (m *Metrics) IncShrink()    { m.shrinks.Add(1) }

// RecordLookup counts a probe as a hit or a miss.
func (m *Metrics) RecordLookup(found bool) {
	if found {
		m.hits.Add(1)
		return
	}
	m.misses.Add(1)
}

// Snapshot copies the current counter values.
func (m *Metrics) Snapshot() Stats {
	return Stats{
		Inserts:      m.inserts.Load(),
		Updates:      m.updates.Load(),
		Deletes:      m.deletes.Load(),
		Hits:         m.hits.Load(),
		Misses:       m.misses.Load(),
		Duplicates:   m.duplicates.Load(),
		LevelGrows:   m.grows.Load(),
		LevelShrinks: m.shrinks.Load(),
	}
}

// Reset zeroes every counter.
func (m *Metrics) Reset() {
	m.inserts.Store(0)
	m.updates.Store(0)
	m.deletes.Store(0)
	m.hits.Store(0)
	m.misses.Store(0)
	m.duplicates.Store(0)
	m.grows.Store(0)
	m.shrinks.Store(0)
}
