package workload

import (
	"errors"
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/metailurini/skipmap"
)

// Result summarises one run of a workload.
type Result struct {
	Name string
	Ops  int

	Counts     map[Kind]int
	Hits       int
	Misses     int
	Duplicates int

	Elapsed   time.Duration
	Len       int
	Level     int
	MaxLevel  int
	Histogram []int
	Stats     skipmap.Stats
}

// OpsPerSec returns the throughput of the run.
func (r Result) OpsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

// NewMap builds the map a spec describes.
func NewMap(spec Spec) (*skipmap.OrderedMap[uint64, uint64], error) {
	config, err := spec.MapConfig()
	if err != nil {
		return nil, err
	}
	return skipmap.NewWithConfig[uint64, uint64](config, skipmap.Ordered[uint64]())
}

// Run generates spec.Ops operations and applies them to a fresh map.
func Run(name string, spec Spec) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}
	m, err := NewMap(spec)
	if err != nil {
		return Result{}, err
	}
	ops := NewGenerator(spec).Generate(spec.Ops)

	res, err := Apply(m, ops)
	if err != nil {
		return res, fmt.Errorf("run %s: %w", name, err)
	}
	res.Name = name
	klog.V(2).InfoS("Workload finished", "run", name, "ops", res.Ops, "elapsed", res.Elapsed, "len", res.Len, "level", res.Level)
	return res, nil
}

// Apply replays ops against m and reports what happened. Only duplicate
// rejections from Insert are tolerated; any other error aborts the replay.
func Apply(m *skipmap.OrderedMap[uint64, uint64], ops []Op) (Result, error) {
	res := Result{Counts: make(map[Kind]int, 4), MaxLevel: m.MaxLevel()}

	start := time.Now()
	for _, op := range ops {
		res.Counts[op.Kind]++
		switch op.Kind {
		case OpInsert:
			if err := m.Insert(op.Key, op.Value); err != nil {
				if !errors.Is(err, skipmap.ErrDuplicateKey) {
					return res, err
				}
				res.Duplicates++
			}
		case OpSelect:
			res.record(m.SelectOrDefault(op.Key))
		case OpUpdate:
			res.recordFound(m.Update(op.Key, op.Value))
		case OpDelete:
			res.record(m.Delete(op.Key))
		}
		res.Ops++
	}
	res.Elapsed = time.Since(start)

	res.Len = m.Len()
	res.Level = m.Level()
	res.Histogram = m.LevelHistogram()
	res.Stats = m.Stats()
	return res, nil
}

func (r *Result) record(_ uint64, found bool) {
	r.recordFound(found)
}

func (r *Result) recordFound(found bool) {
	if found {
		r.Hits++
	} else {
		r.Misses++
	}
}
