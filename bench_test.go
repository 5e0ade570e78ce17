package skipmap

import (
	"math/rand"
	"sync/atomic"
	"testing"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

var distributions = []struct {
	name string
	kind distributionKind
}{
	{name: "Uniform", kind: distUniform},
	{name: "Ascending", kind: distAscending},
	{name: "Zipfian", kind: distZipf},
}

var workloads = []struct {
	name         string
	writePercent int
}{
	{name: "ReadMostly", writePercent: 5},
	{name: "WriteHeavy", writePercent: 90},
	{name: "Mixed", writePercent: 50},
}

const benchKeyRange = 1 << 12

type keySource struct {
	kind      distributionKind
	r         *rand.Rand
	zipf      *rand.Zipf
	ascending *uint64
}

func newKeySource(kind distributionKind, seed int64, ascending *uint64) *keySource {
	r := rand.New(rand.NewSource(seed))
	ks := &keySource{kind: kind, r: r, ascending: ascending}
	if kind == distZipf {
		ks.zipf = rand.NewZipf(r, 1.2, 1, benchKeyRange-1)
	}
	return ks
}

func (ks *keySource) next() int {
	switch ks.kind {
	case distAscending:
		return int(atomic.AddUint64(ks.ascending, 1) % benchKeyRange)
	case distZipf:
		return int(ks.zipf.Uint64())
	default:
		return ks.r.Intn(benchKeyRange)
	}
}

func BenchmarkOrderedMapWorkloads(b *testing.B) {
	for _, dist := range distributions {
		b.Run(dist.name, func(b *testing.B) {
			for _, workload := range workloads {
				b.Run(workload.name, func(b *testing.B) {
					m, err := New[int, int](DefaultMaxLevel, DefaultProbability)
					if err != nil {
						b.Fatal(err)
					}
					for i := 0; i < benchKeyRange/2; i++ {
						m.Set(i, i)
					}

					var ascending uint64
					ks := newKeySource(dist.kind, 1_000_003, &ascending)

					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						key := ks.next()
						if ks.r.Intn(100) < workload.writePercent {
							if ks.r.Intn(2) == 0 {
								m.Upsert(key, i)
							} else {
								m.Delete(key)
							}
						} else {
							m.SelectOrDefault(key)
						}
					}
				})
			}
		})
	}
}

func BenchmarkSyncMapParallel(b *testing.B) {
	for _, dist := range distributions {
		b.Run(dist.name, func(b *testing.B) {
			for _, workload := range workloads {
				b.Run(workload.name, func(b *testing.B) {
					s, err := NewSync[int, int](DefaultMaxLevel, DefaultProbability)
					if err != nil {
						b.Fatal(err)
					}
					for i := 0; i < benchKeyRange/2; i++ {
						s.Upsert(i, i)
					}

					var ascending uint64
					var worker atomic.Int64

					b.ResetTimer()
					b.RunParallel(func(pb *testing.PB) {
						ks := newKeySource(dist.kind, worker.Add(1)*1_000_003, &ascending)
						i := 0
						for pb.Next() {
							key := ks.next()
							if ks.r.Intn(100) < workload.writePercent {
								s.Upsert(key, i)
							} else {
								s.SelectOrDefault(key)
							}
							i++
						}
					})
				})
			}
		})
	}
}

func BenchmarkInsertSequential(b *testing.B) {
	m, err := New[int, int](DefaultMaxLevel, DefaultProbability)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Insert(i, i)
	}
}
