package skipmap

import (
	"sync/atomic"
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

const float64Unit = 1.0 / (1 << 53)

// Source supplies uniformly distributed 64-bit values. *math/rand/v2.PCG and
// *RNG both satisfy it.
type Source interface {
	Uint64() uint64
}

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// RNG is a xorshift64* generator. Its state is atomic so SyncMap readers and
// writers never race on it.
type RNG struct {
	seed atomic.Uint64
}

// NewRNG returns a generator seeded from the clock.
func NewRNG() *RNG {
	return NewRNGWithSeed(newRandomSeed())
}

// NewRNGWithSeed returns a generator that yields a reproducible sequence.
func NewRNGWithSeed(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	r := &RNG{}
	r.seed.Store(seed)
	return r
}

// Uint64 implements Source.
func (r *RNG) Uint64() uint64 {
	for {
		current := r.seed.Load()
		if current == 0 {
			r.seed.CompareAndSwap(0, newRandomSeed())
			continue
		}
		x := current
		x ^= x >> 12
		x ^= x << 25
		x ^= x >> 27
		if x == 0 {
			x = defaultSeed
		}
		if r.seed.CompareAndSwap(current, x) {
			return x * 2685821657736338717
		}
	}
}

// Float64 returns a uniform draw in [0, 1).
func (r *RNG) Float64() float64 {
	return uniform(r)
}

func uniform(src Source) float64 {
	return float64(src.Uint64()>>11) * float64Unit
}

// levelGenerator draws node heights. The height starts at 1 and grows while
// the uniform draw exceeds probability, so P(h = k) = (1-p)^(k-1) * p.
// Heights past maxLevel are truncated, not resampled.
type levelGenerator struct {
	src         Source
	maxLevel    int
	probability float64
}

func (g levelGenerator) RandomLevel() int {
	level := 1
	for level < g.maxLevel && uniform(g.src) > g.probability {
		level++
	}
	return level
}
