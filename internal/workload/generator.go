package workload

import (
	"encoding/binary"
	"math/rand"

	"github.com/spaolacci/murmur3"
)

// Kind is the type of a generated operation.
type Kind uint8

const (
	OpInsert Kind = iota
	OpSelect
	OpUpdate
	OpDelete
)

func (k Kind) String() string {
	switch k {
	case OpInsert:
		return "Insert"
	case OpSelect:
		return "Select"
	case OpUpdate:
		return "Update"
	case OpDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Op is one generated operation.
type Op struct {
	Kind  Kind
	Key   uint64
	Value uint64
}

// Generator turns a Spec into a deterministic operation stream. Two
// generators built from equal specs yield identical streams.
type Generator struct {
	spec Spec
	r    *rand.Rand
	zipf *rand.Zipf
	seq  uint64
	buf  [8]byte
}

// NewGenerator returns a generator for spec. The spec must be valid.
func NewGenerator(spec Spec) *Generator {
	r := rand.New(rand.NewSource(spec.Seed))
	g := &Generator{spec: spec, r: r}
	if spec.Distribution == DistZipf {
		g.zipf = rand.NewZipf(r, spec.ZipfS, 1, uint64(spec.KeySpace-1))
	}
	return g
}

// Next returns the next operation.
func (g *Generator) Next() Op {
	op := Op{Kind: g.kind(), Value: g.r.Uint64()}
	op.Key = g.key(g.index())
	return op
}

// Generate returns the next n operations.
func (g *Generator) Generate(n int) []Op {
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = g.Next()
	}
	return ops
}

func (g *Generator) kind() Kind {
	mix := g.spec.Mix
	n := g.r.Intn(mix.total())
	switch {
	case n < mix.Insert:
		return OpInsert
	case n < mix.Insert+mix.Select:
		return OpSelect
	case n < mix.Insert+mix.Select+mix.Update:
		return OpUpdate
	default:
		return OpDelete
	}
}

func (g *Generator) index() uint64 {
	switch g.spec.Distribution {
	case DistAscending:
		idx := g.seq % uint64(g.spec.KeySpace)
		g.seq++
		return idx
	case DistZipf:
		return g.zipf.Uint64()
	default:
		return uint64(g.r.Intn(g.spec.KeySpace))
	}
}

// key maps a key-space index to a map key. Ascending workloads use the index
// itself; the others hash it so hot indices are spread over the key order.
func (g *Generator) key(idx uint64) uint64 {
	if g.spec.Distribution == DistAscending {
		return idx
	}
	binary.LittleEndian.PutUint64(g.buf[:], idx)
	return murmur3.Sum64WithSeed(g.buf[:], uint32(g.spec.Seed))
}
