package skipmap

import (
	"cmp"

	"github.com/facette/natsort"
)

// Compare defines a total order over keys. It returns a negative number when
// a < b, zero when a == b and a positive number when a > b.
type Compare[K any] func(a, b K) int

// Ordered returns the natural order of a cmp.Ordered key type.
func Ordered[K cmp.Ordered]() Compare[K] {
	return cmp.Compare[K]
}

// Reverse inverts an order.
func Reverse[K any](c Compare[K]) Compare[K] {
	return func(a, b K) int { return c(b, a) }
}

// NaturalStrings orders strings so embedded numbers compare by value:
// "node2" sorts before "node10".
func NaturalStrings(a, b string) int {
	if a == b {
		return 0
	}
	less, greater := natsort.Compare(a, b), natsort.Compare(b, a)
	switch {
	case less && !greater:
		return -1
	case greater && !less:
		return 1
	default:
		// natsort reports "a01" and "a1" as preceding each other; fall back
		// to bytes so the order stays total.
		return cmp.Compare(a, b)
	}
}
