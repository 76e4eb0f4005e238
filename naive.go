package collidetree

import (
	"cmp"
	"slices"
)

// Pair is a reported collision, by id. A was added before B.
type Pair[I comparable] struct {
	A, B I
}

// Naive compares every item with every later item and calls f(items[i],
// items[j]) for each overlapping pair, i < j. It is the O(n²) baseline the
// tree is checked against.
func Naive[I comparable, T Number, L Located[I, T]](items []L, f func(a, b L)) {
	bounds := make([]BoundingBox[T], len(items))
	for i, it := range items {
		bounds[i] = it.Bounds()
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if bounds[i].Intersects(bounds[j]) {
				f(items[i], items[j])
			}
		}
	}
}

// Collector returns a callback that records each reported pair by id, and
// the slice it records into.
func Collector[I comparable, T Number, L Located[I, T]]() (func(a, b L), *[]Pair[I]) {
	pairs := &[]Pair[I]{}
	return func(a, b L) {
		*pairs = append(*pairs, Pair[I]{A: a.ID(), B: b.ID()})
	}, pairs
}

// SortPairs orders pairs by A, then B.
func SortPairs[I cmp.Ordered](pairs []Pair[I]) {
	slices.SortFunc(pairs, func(p, q Pair[I]) int {
		if c := cmp.Compare(p.A, q.A); c != 0 {
			return c
		}
		return cmp.Compare(p.B, q.B)
	})
}

// Canonical orders each pair so that A <= B, then sorts. Use it to compare
// pair sets whose members were not reported in insertion order.
func Canonical[I cmp.Ordered](pairs []Pair[I]) []Pair[I] {
	out := make([]Pair[I], len(pairs))
	for i, p := range pairs {
		if p.B < p.A {
			p.A, p.B = p.B, p.A
		}
		out[i] = p
	}
	SortPairs(out)
	return out
}
