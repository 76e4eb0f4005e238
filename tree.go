/*
Package collidetree implements a broad-phase collision index over 2D bounding boxes.

A Tree covers a fixed region and is filled one item at a time. Every insertion
reports the items already in the tree whose bounds overlap the new one, so by
the time the last item is added every overlapping pair has been reported
exactly once. Nodes hold items in a list until SplitThreshold is reached and
then split their region in two; items that straddle the split stay behind.

The tree stores a snapshot of each item's bounds and has no removal or update.
It is meant to be thrown away and rebuilt each frame.

Tree is not safe for concurrent use. See LockedTree.
*/
package collidetree

import (
	"iter"

	log "github.com/sirupsen/logrus"
)

// SplitThreshold is the number of items a leaf holds before it splits.
const SplitThreshold = 8

type entry[T Number, L any] struct {
	item   L
	bounds BoundingBox[T]
}

// Tree is one node of the partition. It keeps the items that straddle its
// split and has either no children or exactly two.
type Tree[I comparable, T Number, L Located[I, T]] struct {
	region   BoundingBox[T]
	cell     cell[T]
	top      []entry[T, L]
	children *[2]Tree[I, T, L]
	strays   int
}

// New returns an empty tree over region. Items may reach outside region;
// they are held by the nodes along its nearest edge.
func New[I comparable, T Number, L Located[I, T]](region BoundingBox[T]) *Tree[I, T, L] {
	return &Tree[I, T, L]{region: region, cell: rootCell(region)}
}

func (t *Tree[I, T, L]) Region() BoundingBox[T] {
	return t.region
}

// Children returns the two halves of a split node. ok is false for a leaf.
func (t *Tree[I, T, L]) Children() (a, b *Tree[I, T, L], ok bool) {
	if t.children == nil {
		return nil, nil, false
	}
	return &t.children[0], &t.children[1], true
}

// Top returns the items held directly by this node, in insertion order.
func (t *Tree[I, T, L]) Top() []L {
	items := make([]L, len(t.top))
	for i, e := range t.top {
		items[i] = e.item
	}
	return items
}

// AddItem inserts item and calls f(existing, item) for every item already in
// the tree whose bounds overlap it.
func (t *Tree[I, T, L]) AddItem(item L, f func(a, b L)) {
	t.add(entry[T, L]{item: item, bounds: item.Bounds()}, func(a, b L) bool {
		f(a, b)
		return true
	})
}

func (t *Tree[I, T, L]) add(e entry[T, L], visit func(a, b L) bool) {
	t.Grow()
	t.hitTop(e, visit)

	if t.children == nil {
		t.top = append(t.top, e)
		return
	}

	a, b := &t.children[0], &t.children[1]
	inA, inB := a.cell.touches(e.bounds), b.cell.touches(e.bounds)
	switch {
	case inA && !inB:
		a.add(e, visit)
	case inB && !inA:
		b.add(e, visit)
	default:
		if !inA {
			// the halves of a cell cover it, so only a hand-built tree gets here
			t.strays++
			log.WithFields(log.Fields{
				"region": t.region,
				"bounds": e.bounds,
			}).Debugln("collidetree: item misses both children")
		}
		t.below(e, visit)
		t.top = append(t.top, e)
	}
}

// CheckHits calls f(existing, item) for every item in the tree whose bounds
// overlap item. The tree is not modified.
func (t *Tree[I, T, L]) CheckHits(item L, f func(a, b L)) {
	t.probe(entry[T, L]{item: item, bounds: item.Bounds()}, func(a, b L) bool {
		f(a, b)
		return true
	})
}

func (t *Tree[I, T, L]) hitTop(e entry[T, L], visit func(a, b L) bool) bool {
	for _, top := range t.top {
		if top.bounds.Intersects(e.bounds) {
			if !visit(top.item, e.item) {
				return false
			}
		}
	}
	return true
}

func (t *Tree[I, T, L]) probe(e entry[T, L], visit func(a, b L) bool) bool {
	return t.hitTop(e, visit) && t.below(e, visit)
}

// below reports e against everything under t, visiting only the children
// whose cell e touches.
func (t *Tree[I, T, L]) below(e entry[T, L], visit func(a, b L) bool) bool {
	if t.children == nil {
		return true
	}
	a, b := &t.children[0], &t.children[1]
	inA, inB := a.cell.touches(e.bounds), b.cell.touches(e.bounds)
	if !inA && !inB {
		return a.scan(e, visit) && b.scan(e, visit)
	}
	return (!inA || a.probe(e, visit)) && (!inB || b.probe(e, visit))
}

// scan checks e against every item under t without pruning.
func (t *Tree[I, T, L]) scan(e entry[T, L], visit func(a, b L) bool) bool {
	if !t.hitTop(e, visit) {
		return false
	}
	if t.children == nil {
		return true
	}
	return t.children[0].scan(e, visit) && t.children[1].scan(e, visit)
}

// Grow splits a leaf that has reached SplitThreshold and pushes every item
// that fits in exactly one half down into it. Calling Grow on a node that
// already has children, or that is below the threshold, does nothing. A
// region too small to halve is never split.
func (t *Tree[I, T, L]) Grow() {
	if t.children != nil || len(t.top) < SplitThreshold {
		return
	}

	ra, rb := t.region.Split()
	if ra == t.region || rb == t.region {
		return
	}
	wide := t.region.W > t.region.H
	at := rb.Y
	if wide {
		at = rb.X
	}
	ca, cb := t.cell.split(at, wide)
	t.children = &[2]Tree[I, T, L]{{region: ra, cell: ca}, {region: rb, cell: cb}}
	a, b := &t.children[0], &t.children[1]

	old := t.top
	kept := t.top[:0]
	for _, e := range old {
		inA, inB := a.cell.touches(e.bounds), b.cell.touches(e.bounds)
		switch {
		case inA && !inB:
			a.top = append(a.top, e)
		case inB && !inA:
			b.top = append(b.top, e)
		default:
			kept = append(kept, e)
		}
	}
	clear(old[len(kept):])
	t.top = kept
}

// ForEachCollision calls f once for every overlapping pair in the tree,
// independent of the order the items were added in.
func (t *Tree[I, T, L]) ForEachCollision(f func(a, b L)) {
	t.sweep(func(a, b L) bool {
		f(a, b)
		return true
	})
}

// Collisions is the iterator form of ForEachCollision.
func (t *Tree[I, T, L]) Collisions() iter.Seq2[L, L] {
	return func(yield func(a, b L) bool) {
		t.sweep(yield)
	}
}

func (t *Tree[I, T, L]) sweep(visit func(a, b L) bool) bool {
	for i := 0; i < len(t.top); i++ {
		for j := i + 1; j < len(t.top); j++ {
			if t.top[i].bounds.Intersects(t.top[j].bounds) {
				if !visit(t.top[i].item, t.top[j].item) {
					return false
				}
			}
		}
	}
	if t.children == nil {
		return true
	}

	for _, e := range t.top {
		if !t.below(e, visit) {
			return false
		}
	}
	return t.children[0].sweep(visit) && t.children[1].sweep(visit)
}
