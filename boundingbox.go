package collidetree

import (
	"golang.org/x/exp/constraints"
)

// Number is any coordinate type a BoundingBox can be built over.
type Number interface {
	constraints.Integer | constraints.Float
}

// BoundingBox is an axis-aligned rectangle with its origin at (X, Y).
// W and H must not be negative; this is not checked.
type BoundingBox[T Number] struct {
	X, Y T
	W, H T
}

// NewBoundingBox returns the box with origin (x, y), width w and height h.
func NewBoundingBox[T Number](x, y, w, h T) BoundingBox[T] {
	return BoundingBox[T]{X: x, Y: y, W: w, H: h}
}

// Intersects reports whether b and other overlap. Edges are inclusive, so
// boxes that only touch intersect.
func (b BoundingBox[T]) Intersects(other BoundingBox[T]) bool {
	if b.X > other.X+other.W || other.X > b.X+b.W {
		return false
	}
	if b.Y > other.Y+other.H || other.Y > b.Y+b.H {
		return false
	}
	return true
}

// Contains reports whether other lies entirely inside b.
func (b BoundingBox[T]) Contains(other BoundingBox[T]) bool {
	return other.X >= b.X &&
		other.Y >= b.Y &&
		other.X+other.W <= b.X+b.W &&
		other.Y+other.H <= b.Y+b.H
}

// Clamp moves every edge of b into to. Boxes that overlap still overlap
// after both are clamped to the same box. Image uses it to clip item bounds.
func (b BoundingBox[T]) Clamp(to BoundingBox[T]) BoundingBox[T] {
	x0, x1 := clamp(b.X, to.X, to.X+to.W), clamp(b.X+b.W, to.X, to.X+to.W)
	y0, y1 := clamp(b.Y, to.Y, to.Y+to.H), clamp(b.Y+b.H, to.Y, to.Y+to.H)
	return BoundingBox[T]{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func clamp[T Number](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Area returns W*H.
func (b BoundingBox[T]) Area() T {
	return b.W * b.H
}

// Split halves b across its longer side, height on a tie. The second half
// takes the remainder, so the halves always cover b exactly.
func (b BoundingBox[T]) Split() (BoundingBox[T], BoundingBox[T]) {
	if b.W > b.H {
		half := b.W / T(2)
		return BoundingBox[T]{X: b.X, Y: b.Y, W: half, H: b.H},
			BoundingBox[T]{X: b.X + half, Y: b.Y, W: b.W - half, H: b.H}
	}
	half := b.H / T(2)
	return BoundingBox[T]{X: b.X, Y: b.Y, W: b.W, H: half},
		BoundingBox[T]{X: b.X, Y: b.Y + half, W: b.W, H: b.H - half}
}
