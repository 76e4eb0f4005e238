package collidetree

// Sides of a cell that reach to infinity.
const (
	openMinX uint8 = 1 << iota
	openMinY
	openMaxX
	openMaxY

	openAll = openMinX | openMinY | openMaxX | openMaxY
)

// cell is the part of the plane a node answers for. Placement and pruning
// test item bounds against the cell, not the node's region.
//
// A cell's edges are copied from its parent and sibling rather than
// recomputed, so the two halves of a split always meet exactly and together
// cover the parent cell. Sides on the outside of the root are open, so every
// box touches the root cell, including boxes outside the region.
type cell[T Number] struct {
	x0, y0, x1, y1 T
	open           uint8
}

func rootCell[T Number](r BoundingBox[T]) cell[T] {
	return cell[T]{x0: r.X, y0: r.Y, x1: r.X + r.W, y1: r.Y + r.H, open: openAll}
}

// touches uses the same inclusive comparisons as BoundingBox.Intersects.
func (c cell[T]) touches(b BoundingBox[T]) bool {
	return (c.open&openMinX != 0 || b.X+b.W >= c.x0) &&
		(c.open&openMaxX != 0 || b.X <= c.x1) &&
		(c.open&openMinY != 0 || b.Y+b.H >= c.y0) &&
		(c.open&openMaxY != 0 || b.Y <= c.y1)
}

// split divides c at the line through at, on x when wide is set and on y
// otherwise.
func (c cell[T]) split(at T, wide bool) (cell[T], cell[T]) {
	a, b := c, c
	if wide {
		a.x1, a.open = at, a.open&^openMaxX
		b.x0, b.open = at, b.open&^openMinX
	} else {
		a.y1, a.open = at, a.open&^openMaxY
		b.y0, b.open = at, b.open&^openMinY
	}
	return a, b
}
