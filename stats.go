package collidetree

// Stats describes the shape of a Tree.
type Stats struct {
	Nodes  int
	Leaves int
	Items  int
	// Straddling counts items held by nodes that have children.
	Straddling int
	// Strays counts insertions that missed both children of a split node.
	// Split cells share their dividing line exactly, so this stays zero for
	// any tree built by AddItem.
	Strays   int
	MaxDepth int
}

func (t *Tree[I, T, L]) Stats() Stats {
	var s Stats
	t.walk(0, func(n *Tree[I, T, L], depth int) {
		s.Nodes++
		s.Items += len(n.top)
		s.Strays += n.strays
		if n.children == nil {
			s.Leaves++
		} else {
			s.Straddling += len(n.top)
		}
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
	})
	return s
}

// Len returns the number of items stored under t.
func (t *Tree[I, T, L]) Len() int {
	n := len(t.top)
	if t.children != nil {
		n += t.children[0].Len() + t.children[1].Len()
	}
	return n
}

// Depth returns 0 for a leaf, otherwise one more than the deepest child.
func (t *Tree[I, T, L]) Depth() int {
	if t.children == nil {
		return 0
	}
	return 1 + max(t.children[0].Depth(), t.children[1].Depth())
}

func (t *Tree[I, T, L]) walk(depth int, f func(n *Tree[I, T, L], depth int)) {
	f(t, depth)
	if t.children == nil {
		return
	}
	t.children[0].walk(depth+1, f)
	t.children[1].walk(depth+1, f)
}
