package collidetree

// Located is anything that can be stored in a Tree. ID is only handed back
// to the caller; the tree never compares it. Bounds is read once, when the
// item is added.
type Located[I comparable, T Number] interface {
	ID() I
	Bounds() BoundingBox[T]
}

// Item pairs an id with a fixed bounding box.
type Item[I comparable, T Number] struct {
	Key I
	Box BoundingBox[T]
}

// NewItem returns an Item with the given id and bounds.
func NewItem[I comparable, T Number](id I, box BoundingBox[T]) Item[I, T] {
	return Item[I, T]{Key: id, Box: box}
}

func (it Item[I, T]) ID() I {
	return it.Key
}

func (it Item[I, T]) Bounds() BoundingBox[T] {
	return it.Box
}
