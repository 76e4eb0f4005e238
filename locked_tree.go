package collidetree

import (
	"sync"
)

// LockedTree guards a Tree with a mutex so several goroutines can share it.
// Callbacks run with the lock held and must not call back into the same
// LockedTree.
type LockedTree[I comparable, T Number, L Located[I, T]] struct {
	mutex sync.RWMutex
	tree  *Tree[I, T, L]
}

func NewLocked[I comparable, T Number, L Located[I, T]](region BoundingBox[T]) *LockedTree[I, T, L] {
	return &LockedTree[I, T, L]{tree: New[I, T, L](region)}
}

func (q *LockedTree[I, T, L]) Region() BoundingBox[T] {
	// the region never changes, no lock needed
	return q.tree.region
}

func (q *LockedTree[I, T, L]) AddItem(item L, f func(a, b L)) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.tree.AddItem(item, f)
}

func (q *LockedTree[I, T, L]) CheckHits(item L, f func(a, b L)) {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	q.tree.CheckHits(item, f)
}

func (q *LockedTree[I, T, L]) ForEachCollision(f func(a, b L)) {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	q.tree.ForEachCollision(f)
}

func (q *LockedTree[I, T, L]) Len() int {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.tree.Len()
}

func (q *LockedTree[I, T, L]) Stats() Stats {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.tree.Stats()
}
