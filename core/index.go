// Package core: vertexIndex maps vertex values to dense slots.
//
// Slots are handed out in first-seen order and never reused or
// rebound, so a slot held across mutations stays valid even when the
// record slice reallocates.

package core

import "cmp"

// vertexIndex assigns each distinct vertex value a stable slot.
type vertexIndex[V cmp.Ordered] struct {
	slots map[V]int
}

// newVertexIndex returns an empty index.
func newVertexIndex[V cmp.Ordered]() vertexIndex[V] {
	return vertexIndex[V]{slots: make(map[V]int)}
}

// resolve returns the slot bound to value, if any.
func (ix vertexIndex[V]) resolve(value V) (int, bool) {
	slot, ok := ix.slots[value]

	return slot, ok
}

// insert binds value to the next free slot, or returns the existing
// binding. created reports whether a new slot was handed out.
func (ix vertexIndex[V]) insert(value V) (slot int, created bool) {
	if slot, ok := ix.slots[value]; ok {
		return slot, false
	}

	slot = len(ix.slots)
	ix.slots[value] = slot

	return slot, true
}

// size returns the number of bound values.
func (ix vertexIndex[V]) size() int { return len(ix.slots) }
