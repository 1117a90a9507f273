// Package core: edgeList keeps one vertex's outgoing arcs sorted in
// ascending head order with no duplicate heads.
//
// Insertion merges weight into an existing arc instead of duplicating
// it, so the list doubles as the weight accumulator for parallel
// connect calls.

package core

import (
	"cmp"
	"sort"
)

// arc is one outgoing edge entry inside an edgeList.
type arc[V cmp.Ordered] struct {
	head     V
	weight   int64
	distance float64
}

// edgeList is a sorted slice of arcs owned by a single vertex.
type edgeList[V cmp.Ordered] struct {
	arcs []arc[V]
}

// rank returns the position of head, or the insertion point that keeps
// the list sorted when head is absent.
func (l *edgeList[V]) rank(head V) int {
	return sort.Search(len(l.arcs), func(i int) bool { return l.arcs[i].head >= head })
}

// lookup returns the arc toward head, if present.
func (l *edgeList[V]) lookup(head V) (arc[V], bool) {
	i := l.rank(head)
	if i < len(l.arcs) && l.arcs[i].head == head {
		return l.arcs[i], true
	}

	return arc[V]{}, false
}

// insert adds an arc toward head, keeping ascending order. When an arc
// toward head already exists, its weight grows by weight and the stored
// distance is kept. created reports whether a new entry appeared.
func (l *edgeList[V]) insert(head V, weight int64, distance float64) (created bool) {
	i := l.rank(head)
	if i < len(l.arcs) && l.arcs[i].head == head {
		l.arcs[i].weight += weight

		return false
	}

	// Open a gap at i and place the new arc.
	l.arcs = append(l.arcs, arc[V]{})
	copy(l.arcs[i+1:], l.arcs[i:])
	l.arcs[i] = arc[V]{head: head, weight: weight, distance: distance}

	return true
}

// remove deletes the arc toward head and returns it. The second result
// is false when no such arc exists; the list is left untouched.
func (l *edgeList[V]) remove(head V) (arc[V], bool) {
	i := l.rank(head)
	if i >= len(l.arcs) || l.arcs[i].head != head {
		return arc[V]{}, false
	}

	removed := l.arcs[i]
	l.arcs = append(l.arcs[:i], l.arcs[i+1:]...)

	return removed, true
}

// clear drops every arc. The owning record survives, so the vertex
// stays known to the graph with degree zero.
func (l *edgeList[V]) clear() { l.arcs = nil }

// degree returns the number of stored arcs.
func (l *edgeList[V]) degree() int { return len(l.arcs) }

// empty reports whether the list has no arcs.
func (l *edgeList[V]) empty() bool { return len(l.arcs) == 0 }

// total sums the weights of all stored arcs.
func (l *edgeList[V]) total() int64 {
	var sum int64
	for i := range l.arcs {
		sum += l.arcs[i].weight
	}

	return sum
}
