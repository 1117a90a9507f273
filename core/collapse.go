// Package core: vertex contraction.
//
// Collapse is the primitive behind randomized min-cut: picking a random
// edge and contracting it repeatedly shrinks the graph to two
// super-vertices whose remaining edge weight is a candidate cut.

package core

import "fmt"

// Collapse merges vertex src into vertex dst on an undirected graph.
//
// The direct src-dst edge, which would become a self-loop, is deleted
// outright. Every other edge src-x is rehomed: the mirror x→src is
// removed and reborn as x→dst, and dst gains the matching dst→x arc.
// Rehoming merges weights when x and dst were already adjacent, so
// parallel edges accumulate exactly as repeated Connect calls would.
// Afterwards src stays known to the graph with an empty edge list.
//
// An unknown or isolated src is a no-op. On directed graphs Collapse
// validates its arguments and returns without touching the graph;
// contraction is defined for undirected graphs only.
//
// Returns ErrLoopNotAllowed when src == dst, ErrPartialConnectivity
// when a mirror arc is missing, and ErrWeightAsymmetry when a mirror
// pair disagrees on weight. Both invariant errors mean the graph was
// corrupt before the call; the contraction stops where it stands.
// Complexity: O(deg(src) · (log d + d)).
func (g *Graph[V]) Collapse(src, dst V) error {
	// 1) Contracting a vertex into itself is never meaningful.
	if src == dst {
		return ErrLoopNotAllowed
	}
	if g.directed {
		return nil
	}

	// 2) Nothing to rehome when src is unknown or already isolated.
	srcSlot, ok := g.index.resolve(src)
	if !ok || g.verts[srcSlot].list.empty() {
		return nil
	}

	// 3) Materialize dst before any record access below; the append
	//    inside ensure may move the record slice.
	dstSlot, _ := g.ensure(dst)

	// 4) Drop the direct src-dst pair, cross-checking the mirrors.
	fwd, fwdOK := g.verts[srcSlot].list.remove(dst)
	rev, revOK := g.verts[dstSlot].list.remove(src)
	if fwdOK != revOK {
		return fmt.Errorf("%w: edge %v-%v stored one-way", ErrPartialConnectivity, src, dst)
	}
	if fwd.weight != rev.weight {
		return fmt.Errorf("%w: edge %v-%v weights %d and %d", ErrWeightAsymmetry, src, dst, fwd.weight, rev.weight)
	}

	// 5) Rehome the remaining edges. Inserts below touch only x and dst
	//    lists, never src's, so ranging over src's arcs is stable.
	for _, a := range g.verts[srcSlot].list.arcs {
		xSlot, ok := g.index.resolve(a.head)
		if !ok {
			return fmt.Errorf("%w: edge %v-%v has no endpoint record", ErrPartialConnectivity, src, a.head)
		}

		// a) Capture and drop the mirror x→src.
		back, ok := g.verts[xSlot].list.remove(src)
		if !ok {
			return fmt.Errorf("%w: edge %v-%v stored one-way", ErrPartialConnectivity, src, a.head)
		}
		if back.weight != a.weight {
			return fmt.Errorf("%w: edge %v-%v weights %d and %d", ErrWeightAsymmetry, src, a.head, a.weight, back.weight)
		}

		// b) Rebind both endpoints onto dst, merging parallel edges.
		g.verts[xSlot].list.insert(dst, back.weight, back.distance)
		g.verts[dstSlot].list.insert(a.head, a.weight, a.distance)
	}

	// 6) Isolate src; its record and slot survive.
	g.verts[srcSlot].list.clear()

	return nil
}
