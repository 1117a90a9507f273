// Package core: Graph method implementations.
//
// This file provides vertex and edge management on the Graph type
// defined in types.go. Vertices resolve through the vertexIndex to
// dense slots; all edge work happens on the per-vertex sorted edge
// lists. Validation errors return bare sentinels; invariant violations
// wrap the sentinel with the offending endpoints for diagnosis.

package core

import "fmt"

// ensure resolves value to its slot, creating the record when the
// value is new. Appending may reallocate verts, so callers take record
// pointers only after every ensure call is behind them.
func (g *Graph[V]) ensure(value V) (slot int, created bool) {
	slot, created = g.index.insert(value)
	if created {
		g.verts = append(g.verts, vertexRecord[V]{value: value})
	}

	return slot, created
}

// AddVertex registers v with an empty edge list. Re-adding a known
// vertex is a no-op. Returns true when the vertex is new.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) bool {
	_, created := g.ensure(v)

	return created
}

// HasVertex reports whether v is known to the graph.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.index.resolve(v)

	return ok
}

// VertexCount returns the number of known vertices, including isolated
// ones left behind by Disconnect or Collapse.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int { return len(g.verts) }

// Vertices returns every known vertex value in first-seen order.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.verts))
	for slot := range g.verts {
		out[slot] = g.verts[slot].value
	}

	return out
}

// ConnectedVertices returns the values of vertices with at least one
// outgoing edge, in first-seen order. Isolated vertices are skipped.
// Complexity: O(V).
func (g *Graph[V]) ConnectedVertices() []V {
	out := make([]V, 0, len(g.verts))
	for slot := range g.verts {
		if !g.verts[slot].list.empty() {
			out = append(out, g.verts[slot].value)
		}
	}

	return out
}

// Connect inserts or reinforces the edge tail→head with the given
// weight. Unknown endpoints are created on the fly. When the edge
// already exists its weight grows by weight and the stored distance is
// kept; otherwise a new arc is born carrying weight and the distance
// from WithDistance (DefaultDistance when absent). Undirected graphs
// apply the same merge to the mirror arc head→tail.
//
// created reports whether a new adjacency entry appeared.
// Returns ErrLoopNotAllowed for tail == head, ErrBadWeight for
// weight < 1.
// Complexity: O(log d + d) per touched endpoint.
func (g *Graph[V]) Connect(tail, head V, weight int64, opts ...EdgeOption) (created bool, err error) {
	// 1) Validate the endpoints and the weight.
	if tail == head {
		return false, ErrLoopNotAllowed
	}
	if weight < 1 {
		return false, ErrBadWeight
	}

	// 2) Apply per-edge options.
	cfg := edgeConfig{distance: DefaultDistance}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Materialize both endpoints before touching any record.
	tailSlot, _ := g.ensure(tail)
	headSlot, _ := g.ensure(head)

	// 4) Insert or merge the forward arc.
	created = g.verts[tailSlot].list.insert(head, weight, cfg.distance)

	// 5) Mirror the arc for undirected graphs.
	if !g.directed {
		g.verts[headSlot].list.insert(tail, weight, cfg.distance)
	}

	return created, nil
}

// Disconnect removes the edge tail→head and returns its weight, or 0
// when no such edge exists. Undirected graphs remove both mirror arcs
// and verify they agree: a missing mirror yields ErrPartialConnectivity,
// differing weights yield ErrWeightAsymmetry.
// Complexity: O(log d + d) per touched endpoint.
func (g *Graph[V]) Disconnect(tail, head V) (int64, error) {
	// 1) Remove the forward arc.
	fwd, fwdOK := g.removeArc(tail, head)
	if g.directed {
		return fwd.weight, nil
	}

	// 2) Remove the mirror and cross-check the pair.
	rev, revOK := g.removeArc(head, tail)
	if fwdOK != revOK {
		return 0, fmt.Errorf("%w: edge %v-%v stored one-way", ErrPartialConnectivity, tail, head)
	}
	if fwd.weight != rev.weight {
		return 0, fmt.Errorf("%w: edge %v-%v weights %d and %d", ErrWeightAsymmetry, tail, head, fwd.weight, rev.weight)
	}

	return fwd.weight, nil
}

// removeArc drops tail's arc toward head, reporting the removed arc.
func (g *Graph[V]) removeArc(tail, head V) (arc[V], bool) {
	slot, ok := g.index.resolve(tail)
	if !ok {
		return arc[V]{}, false
	}

	return g.verts[slot].list.remove(head)
}

// IsConnected reports whether the edge tail→head exists. A vertex is
// always connected to itself, known to the graph or not. Undirected
// graphs check both directions and surface ErrPartialConnectivity when
// only one arc of the pair is present.
// Complexity: O(log d).
func (g *Graph[V]) IsConnected(tail, head V) (bool, error) {
	if tail == head {
		return true, nil
	}

	fwd := g.hasArc(tail, head)
	if g.directed {
		return fwd, nil
	}

	if rev := g.hasArc(head, tail); fwd != rev {
		return false, fmt.Errorf("%w: edge %v-%v stored one-way", ErrPartialConnectivity, tail, head)
	}

	return fwd, nil
}

// hasArc reports whether tail's edge list holds an arc toward head.
func (g *Graph[V]) hasArc(tail, head V) bool {
	slot, ok := g.index.resolve(tail)
	if !ok {
		return false
	}
	_, ok = g.verts[slot].list.lookup(head)

	return ok
}

// EdgeWeight returns the weight of the arc tail→head, if present.
// Complexity: O(log d).
func (g *Graph[V]) EdgeWeight(tail, head V) (int64, bool) {
	slot, ok := g.index.resolve(tail)
	if !ok {
		return 0, false
	}

	a, ok := g.verts[slot].list.lookup(head)
	if !ok {
		return 0, false
	}

	return a.weight, true
}

// OutEdges returns v's outgoing edges in ascending head order, or nil
// for an unknown vertex.
// Complexity: O(d).
func (g *Graph[V]) OutEdges(v V) []Edge[V] {
	slot, ok := g.index.resolve(v)
	if !ok {
		return nil
	}

	arcs := g.verts[slot].list.arcs
	out := make([]Edge[V], len(arcs))
	for i := range arcs {
		out[i] = Edge[V]{
			Tail:     v,
			Head:     arcs[i].head,
			Weight:   arcs[i].weight,
			Distance: arcs[i].distance,
		}
	}

	return out
}

// OutDegree returns the number of outgoing edges of v; unknown vertices
// have degree zero.
// Complexity: O(1).
func (g *Graph[V]) OutDegree(v V) int {
	slot, ok := g.index.resolve(v)
	if !ok {
		return 0
	}

	return g.verts[slot].list.degree()
}

// CountEdge sums edge weights over the whole graph. Directed graphs
// return the raw arc total. Undirected graphs halve it, since every
// logical edge is stored twice; an odd raw total means the mirror
// invariant is broken and yields ErrOddEdgeSum.
// Complexity: O(V + E).
func (g *Graph[V]) CountEdge() (int64, error) {
	var raw int64
	for slot := range g.verts {
		raw += g.verts[slot].list.total()
	}

	if g.directed {
		return raw, nil
	}
	if raw%2 != 0 {
		return 0, fmt.Errorf("%w: raw total %d", ErrOddEdgeSum, raw)
	}

	return raw / 2, nil
}

// Visited reports the traversal flag of v; unknown vertices read false.
// Complexity: O(1).
func (g *Graph[V]) Visited(v V) bool {
	slot, ok := g.index.resolve(v)
	if !ok {
		return false
	}

	return g.verts[slot].visited
}

// MarkVisited sets the traversal flag of v, reporting whether the
// vertex is known.
// Complexity: O(1).
func (g *Graph[V]) MarkVisited(v V) bool {
	slot, ok := g.index.resolve(v)
	if !ok {
		return false
	}
	g.verts[slot].visited = true

	return true
}

// ResetVisited clears the traversal flag on every vertex. Traversals
// call it before returning, so flags are only ever observed mid-walk.
// Complexity: O(V).
func (g *Graph[V]) ResetVisited() {
	for slot := range g.verts {
		g.verts[slot].visited = false
	}
}
