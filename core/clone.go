// Package core: deep copy support.

package core

// Clone returns a deep copy of the graph: same direction mode, same
// slot layout, independent edge lists and visited flags. Mutating the
// clone never touches the original, which makes clones the working
// material for destructive pipelines such as repeated contraction.
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	clone := &Graph[V]{
		directed: g.directed,
		index:    newVertexIndex[V](),
		verts:    make([]vertexRecord[V], len(g.verts)),
	}

	// Re-inserting values in slot order reproduces the slot layout.
	for slot := range g.verts {
		rec := &g.verts[slot]
		clone.index.insert(rec.value)

		arcs := make([]arc[V], len(rec.list.arcs))
		copy(arcs, rec.list.arcs)
		clone.verts[slot] = vertexRecord[V]{
			value:   rec.value,
			visited: rec.visited,
			list:    edgeList[V]{arcs: arcs},
		}
	}

	return clone
}
