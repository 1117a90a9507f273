// Package core: human-readable graph dumps.

package core

import (
	"fmt"
	"io"
	"strings"
)

// visited flag markers used by Display.
const (
	markVisited   = "visited"
	markUnvisited = "unvisited"
)

// Display writes one line per vertex in first-seen order: the value,
// the visited flag, then the edge list in ascending head order as
// "-> head(weight, distance)" hops. Distances print in their shortest
// form, so whole numbers carry no trailing zeros.
//
//	a [unvisited] -> b(4, 1) -> c(1, 2.5)
//	b [visited] -> a(4, 1)
//
// The dump is assembled in memory and written once; the write error,
// if any, is returned as-is.
// Complexity: O(V + E).
func (g *Graph[V]) Display(w io.Writer) error {
	var b strings.Builder
	g.render(&b)
	_, err := io.WriteString(w, b.String())

	return err
}

// String returns the Display dump as a string.
func (g *Graph[V]) String() string {
	var b strings.Builder
	g.render(&b)

	return b.String()
}

// render appends the dump of every vertex record to b.
func (g *Graph[V]) render(b *strings.Builder) {
	for slot := range g.verts {
		rec := &g.verts[slot]

		mark := markUnvisited
		if rec.visited {
			mark = markVisited
		}
		fmt.Fprintf(b, "%v [%s]", rec.value, mark)

		for _, a := range rec.list.arcs {
			fmt.Fprintf(b, " -> %v(%d, %g)", a.head, a.weight, a.distance)
		}
		b.WriteByte('\n')
	}
}
