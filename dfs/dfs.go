// Package dfs implements depth-first search on a core.Graph with an
// explicit frame stack, so arbitrarily deep graphs cannot overflow the
// goroutine stack. The traversal reports finishing order: a vertex is
// recorded only when the search retreats from it, which on a DAG makes
// the reversed Order a topological order.
//
// Key behaviors:
//   - Explicit stack, one frame per discovered vertex with a cursor
//     into its sorted edge list; ties break in ascending head order.
//   - Hooks: OnVisit at discovery, OnRetreat at finish (error aborts).
//   - Limits: MaxDepth, FilterNeighbor, cancellation via context.
//   - WithFullTraversal covers disconnected components as a forest.
//   - Drives the graph's own visited flags and always leaves them
//     cleared, the same policy as package bfs.
//
// Complexity:
//   - Time:   O(V + E), plus hook and filter overhead.
//   - Memory: O(V) for the frame stack and result maps.
package dfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/grafold/core"
)

// frame is one explicit-stack entry: a discovered vertex, its sorted
// edge snapshot, and the cursor of the next edge to explore.
type frame[V cmp.Ordered] struct {
	value  V
	edges  []core.Edge[V]
	cursor int
	depth  int
}

// walker encapsulates mutable DFS state.
type walker[V cmp.Ordered] struct {
	graph *core.Graph[V]
	opts  Options[V]
	stack []frame[V]
	res   *Result[V]
}

// DFS performs depth-first search on graph g from start. With
// WithFullTraversal it continues over every unreached component after
// the first tree finishes.
//
// An unknown start vertex yields an empty Result and no error (with
// FullTraversal the forest is walked regardless). Returns ErrGraphNil
// for a nil graph, ErrOptionViolation for bad options, the context
// error on cancellation, or any wrapped hook error; hook errors
// discard the finishing order collected so far.
func DFS[V cmp.Ordered](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	// 1) Validate the graph and assemble options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Initialize the result with capacity hints.
	n := g.VertexCount()
	w := &walker[V]{
		graph: g,
		opts:  o,
		stack: make([]frame[V], 0, n),
		res: &Result[V]{
			Order:   make([]V, 0, n),
			Depth:   make(map[V]int, n),
			Parent:  make(map[V]V, n),
			Reached: make(map[V]bool, n),
		},
	}

	// 3) Nothing to walk from an unknown vertex in single-tree mode.
	if !o.FullTraversal && !g.HasVertex(start) {
		return w.res, nil
	}

	// The walk marks visited flags on the graph itself; clear them on
	// every exit path so the next traversal starts fresh.
	defer g.ResetVisited()

	// 4) Walk the tree rooted at start, then the rest of the forest
	//    when requested.
	if g.HasVertex(start) {
		if err := w.tree(start); err != nil {
			return w.res, err
		}
	}
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if g.Visited(v) {
				continue
			}
			if err := w.tree(v); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// tree runs one depth-first tree from root until the stack drains.
func (w *walker[V]) tree(root V) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.cursor == len(top.edges) {
			// Every edge explored: retreat and record the finish.
			if err := w.finish(top.value); err != nil {
				return err
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		e := top.edges[top.cursor]
		top.cursor++

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.Head) {
			continue
		}
		nextDepth := top.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if w.graph.Visited(e.Head) {
			continue
		}

		w.res.Parent[e.Head] = top.value
		if err := w.discover(e.Head, nextDepth); err != nil {
			return err
		}
	}

	return nil
}

// discover marks v visited, records its metadata, fires OnVisit, and
// pushes its frame. The edge snapshot is taken once per vertex.
func (w *walker[V]) discover(v V, depth int) error {
	w.graph.MarkVisited(v)
	w.res.Reached[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			// abort and discard the finishing order
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	w.stack = append(w.stack, frame[V]{value: v, edges: w.graph.OutEdges(v), depth: depth})

	return nil
}

// finish fires OnRetreat and appends v to the finishing order.
func (w *walker[V]) finish(v V) error {
	if w.opts.OnRetreat != nil {
		if err := w.opts.OnRetreat(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnRetreat hook for %v: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}
