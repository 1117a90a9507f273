// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and
// level-ordered visit sequence.
//
// BFS explores vertices in increasing distance from a start vertex;
// inside one level, neighbors arrive in ascending value order because
// core edge lists are sorted. The walk drives the graph's own visited
// flags and always leaves them cleared, whether it finishes, fails in
// a hook, or is canceled.
package bfs

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/grafold/core"
)

// queueItem pairs a vertex with its BFS depth and its parent.
type queueItem[V cmp.Ordered] struct {
	value     V
	depth     int
	parent    V
	hasParent bool // false for the root
}

// walker encapsulates mutable BFS state.
type walker[V cmp.Ordered] struct {
	graph *core.Graph[V]
	opts  Options[V]
	ctx   context.Context
	queue []queueItem[V]
	res   *Result[V]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
//
// An unknown start vertex yields an empty Result and no error; there
// is simply nothing to walk. Returns ErrGraphNil for a nil graph,
// ErrOptionViolation for bad options, the context error on
// cancellation, or any user-supplied hook error.
// Complexity: O(V + E), Memory: O(V).
func BFS[V cmp.Ordered](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	w := &walker[V]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[V], 0, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	// Nothing to walk from an unknown vertex.
	if !g.HasVertex(start) {
		return w.res, nil
	}

	// The walk marks visited flags on the graph itself; clear them on
	// every exit path so the next traversal starts fresh.
	defer g.ResetVisited()

	// Seed the queue with the start vertex (no parent).
	w.enqueue(queueItem[V]{value: start})

	return w.res, w.loop()
}

// enqueue marks the vertex visited, records depth and parent, calls
// OnEnqueue, and appends the item to the queue.
func (w *walker[V]) enqueue(item queueItem[V]) {
	w.graph.MarkVisited(item.value)
	w.res.Depth[item.value] = item.depth
	if item.hasParent {
		w.res.Parent[item.value] = item.parent
	}
	w.opts.OnEnqueue(item.value, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.value, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.value)
	if err := w.opts.OnVisit(item.value, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.value, err)
	}

	return nil
}

// enqueueNeighbors walks the sorted edge list of item, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	for _, e := range w.graph.OutEdges(item.value) {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.value, e.Head) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.graph.Visited(e.Head) {
			w.enqueue(queueItem[V]{value: e.Head, depth: nextDepth, parent: item.value, hasParent: true})
		}
	}

	return nil
}
