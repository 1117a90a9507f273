// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and a
// level-ordered visit sequence.
//
// What
//
//   - Explores vertices in non-decreasing distance (edge count) from a
//     start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence, level by level
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//   - Connectivity prechecks for contraction pipelines.
//
// Determinism
//
//	Core edge lists are sorted in ascending head order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible:
//	within one level, smaller vertex values come first.
//
// Visited Flags
//
//	The walk marks the graph's own visited flags while running and
//	clears every flag before returning, on success, hook failure, and
//	cancellation alike. Flags are only ever observed mid-walk, from
//	hooks.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, "start")
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "skip" }),
//	)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - context errors       when the supplied context is canceled.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// An unknown start vertex is not an error: the walk has nowhere to go
// and returns an empty Result.
package bfs
