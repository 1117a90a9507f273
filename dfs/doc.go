// Package dfs implements depth-first traversal on a core.Graph,
// reporting finishing order, discovery depths, and parent links.
//
// What:
//
//   - DFS explores as far as possible along each branch before
//     backtracking, using an explicit frame stack instead of recursion.
//   - Order holds the finishing (retreat) sequence: a vertex appears
//     only after all of its descendants, so the last entry of a
//     single-tree walk is the start vertex itself.
//   - Hooks observe both ends of a vertex's lifetime: OnVisit at
//     discovery, OnRetreat at finish.
//   - WithFullTraversal extends the walk into a forest covering every
//     component, unreached roots seeded in first-seen order.
//
// Why:
//
//   - Finishing order reversed is a topological order on DAGs.
//   - Retreat sequence identifies sinks and dead ends in flow analyses.
//   - The explicit stack keeps million-vertex chains safe from
//     goroutine stack overflow.
//
// Determinism:
//
//	Core edge lists are sorted in ascending head order and each frame's
//	cursor walks that order, so traversals replay identically.
//
// Visited Flags:
//
//	The walk marks the graph's own visited flags while running and
//	clears every flag before returning, on success, hook failure, and
//	cancellation alike, the same policy as package bfs.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrOptionViolation   invalid option (e.g. negative MaxDepth)
//   - context errors       when the supplied context is canceled
//   - hook errors          wrapped, from OnVisit or OnRetreat; the
//     finishing order collected so far is discarded
//
// An unknown start vertex is not an error: single-tree walks return an
// empty Result, forest walks simply skip the missing root.
package dfs
