// Package core provides a generic in-memory adjacency-list graph engine
// with ordered edge lists, weight-merging insertion, and a vertex
// contraction primitive suitable for randomized min-cut pipelines.
//
// What:
//
//   - Graph[V] keeps one record per vertex: the vertex value, a visited
//     flag owned by the traversal layer, and an edge list sorted in
//     ascending head order.
//   - Vertex values map to dense integer slots; a slot never changes for
//     the lifetime of the graph, so positions stay valid across growth.
//   - Connect merges weight into an existing edge instead of duplicating
//     it; Disconnect reports the removed weight.
//   - Collapse(src, dst) rehomes every edge of src onto dst and leaves
//     src isolated, the contraction step behind Karger-style min-cut.
//   - Undirected graphs (the default) mirror every edge with equal
//     weight; the engine verifies the mirror invariants on read and
//     surfaces violations as errors rather than repairing them.
//
// Why:
//
//   - Deterministic iteration: edge lists are sorted, so traversals and
//     dumps replay identically run after run.
//   - Contraction-friendly: Collapse plus Clone gives randomized
//     min-cut trials a cheap, isolated working copy.
//   - Small surface: one graph type with a direction flag, no interface
//     hierarchy to thread through call sites.
//
// Concurrency:
//
//   - A Graph is not safe for concurrent use. Callers that share one
//     across goroutines serialize access with their own lock; the
//     engine itself never blocks.
//
// Complexity (d = out-degree of the touched vertex):
//
//   - Connect / Disconnect / IsConnected / EdgeWeight: O(log d + d)
//   - Collapse: O(deg(src) · (log d + d))
//   - CountEdge / ConnectedVertices / ResetVisited: O(V + E)
//   - Clone: O(V + E)
//
// Errors:
//
//   - ErrLoopNotAllowed: self-loop requested via Connect or Collapse.
//   - ErrBadWeight: edge weight below one.
//   - ErrPartialConnectivity: undirected edge present in one direction only.
//   - ErrWeightAsymmetry: mirror edges carry different weights.
//   - ErrOddEdgeSum: undirected weight total is odd, so halving would lie.
package core
