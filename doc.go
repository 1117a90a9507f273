// Package grafold is an in-memory playground for building, walking and
// cutting adjacency-list graphs: directed or undirected, weighted edges,
// randomized min-cut included.
//
// 🚀 What is grafold?
//
//	A compact, generic graph engine that brings together:
//		• Core primitives: lazy vertex creation, weight-accumulating edges,
//		  undirected mirroring with cross-checked invariants
//		• Traversals: BFS (level order) and DFS (finishing order) with
//		  hooks, depth caps and neighbor filters
//		• Contraction: collapse one vertex into another while re-homing
//		  its edges, the substrate for Karger's randomized min cut
//		• Min cut: repeated random contraction with per-trial RNG streams,
//		  deterministic for a given seed at any parallelism
//		• Topology documents: YAML descriptions loaded straight into graphs
//
// ✨ Why choose grafold?
//
//   - Generic over any ordered vertex type – strings, ints, your own keys
//   - Deterministic by construction – sorted adjacency, stable slot order,
//     seeded trial streams
//   - Single-writer discipline – no hidden locks; wrap the graph yourself
//     when goroutines share it
//   - Extensible – OnVisit, OnEnqueue, OnRetreat and OnTrial hooks for
//     custom logic
//
// Everything is organized under five subpackages and one command:
//
//	core/        — generic Graph, edge accumulation, collapse, display
//	bfs/         — breadth-first traversal, level order, shortest hops
//	dfs/         — depth-first traversal, finishing order, forest mode
//	mincut/      — Karger random contraction over cloned graphs
//	topo/        — YAML topology documents and graph construction
//	cmd/grafold/ — show, traverse and mincut from the command line
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square: four vertices, four undirected edges, minimum cut 2.
//
// Dive into the subpackage docs for usage, determinism notes and the
// exact error contracts.
//
//	go get github.com/katalvlaran/grafold
package grafold
