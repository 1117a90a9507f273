// Package core: central Graph and Edge types, configuration options,
// sentinel errors, and the NewGraph constructor.
//
// Graph is generic over any ordered vertex value (cmp.Ordered), so the
// same engine serves string-, integer-, or float-keyed graphs. Options
// are applied once at construction; the direction mode never changes
// for the lifetime of a graph.

package core

import (
	"cmp"
	"errors"
)

// DefaultDistance is assigned to an edge when no WithDistance option
// is supplied to Connect.
const DefaultDistance = 1.0

// Sentinel errors for core graph operations.
var (
	// ErrLoopNotAllowed indicates a self-loop was requested; the engine
	// never stores edges from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates an edge weight below one.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrPartialConnectivity indicates an undirected edge stored in one
	// direction only; the mirror entry is missing.
	ErrPartialConnectivity = errors.New("core: partial connectivity")

	// ErrWeightAsymmetry indicates mirror edges of an undirected graph
	// carry different weights.
	ErrWeightAsymmetry = errors.New("core: asymmetric edge weights")

	// ErrOddEdgeSum indicates the undirected weight total is odd, so the
	// halved edge count would be fractional.
	ErrOddEdgeSum = errors.New("core: odd undirected edge sum")
)

// Edge is one directed arc as reported by query methods. Undirected
// graphs report each logical edge twice, once per endpoint.
type Edge[V cmp.Ordered] struct {
	// Tail is the vertex the edge leaves.
	Tail V

	// Head is the vertex the edge enters.
	Head V

	// Weight is the accumulated cost of the edge (>= 1).
	Weight int64

	// Distance is an auxiliary length kept alongside the weight.
	// It is set on first insertion and never merged.
	Distance float64
}

// graphConfig collects construction-time settings.
type graphConfig struct {
	directed bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

// WithDirected sets the orientation mode (true = directed,
// false = undirected). Graphs are undirected by default.
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) { cfg.directed = directed }
}

// edgeConfig collects per-edge settings for Connect.
type edgeConfig struct {
	distance float64
}

// EdgeOption configures an individual edge when connected.
type EdgeOption func(*edgeConfig)

// WithDistance sets the auxiliary distance stored with a new edge.
// It has no effect when the edge already exists.
func WithDistance(distance float64) EdgeOption {
	return func(cfg *edgeConfig) { cfg.distance = distance }
}

// vertexRecord is the per-vertex storage cell. Records live in a dense
// slice indexed by slot; a record is never removed once created.
type vertexRecord[V cmp.Ordered] struct {
	value   V
	visited bool
	list    edgeList[V]
}

// Graph is the in-memory adjacency-list graph engine.
//
// Vertices are created lazily by Connect and Collapse. Each vertex owns
// an edge list sorted in ascending head order; undirected graphs keep a
// mirror entry with equal weight on the other endpoint.
//
// A Graph is not safe for concurrent use; callers that share one across
// goroutines serialize access themselves.
type Graph[V cmp.Ordered] struct {
	// directed fixes the orientation mode for the graph's lifetime.
	directed bool

	// index maps vertex values to dense slots in verts.
	index vertexIndex[V]

	// verts holds one record per known vertex, in slot order.
	verts []vertexRecord[V]
}

// NewGraph creates an empty Graph with the given options.
// By default, the Graph is undirected.
// Complexity: O(1)
func NewGraph[V cmp.Ordered](opts ...GraphOption) *Graph[V] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		directed: cfg.directed,
		index:    newVertexIndex[V](),
	}
}

// Directed reports whether the graph was built in directed mode.
// Complexity: O(1)
func (g *Graph[V]) Directed() bool { return g.directed }
