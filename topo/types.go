// Package topo: document model and error definitions for declarative
// graph topologies.
package topo

import "errors"

// Sentinel errors for topology loading.
var (
	// ErrDecode indicates malformed YAML input.
	ErrDecode = errors.New("topo: cannot decode document")

	// ErrMissingEndpoint indicates an edge with an empty tail or head.
	ErrMissingEndpoint = errors.New("topo: edge endpoint missing")

	// ErrEmptyVertex indicates an empty name in the vertices list.
	ErrEmptyVertex = errors.New("topo: empty vertex name")
)

// Document is the YAML description of a graph topology.
//
//	directed: false
//	vertices: [spare]             # optional isolated vertices
//	edges:
//	  - {tail: a, head: b}                          # weight 1, distance 1
//	  - {tail: a, head: c, weight: 3, distance: 2.5}
type Document struct {
	// Directed selects the engine's orientation mode.
	Directed bool `yaml:"directed"`

	// Vertices lists vertices that must exist even without edges.
	Vertices []string `yaml:"vertices"`

	// Edges lists the connections to make, in order.
	Edges []Edge `yaml:"edges"`
}

// Edge is one connection inside a Document.
type Edge struct {
	Tail string `yaml:"tail"`
	Head string `yaml:"head"`

	// Weight of the edge; zero or omitted means 1.
	Weight int64 `yaml:"weight"`

	// Distance of the edge; zero or omitted means core.DefaultDistance.
	Distance float64 `yaml:"distance"`
}
