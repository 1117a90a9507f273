// Package topo loads declarative YAML topology documents into
// core.Graph instances, the hand-authored input format of the CLI.
package topo

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grafold/core"
)

// Load decodes one YAML document from r and builds the described
// graph. Decode failures wrap ErrDecode; structural failures wrap
// ErrMissingEndpoint or ErrEmptyVertex with the offending position;
// engine rejections (self-loop, bad weight) propagate wrapped with
// the same position context.
func Load(r io.Reader) (*core.Graph[string], error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return doc.Build()
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*core.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topo: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Build constructs the graph described by the document. Explicit
// vertices come first in slot order, then edge endpoints as Connect
// discovers them.
func (d *Document) Build() (*core.Graph[string], error) {
	g := core.NewGraph[string](core.WithDirected(d.Directed))

	for i, name := range d.Vertices {
		if name == "" {
			return nil, fmt.Errorf("%w: vertices[%d]", ErrEmptyVertex, i)
		}
		g.AddVertex(name)
	}

	for i, e := range d.Edges {
		if e.Tail == "" || e.Head == "" {
			return nil, fmt.Errorf("%w: edges[%d]", ErrMissingEndpoint, i)
		}

		weight := e.Weight
		if weight == 0 {
			weight = 1
		}
		opts := make([]core.EdgeOption, 0, 1)
		if e.Distance != 0 {
			opts = append(opts, core.WithDistance(e.Distance))
		}

		if _, err := g.Connect(e.Tail, e.Head, weight, opts...); err != nil {
			return nil, fmt.Errorf("topo: edges[%d] %s-%s: %w", i, e.Tail, e.Head, err)
		}
	}

	return g, nil
}
