// Package dfs provides tunable options and error definitions for
// depth-first search over a core.Graph.
package dfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments.
type Option[V cmp.Ordered] func(*Options[V])

// Options holds parameters and callbacks to customize DFS execution.
type Options[V cmp.Ordered] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is the discovery (pre-order) hook. Returning an error
	// aborts the traversal and discards the finishing order.
	OnVisit func(v V) error

	// OnRetreat is the finish (post-order) hook, called when the search
	// retreats from a vertex, just before it is recorded in Order.
	// Returning an error aborts the traversal.
	OnRetreat func(v V) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(neighbor V) bool

	// FullTraversal walks every component: after the start vertex's
	// tree finishes, unreached vertices seed new trees in first-seen
	// order. The start argument still goes first.
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background
// context, nil hooks, no depth limit, no filtering, single tree.
func DefaultOptions[V cmp.Ordered]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V cmp.Ordered](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the discovery hook.
func WithOnVisit[V cmp.Ordered](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnVisit = fn }
}

// WithOnRetreat registers the finish hook.
func WithOnRetreat[V cmp.Ordered](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnRetreat = fn }
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V cmp.Ordered](d int) Option[V] {
	return func(o *Options[V]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[V cmp.Ordered](fn func(neighbor V) bool) Option[V] {
	return func(o *Options[V]) { o.FilterNeighbor = fn }
}

// WithFullTraversal walks the whole forest instead of a single tree.
func WithFullTraversal[V cmp.Ordered]() Option[V] {
	return func(o *Options[V]) { o.FullTraversal = true }
}

// Result holds the outcome of a DFS traversal:
//   - Order: finishing order; a vertex appears once the search has
//     retreated from it, so within one tree every descendant precedes
//     its ancestor.
//   - Depth: map from vertex to its discovery depth.
//   - Parent: map from vertex to its predecessor in the DFS tree;
//     roots have no entry.
//   - Reached: set of vertices the search discovered.
type Result[V cmp.Ordered] struct {
	Order   []V
	Depth   map[V]int
	Parent  map[V]V
	Reached map[V]bool
}
