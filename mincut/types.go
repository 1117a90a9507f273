// Package mincut provides tunable options and error definitions for
// randomized minimum-cut estimation.
package mincut

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for min-cut execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mincut: graph is nil")

	// ErrDirectedGraph is returned for directed graphs; contraction is
	// defined for undirected graphs only.
	ErrDirectedGraph = errors.New("mincut: directed graphs not supported")

	// ErrTooFewVertices is returned when fewer than two vertices carry
	// edges; there is nothing to cut.
	ErrTooFewVertices = errors.New("mincut: fewer than two connected vertices")

	// ErrDisconnected is returned when the edge-bearing vertices do not
	// form one component; the minimum cut would trivially be zero.
	ErrDisconnected = errors.New("mincut: graph is disconnected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mincut: invalid option supplied")
)

// Option configures MinCut behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize MinCut execution.
type Options struct {
	// Ctx allows cancellation and deadlines across trials.
	Ctx context.Context

	// Trials is the number of independent contraction trials. Zero
	// selects the classical n(n-1)/2 · ⌈ln n⌉ schedule for n
	// edge-bearing vertices.
	Trials int

	// Seed feeds the deterministic RNG. Zero selects the fixed default
	// seed, so the zero value is still reproducible.
	Seed int64

	// Parallelism bounds how many trials run at once. Each trial works
	// on its own clone with its own derived RNG stream, so the result
	// does not depend on this knob.
	Parallelism int

	// OnTrial observes each finished trial and its cut weight. With
	// Parallelism > 1 it is called concurrently from trial workers.
	OnTrial func(trial int, cut int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background
// context, automatic trial schedule, fixed default seed, sequential
// trials, no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Parallelism: 1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTrials fixes the number of contraction trials (n > 0).
func WithTrials(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Trials must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Trials = n
	}
}

// WithSeed fixes the RNG seed. Zero keeps the default deterministic
// stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithParallelism bounds concurrent trials (k > 0).
func WithParallelism(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: Parallelism must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.Parallelism = k
	}
}

// WithOnTrial registers a per-trial observer.
func WithOnTrial(fn func(trial int, cut int64)) Option {
	return func(o *Options) { o.OnTrial = fn }
}

// Result holds the outcome of a MinCut run.
type Result struct {
	// Weight is the smallest cut weight observed across all trials.
	Weight int64

	// Trials is the number of trials that ran.
	Trials int
}
