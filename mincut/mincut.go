// Package mincut estimates the minimum cut of an undirected graph by
// random contraction: pick an edge with probability proportional to
// its weight, collapse its endpoints, repeat until two super-vertices
// remain; the weight still crossing between them is a candidate cut.
// Independent trials drive the failure probability down, and the best
// candidate wins.
package mincut

import (
	"cmp"
	"math"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/grafold/bfs"
	"github.com/katalvlaran/grafold/core"
)

// MinCut runs randomized contraction trials on g and returns the
// smallest cut observed. The graph itself is never mutated: every
// trial contracts its own clone.
//
// Returns ErrGraphNil, ErrDirectedGraph, ErrTooFewVertices when fewer
// than two vertices carry edges, ErrDisconnected when the edge-bearing
// vertices are not mutually reachable, ErrOptionViolation for bad
// options, the context error on cancellation, and any corruption error
// surfaced by contraction.
//
// Complexity: O(Trials · V · (V + E)) time, O(V + E) memory per
// concurrent trial.
func MinCut[V cmp.Ordered](g *core.Graph[V], opts ...Option) (*Result, error) {
	// 1) Validate the graph and assemble options.
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Only edge-bearing vertices matter; isolated ones cannot move a
	//    cut. Fewer than two means there is nothing to separate.
	working := g.ConnectedVertices()
	n := len(working)
	if n < 2 {
		return nil, ErrTooFewVertices
	}

	// 3) Contraction assumes one component; otherwise the answer is a
	//    trivial zero. One traversal settles it.
	reach, err := bfs.BFS(g, working[0], bfs.WithContext[V](o.Ctx))
	if err != nil {
		return nil, err
	}
	for _, v := range working {
		if _, ok := reach.Depth[v]; !ok {
			return nil, ErrDisconnected
		}
	}

	// 4) Default trial schedule: n(n-1)/2 · ⌈ln n⌉ bounds the failure
	//    probability by 1/n (classical analysis).
	trials := o.Trials
	if trials == 0 {
		trials = n * (n - 1) / 2 * int(math.Ceil(math.Log(float64(n))))
		if trials < 1 {
			trials = 1
		}
	}

	// 5) Fan the trials out. Each gets a clone and a derived RNG
	//    stream, so the minimum is reproducible for a given seed no
	//    matter the parallelism.
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Parallelism)

	var mu sync.Mutex
	best := int64(math.MaxInt64)

	for trial := 0; trial < trials; trial++ {
		trial := trial
		rng := trialRNG(o.Seed, trial)
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			cut, err := runTrial(g, rng)
			if err != nil {
				return err
			}

			mu.Lock()
			if cut < best {
				best = cut
			}
			mu.Unlock()

			if o.OnTrial != nil {
				o.OnTrial(trial, cut)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Result{Weight: best, Trials: trials}, nil
}

// runTrial contracts a private clone down to two connected vertices
// and reports the weight left between them.
func runTrial[V cmp.Ordered](base *core.Graph[V], rng *rand.Rand) (int64, error) {
	clone := base.Clone()
	for len(clone.ConnectedVertices()) > 2 {
		tail, head, ok := pickArc(clone, rng)
		if !ok {
			break
		}
		if err := clone.Collapse(tail, head); err != nil {
			return 0, err
		}
	}

	return clone.CountEdge()
}

// pickArc selects an arc with probability proportional to its weight.
// Every undirected edge appears as two mirror arcs of equal weight, so
// arc-weighted sampling is edge-weighted sampling.
func pickArc[V cmp.Ordered](g *core.Graph[V], rng *rand.Rand) (tail, head V, ok bool) {
	live := g.ConnectedVertices()

	var total int64
	for _, v := range live {
		for _, e := range g.OutEdges(v) {
			total += e.Weight
		}
	}
	if total == 0 {
		return tail, head, false
	}

	target := rng.Int63n(total)
	for _, v := range live {
		for _, e := range g.OutEdges(v) {
			if target < e.Weight {
				return e.Tail, e.Head, true
			}
			target -= e.Weight
		}
	}

	// Unreachable: target is always consumed within total.
	return tail, head, false
}
