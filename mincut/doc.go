// Package mincut estimates the minimum cut of an undirected graph with
// Karger's random-contraction method on top of core.Graph.
//
// What:
//
//   - MinCut runs independent contraction trials, each on a private
//     Clone of the input: repeatedly pick an edge with probability
//     proportional to its weight and Collapse its endpoints, until two
//     connected super-vertices remain. CountEdge on the contracted
//     clone is that trial's candidate cut; the minimum across trials
//     is the answer.
//   - Result carries the best cut weight and the number of trials run.
//
// Why:
//
//   - Global min-cut without flow machinery: no source/sink choice,
//     no residual networks.
//   - Contraction exercises the engine's merge semantics end to end:
//     rehomed edges accumulate weight exactly like repeated connects.
//
// Determinism:
//
//	Each trial derives its own RNG stream from the seed and the trial
//	index (SplitMix64 mixing), and the minimum is order-independent,
//	so a fixed seed reproduces the same Result at any parallelism.
//	Seed zero selects a fixed default stream.
//
// Trial schedule:
//
//	By default n(n-1)/2 · ⌈ln n⌉ trials run for n edge-bearing
//	vertices, bounding the miss probability by roughly 1/n. WithTrials
//	trades confidence for speed.
//
// Complexity:
//
//   - Time:   O(Trials · V · (V + E))
//   - Memory: O(V + E) per concurrent trial
//
// Errors:
//
//   - ErrGraphNil         graph pointer is nil
//   - ErrDirectedGraph    contraction is undirected-only
//   - ErrTooFewVertices   fewer than two vertices carry edges
//   - ErrDisconnected     edge-bearing vertices span multiple components
//   - ErrOptionViolation  invalid option (non-positive trials or parallelism)
//   - context errors      when the supplied context is canceled
package mincut
