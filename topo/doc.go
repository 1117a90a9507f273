// Package topo builds core.Graph instances from declarative YAML
// documents.
//
// What:
//
//   - Document describes a topology: a direction flag, optional
//     isolated vertices, and an ordered edge list.
//   - Load / LoadFile decode a document and replay it through the
//     engine, so every edge passes the same validation as handwritten
//     Connect calls.
//   - Omitted weights default to 1, omitted distances to
//     core.DefaultDistance; repeated edges accumulate weight exactly
//     like repeated connects.
//
// Why:
//
//   - Keeps test fixtures and CLI inputs out of Go source.
//   - Documents are replayable: the same file always yields the same
//     graph, including slot order.
//
// Errors:
//
//   - ErrDecode            malformed YAML
//   - ErrEmptyVertex       empty name in the vertices list
//   - ErrMissingEndpoint   edge with an empty tail or head
//   - core sentinel errors (self-loop, bad weight) wrapped with the
//     offending edge position
//
// Documents describe inputs only; the engine has no save path.
package topo
