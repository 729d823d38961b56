// Package core defines the identifier types, the numeric weight contract,
// the node interner, and the capability interfaces shared by every storage
// backend and graph wrapper in graphtk.
//
// The model is deliberately small:
//
//   - NodeID / EdgeID are dense, zero-based handles into backend-local
//     arrays. They are stable for the lifetime of a storage instance and
//     never reused: storage is append-only for nodes and edges, with only
//     a bulk ClearEdges operation.
//   - Weight is a type constraint for edge weights: any ordered numeric
//     type with + and a zero value. Algorithms sum weights with the zero
//     value as additive identity and compare them with <.
//   - Interner owns every NodeRecord and maps user keys to NodeIDs.
//     Interning an existing key returns the existing id without touching
//     its payload, so at most one id ever maps to a given key.
//
// Capability interfaces let each algorithm be written once against any
// backend:
//
//   - GraphBase   — read-only topology queries (order, size, key↔id
//     lookup, endpoints, edges-between, neighbor sequences).
//   - EdgeWeights — optional weight lookup, absent weights reported via
//     the (value, ok) form.
//   - MutableStorage — node/edge insertion plus bulk edge clearing, used
//     by the wrappers and by residual-network reconstruction in flow.
//
// Neighbor and edge queries return iter.Seq sequences: lazy, finite, and
// valid only against the storage state at call time. Collect them with
// slices.Collect when a materialized slice is needed.
//
// Concurrency: none. All state is local to one computation; graphs are
// built, then read. Callers needing parallel reads must not mutate.
package core
