// Package graph provides the Directed and Undirected wrappers that give
// a storage backend its structural semantics.
//
// A wrapper pairs a core.MutableStorage with a Kind selecting the
// insertion constraints:
//
//   - Simple — no self-loops, no parallel edges (directed: no duplicate
//     ordered pair; undirected: no duplicate unordered pair).
//   - Multi  — parallel edges allowed, self-loops forbidden.
//   - Pseudo — both allowed.
//
// Storage itself accepts anything; the wrapper is the sole
// invariant-enforcement point. Checked insertion scans existing edges
// through EdgesBetween, so Simple insertion costs up to O(E) per call —
// fine for construction-time use, not for high-frequency mutation.
//
// An undirected logical edge is exactly two mirrored records (a→b and
// b→a) with identical meta and weight, inserted as one operation.
// Validation runs before either record is appended and storage appends
// cannot fail, so the pair is committed atomically. On an Undirected
// wrapper, Successors, Predecessors and Neighborhood all answer with the
// incident record set.
//
// All read operations delegate to the wrapped storage unchanged; swap
// the backend (see package storage) and the wrapper's answers stay the
// same, only their cost changes.
package graph
