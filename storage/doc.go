// Package storage provides the four interchangeable graph storage
// backends behind the core capability interfaces:
//
//   - Definition      — canonical, backend-agnostic edge list; the
//     intermediate form every conversion routes through.
//   - AdjacencyList   — out-edge index per node; O(deg) successor walks.
//   - AdjacencyDual   — in+out indexes; O(deg) walks in both directions.
//   - AdjacencyMatrix — dense n×n presence map with O(1) ordered-pair
//     lookup; at most one edge per ordered pair is representable.
//
// Backends differ only in query cost, never in answer:
//
//	query            Definition  AdjacencyList  AdjacencyDual  AdjacencyMatrix
//	Successors       O(E)        O(deg)         O(deg)         O(n)
//	Predecessors     O(E)        O(E)           O(deg)         O(n)
//	EdgesBetween     O(E)        O(E)           O(deg)         O(1)
//
// Conversion is lossless and always routes through Definition: copy every
// node (key + payload) in interning order, then every edge (endpoints +
// meta + weight) in insertion order. O(V+E) time and space. Round-trips
// preserve node order, keys, payloads, and edge insertion order — though
// not necessarily the internal adjacency-index order of a backend.
//
// The single caveat is AdjacencyMatrix: inserting a second edge for the
// same ordered pair silently overwrites the cell (last write wins), so a
// multigraph does not survive a trip through matrix storage. This is
// documented behavior, not a defect to route around here.
//
// Storage enforces no structural policy: self-loops and parallel edges
// are accepted by every backend. Simple/Multi/Pseudo constraints live in
// package graph, the sole invariant-enforcement point.
package storage
