// Package dijkstra implements single-source lightest paths over any
// weighted graph satisfying core.WeightedGraph, for non-negative weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one start node to all
//     reachable nodes, returning dense distance/predecessor slices plus
//     the interned keys for key-level reporting.
//   - Selection uses a linear scan over the unvisited set instead of a
//     priority queue: O(V²+E) total, with zero allocation inside the
//     loop. For the moderate graph orders this module targets, the scan
//     is simpler and fast enough; swap in a heap only if V grows large.
//   - Any storage backend works: the engine touches the graph only
//     through Successors, EdgesBetween and WeightOf.
//
// Semantics worth knowing:
//
//   - Parallel records between a pair relax through their minimum weight.
//   - A relaxation overwrites only on strict improvement, so ties keep
//     the earlier predecessor.
//   - Unweighted records are not traversable and are skipped.
//   - Unreachable nodes keep Reached[v] == false and Prev[v] == NoNode;
//     absence of a path is data, not an error.
//
// Error handling (sentinel errors):
//
//   - ErrStartNotFound:  the start key is not interned in the graph.
//   - ErrTargetNotFound: a PathTo target key is not interned.
//   - ErrNoPath:         PathTo's target is unreachable from the start.
//
// API reference:
//
//	func Dijkstra[K comparable, D, M any, W core.Weight](
//	    g core.WeightedGraph[K, D, M, W],
//	    start K,
//	) (*Result[K, W], error)
//
// Result.PathTo(target) reconstructs one lightest path by walking the
// predecessor links from target back to the start.
//
// Thread safety: a run borrows g read-only; do not mutate g concurrently.
package dijkstra
