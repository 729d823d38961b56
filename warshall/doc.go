// Package warshall implements the Floyd–Warshall family over any graph
// satisfying the core contracts: reflexive-transitive closure,
// all-pairs lightest paths with per-round snapshots, and the distance
// metrics derived from the final matrix (eccentricity, radius,
// diameter, center, periphery).
//
// Closure answers pure reachability as a dense boolean matrix: the
// diagonal is true, direct records are true, then the standard triple
// loop closes transitivity. O(V³) time, O(V²) memory.
//
// LightestPaths tracks, per ordered pair, one lightest path and its
// weight. Cells are seeded from direct records and improved through
// each intermediate node in turn; a candidate replaces a cell only when
// strictly lighter, so ties keep the path found earlier. After every
// round the whole matrix is snapshotted — n+1 snapshots total — to
// support progressive display of how paths improve. That costs O(V²)
// extra memory per round; use Closure when only reachability matters.
//
// Distances reduces the final matrix to per-node eccentricities. A
// node's eccentricity is defined only when every other node is
// reachable from it; radius and diameter carry their own defined flags
// and are undefined when no node has a defined eccentricity. Center and
// Periphery list the keys attaining radius and diameter respectively.
//
// Weights may be negative, but no negative cycle may be reachable; the
// package does not detect them and their presence voids the result.
package warshall
