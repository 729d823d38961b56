// Package flow implements maximum flow on integer-capacity networks via
// the Ford–Fulkerson method with breadth-first augmenting-path search
// (the Edmonds–Karp discipline).
//
// A Network pairs a directed arc structure with a per-arc capacity array
// and a signed flow assignment keyed by ordered node pair, so
// Flow[{u,v}] == -Flow[{v,u}] holds throughout. Networks are built from
// (from, to, flow, capacity) tuples via FromArcs; a nonzero initial flow
// is legal and the computation continues from it.
//
// Algorithm shape:
//
//   - Each iteration rebuilds the residual network from scratch: a
//     forward arc for every remaining capacity, plus a cancellation arc
//     carrying the current flow where no reverse capacity arc exists.
//   - BFS finds an augmenting path minimal in arc count, the bottleneck
//     is pushed through, and the iteration is recorded as a Step.
//   - The loop ends on the first residual with no augmenting path; that
//     terminal residual is kept as the last Step with a nil Path.
//
// The retained trace makes every intermediate residual and assignment
// inspectable after the fact, at the cost of an O(E) snapshot per
// iteration. With integer capacities the Edmonds–Karp bound caps the
// loop at O(VE) augmentations, O(VE²) total work.
//
// Error handling (sentinel errors and typed values):
//
//   - ErrSourceNotFound / ErrSinkNotFound: designated key or id absent.
//   - ArcError: negative capacity, or initial flow above capacity.
//   - Absence of an augmenting path is normal termination, not an error.
//
// Thread safety: a run borrows the network read-only; do not mutate it
// concurrently.
package flow
