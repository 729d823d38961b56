package storage

import (
	"iter"

	"github.com/dkravets/graphtk/core"
)

// AdjacencyMatrix is the dense backend: a flat row-major n×n presence
// map of edge ids over the shared record slice. cells[i*n+j] holds the
// edge id from node i to node j, or core.NoEdge.
//
// At most one edge id is representable per ordered pair: inserting a
// parallel edge for a pair that already holds one overwrites the cell
// (last write wins). The shadowed record remains in the edge slice and
// keeps its id, but is no longer reachable through cell queries.
type AdjacencyMatrix[K comparable, D, M any, W core.Weight] struct {
	n     int
	nodes *core.Interner[K, D]
	edges []EdgeRecord[M, W]
	cells []core.EdgeID
}

// NewAdjacencyMatrix returns an empty matrix backend sized for n nodes.
// The matrix regrows automatically when nodes beyond n are interned.
func NewAdjacencyMatrix[K comparable, D, M any, W core.Weight](n int) *AdjacencyMatrix[K, D, M, W] {
	return &AdjacencyMatrix[K, D, M, W]{
		n:     n,
		nodes: core.NewInterner[K, D](),
		cells: newCells(n),
	}
}

// NewAdjacencyMatrixFromDefinition copies def into a fresh matrix sized
// to its order. Parallel edges collapse per ordered pair, last one in
// insertion order winning. Complexity: O(V²+E).
func NewAdjacencyMatrixFromDefinition[K comparable, D, M any, W core.Weight](def *Definition[K, D, M, W]) *AdjacencyMatrix[K, D, M, W] {
	n := def.nodes.Len()
	am := &AdjacencyMatrix[K, D, M, W]{
		n:     n,
		nodes: def.nodes.Clone(),
		edges: make([]EdgeRecord[M, W], len(def.edges)),
		cells: newCells(n),
	}
	copy(am.edges, def.edges)
	for i := range am.edges {
		am.cells[int(am.edges[i].From)*n+int(am.edges[i].To)] = core.EdgeID(i)
	}

	return am
}

func newCells(n int) []core.EdgeID {
	cells := make([]core.EdgeID, n*n)
	for i := range cells {
		cells[i] = core.NoEdge
	}

	return cells
}

func (am *AdjacencyMatrix[K, D, M, W]) idx(r, c core.NodeID) int { return int(r)*am.n + int(c) }

// AddNode interns key. When the node count outgrows the current matrix
// order, the cell buffer is re-laid-out for the new row stride.
func (am *AdjacencyMatrix[K, D, M, W]) AddNode(key K, data D) core.NodeID {
	id := am.nodes.Intern(key, data)
	if am.nodes.Len() > am.n {
		am.regrow(am.nodes.Len())
	}

	return id
}

// regrow rebuilds the flat buffer with row stride newN, preserving the
// cells[i*n+j] invariant for every existing pair.
func (am *AdjacencyMatrix[K, D, M, W]) regrow(newN int) {
	cells := newCells(newN)
	for r := 0; r < am.n; r++ {
		copy(cells[r*newN:r*newN+am.n], am.cells[r*am.n:(r+1)*am.n])
	}
	am.cells = cells
	am.n = newN
}

// AddEdge appends an unweighted record from→to and writes its cell.
func (am *AdjacencyMatrix[K, D, M, W]) AddEdge(from, to core.NodeID, meta M) core.EdgeID {
	return am.append(EdgeRecord[M, W]{From: from, To: to, Meta: meta})
}

// AddWeightedEdge appends a weighted record from→to and writes its cell.
func (am *AdjacencyMatrix[K, D, M, W]) AddWeightedEdge(from, to core.NodeID, meta M, weight W) core.EdgeID {
	return am.append(EdgeRecord[M, W]{From: from, To: to, Meta: meta, Weight: weight, Weighted: true})
}

func (am *AdjacencyMatrix[K, D, M, W]) append(rec EdgeRecord[M, W]) core.EdgeID {
	id := core.EdgeID(len(am.edges))
	am.edges = append(am.edges, rec)
	am.cells[am.idx(rec.From, rec.To)] = id

	return id
}

// ClearEdges drops every record and blanks the matrix; nodes survive.
func (am *AdjacencyMatrix[K, D, M, W]) ClearEdges() {
	am.edges = am.edges[:0]
	for i := range am.cells {
		am.cells[i] = core.NoEdge
	}
}

// Order reports the matrix order (node count).
func (am *AdjacencyMatrix[K, D, M, W]) Order() int { return am.nodes.Len() }

// Size reports the edge-record count, shadowed records included.
func (am *AdjacencyMatrix[K, D, M, W]) Size() int { return len(am.edges) }

// NodeID resolves key to its dense id.
func (am *AdjacencyMatrix[K, D, M, W]) NodeID(key K) (core.NodeID, bool) { return am.nodes.ID(key) }

// NodeIDs yields 0..Order() in order.
func (am *AdjacencyMatrix[K, D, M, W]) NodeIDs() iter.Seq[core.NodeID] {
	return nodeRange(am.nodes.Len())
}

// NodeKey returns the key interned under id.
func (am *AdjacencyMatrix[K, D, M, W]) NodeKey(id core.NodeID) K { return am.nodes.Record(id).Key }

// NodeData returns the payload interned under id.
func (am *AdjacencyMatrix[K, D, M, W]) NodeData(id core.NodeID) D { return am.nodes.Record(id).Data }

// EdgeIDs yields 0..Size() in insertion order.
func (am *AdjacencyMatrix[K, D, M, W]) EdgeIDs() iter.Seq[core.EdgeID] {
	return edgeRange(len(am.edges))
}

// Endpoints returns the (from, to) pair of edge e.
func (am *AdjacencyMatrix[K, D, M, W]) Endpoints(e core.EdgeID) (core.NodeID, core.NodeID) {
	r := am.edges[e]

	return r.From, r.To
}

// EdgeMeta returns the opaque payload of edge e.
func (am *AdjacencyMatrix[K, D, M, W]) EdgeMeta(e core.EdgeID) M { return am.edges[e].Meta }

// EdgeBetween is the O(1) ordered-pair lookup this backend exists for:
// the cell-resident edge id from→to, or (NoEdge, false).
func (am *AdjacencyMatrix[K, D, M, W]) EdgeBetween(from, to core.NodeID) (core.EdgeID, bool) {
	if int(from) >= am.n || int(to) >= am.n {
		return core.NoEdge, false
	}
	eid := am.cells[am.idx(from, to)]

	return eid, eid != core.NoEdge
}

// Row returns the cells of row u: edge ids keyed by target node index.
// The returned slice aliases the matrix; callers must not modify it.
func (am *AdjacencyMatrix[K, D, M, W]) Row(u core.NodeID) []core.EdgeID {
	return am.cells[int(u)*am.n : (int(u)+1)*am.n]
}

// EdgesBetween yields the single cell-resident edge id from→to, if any.
// Complexity: O(1).
func (am *AdjacencyMatrix[K, D, M, W]) EdgesBetween(from, to core.NodeID) iter.Seq[core.EdgeID] {
	return func(yield func(core.EdgeID) bool) {
		if eid, ok := am.EdgeBetween(from, to); ok {
			yield(eid)
		}
	}
}

// Neighborhood yields each distinct node adjacent to v in either
// direction, row scan before column scan. Complexity: O(n).
func (am *AdjacencyMatrix[K, D, M, W]) Neighborhood(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		if int(v) >= am.n {
			return
		}
		seen := make(map[core.NodeID]struct{})
		for u := 0; u < am.n; u++ {
			if eid := am.cells[am.idx(v, core.NodeID(u))]; eid != core.NoEdge {
				t := am.edges[eid].To
				if _, dup := seen[t]; !dup {
					seen[t] = struct{}{}
					if !yield(t) {
						return
					}
				}
			}
		}
		for u := 0; u < am.n; u++ {
			if eid := am.cells[am.idx(core.NodeID(u), v)]; eid != core.NoEdge {
				f := am.edges[eid].From
				if _, dup := seen[f]; !dup {
					seen[f] = struct{}{}
					if !yield(f) {
						return
					}
				}
			}
		}
	}
}

// Successors yields targets along row v. Complexity: O(n).
func (am *AdjacencyMatrix[K, D, M, W]) Successors(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		if int(v) >= am.n {
			return
		}
		for u := 0; u < am.n; u++ {
			if eid := am.cells[am.idx(v, core.NodeID(u))]; eid != core.NoEdge {
				if !yield(am.edges[eid].To) {
					return
				}
			}
		}
	}
}

// Predecessors yields sources along column v. Complexity: O(n).
func (am *AdjacencyMatrix[K, D, M, W]) Predecessors(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		if int(v) >= am.n {
			return
		}
		for u := 0; u < am.n; u++ {
			if eid := am.cells[am.idx(core.NodeID(u), v)]; eid != core.NoEdge {
				if !yield(am.edges[eid].From) {
					return
				}
			}
		}
	}
}

// WeightOf returns the weight of edge e, ok == false when unweighted.
func (am *AdjacencyMatrix[K, D, M, W]) WeightOf(e core.EdgeID) (W, bool) {
	r := am.edges[e]

	return r.Weight, r.Weighted
}

// ToDefinition exports the canonical form, shadowed records included, so
// Definition→Matrix→Definition round-trips every record even though the
// matrix itself can no longer address the shadowed ones.
// Complexity: O(V+E).
func (am *AdjacencyMatrix[K, D, M, W]) ToDefinition() *Definition[K, D, M, W] {
	def := &Definition[K, D, M, W]{
		nodes: am.nodes.Clone(),
		edges: make([]EdgeRecord[M, W], len(am.edges)),
	}
	copy(def.edges, am.edges)

	return def
}
