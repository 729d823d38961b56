package warshall

import (
	"github.com/dkravets/graphtk/core"
)

// PathCell is one occupied matrix cell: a concrete lightest path in
// node-id form and its summed weight. Cells are immutable once built;
// improvements allocate fresh cells.
type PathCell[W core.Weight] struct {
	Path   []core.NodeID
	Weight W
}

// Matrix is a dense n×n path matrix; a nil cell means no known path.
type Matrix[W core.Weight] [][]*PathCell[W]

// LightestResult holds the completed all-pairs computation and its
// per-round snapshots.
type LightestResult[K comparable, W core.Weight] struct {
	// Keys[v] is the interned key of node v.
	Keys []K

	// Snapshots[0] is the seed matrix of direct records; Snapshots[k]
	// for k ≥ 1 is the state after routing through intermediate node
	// k-1. Snapshots[n] is the final matrix.
	Snapshots []Matrix[W]
}

// Final returns the fully-relaxed matrix, the last snapshot.
func (r *LightestResult[K, W]) Final() Matrix[W] {
	return r.Snapshots[len(r.Snapshots)-1]
}

// Between returns the final cell for the ordered key pair, nil when no
// path exists or either key is unknown.
func (r *LightestResult[K, W]) Between(from, to K) *PathCell[W] {
	i, j := core.NoNode, core.NoNode
	for v := range r.Keys {
		if r.Keys[v] == from {
			i = core.NodeID(v)
		}
		if r.Keys[v] == to {
			j = core.NodeID(v)
		}
	}
	if i == core.NoNode || j == core.NoNode {
		return nil
	}

	return r.Final()[i][j]
}

// LightestPaths computes one lightest path per ordered pair of g's
// nodes, retaining a snapshot of the whole matrix after every round.
//
// Seeding takes the lightest direct record per pair; each round k then
// considers routing i→j through intermediate k, replacing a cell only
// when the candidate is strictly lighter. Ties keep the earlier path.
//
// Complexity: O(V³) cell updates; each improvement allocates the joined
// path, and each round snapshots O(V²) cell pointers.
func LightestPaths[K comparable, D, M any, W core.Weight](g core.WeightedGraph[K, D, M, W]) *LightestResult[K, W] {
	n := g.Order()
	res := &LightestResult[K, W]{
		Keys:      make([]K, n),
		Snapshots: make([]Matrix[W], 0, n+1),
	}
	for v := 0; v < n; v++ {
		res.Keys[v] = g.NodeKey(core.NodeID(v))
	}

	// Seed from direct records: per ordered pair, the lightest one.
	cur := newMatrix[W](n)
	for e := range g.EdgeIDs() {
		w, ok := g.WeightOf(e)
		if !ok {
			continue
		}
		from, to := g.Endpoints(e)
		if cell := cur[from][to]; cell == nil || w < cell.Weight {
			cur[from][to] = &PathCell[W]{Path: []core.NodeID{from, to}, Weight: w}
		}
	}
	res.Snapshots = append(res.Snapshots, cur)

	for k := 0; k < n; k++ {
		next := cur.clone()
		for i := 0; i < n; i++ {
			head := cur[i][k]
			if head == nil {
				continue
			}
			for j := 0; j < n; j++ {
				tail := cur[k][j]
				if tail == nil {
					continue
				}
				cand := head.Weight + tail.Weight
				if cell := next[i][j]; cell == nil || cand < cell.Weight {
					next[i][j] = &PathCell[W]{Path: joinThrough(head.Path, tail.Path), Weight: cand}
				}
			}
		}
		cur = next
		res.Snapshots = append(res.Snapshots, cur)
	}

	return res
}

func newMatrix[W core.Weight](n int) Matrix[W] {
	m := make(Matrix[W], n)
	for i := range m {
		m[i] = make([]*PathCell[W], n)
	}

	return m
}

// clone copies the cell pointers row by row; cells themselves are
// immutable and shared across snapshots.
func (m Matrix[W]) clone() Matrix[W] {
	out := make(Matrix[W], len(m))
	for i := range m {
		out[i] = make([]*PathCell[W], len(m[i]))
		copy(out[i], m[i])
	}

	return out
}

// joinThrough concatenates head (…→mid) and tail (mid→…) into a fresh
// path, dropping tail's duplicated leading mid.
func joinThrough(head, tail []core.NodeID) []core.NodeID {
	out := make([]core.NodeID, 0, len(head)+len(tail)-1)
	out = append(out, head...)
	out = append(out, tail[1:]...)

	return out
}
