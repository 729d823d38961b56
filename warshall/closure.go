package warshall

import (
	"github.com/dkravets/graphtk/core"
)

// ClosureResult is the reflexive-transitive closure of a graph as a
// dense boolean matrix over the dense node ids.
type ClosureResult[K comparable] struct {
	// Keys[v] is the interned key of node v.
	Keys []K

	// Reach[i][j] reports whether j is reachable from i over zero or
	// more records.
	Reach [][]bool
}

// Reachable reports reachability by key, ok == false when either key is
// unknown.
func (c *ClosureResult[K]) Reachable(from, to K) (reach, ok bool) {
	i, j := core.NoNode, core.NoNode
	for v := range c.Keys {
		if c.Keys[v] == from {
			i = core.NodeID(v)
		}
		if c.Keys[v] == to {
			j = core.NodeID(v)
		}
	}
	if i == core.NoNode || j == core.NoNode {
		return false, false
	}

	return c.Reach[i][j], true
}

// Closure computes the reflexive-transitive closure of g.
// Complexity: O(V³) time, O(V²) memory.
func Closure[K comparable, D, M any, W core.Weight](g core.GraphBase[K, D, M, W]) *ClosureResult[K] {
	n := g.Order()
	res := &ClosureResult[K]{
		Keys:  make([]K, n),
		Reach: make([][]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Keys[i] = g.NodeKey(core.NodeID(i))
		res.Reach[i] = make([]bool, n)
		res.Reach[i][i] = true
	}

	for e := range g.EdgeIDs() {
		from, to := g.Endpoints(e)
		res.Reach[from][to] = true
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !res.Reach[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if res.Reach[k][j] {
					res.Reach[i][j] = true
				}
			}
		}
	}

	return res
}
