package dijkstra

import (
	"github.com/dkravets/graphtk/core"
)

// Dijkstra computes lightest-path distances from the node interned under
// start to every reachable node of g. Edge weights must be non-negative;
// records carrying no weight are not traversable and are skipped.
//
// Selection is a linear scan over the unvisited set rather than a heap,
// so a full run costs O(V²+E). For the moderate orders this package
// targets the scan stays competitive and keeps the loop allocation-free.
//
// Relaxation uses the minimum weight among parallel records between a
// pair, and only a strictly smaller tentative distance overwrites an
// existing one, so on ties the earlier predecessor survives.
//
// Returns ErrStartNotFound when start is not interned in g.
func Dijkstra[K comparable, D, M any, W core.Weight](g core.WeightedGraph[K, D, M, W], start K) (*Result[K, W], error) {
	s, ok := g.NodeID(start)
	if !ok {
		return nil, ErrStartNotFound
	}

	// 1) Dense per-node state. Reached doubles as the "distance is known"
	//    flag, so Dist needs no infinity sentinel.
	n := g.Order()
	res := &Result[K, W]{
		Start:   s,
		Dist:    make([]W, n),
		Reached: make([]bool, n),
		Prev:    make([]core.NodeID, n),
		Keys:    make([]K, n),
	}
	for v := 0; v < n; v++ {
		res.Prev[v] = core.NoNode
		res.Keys[v] = g.NodeKey(core.NodeID(v))
	}
	res.Reached[s] = true

	visited := make([]bool, n)

	for {
		// 2) Select the unvisited node with the smallest known distance.
		//    Unknown compares greater than any known value; among equals
		//    the first in scan order wins.
		u := core.NoNode
		for v := 0; v < n; v++ {
			if visited[v] || !res.Reached[v] {
				continue
			}
			if u == core.NoNode || res.Dist[v] < res.Dist[u] {
				u = core.NodeID(v)
			}
		}
		if u == core.NoNode {
			break
		}
		visited[u] = true

		// 3) Relax each successor through the lightest record between
		//    the pair.
		for t := range g.Successors(u) {
			if visited[t] {
				continue
			}
			w, ok := lightestBetween(g, u, t)
			if !ok {
				continue
			}
			cand := res.Dist[u] + w
			if !res.Reached[t] || cand < res.Dist[t] {
				res.Dist[t] = cand
				res.Reached[t] = true
				res.Prev[t] = u
			}
		}
	}

	return res, nil
}

// lightestBetween returns the minimum weight among the weighted records
// from→to, ok == false when none is weighted.
func lightestBetween[K comparable, D, M any, W core.Weight](g core.WeightedGraph[K, D, M, W], from, to core.NodeID) (W, bool) {
	var best W
	found := false
	for e := range g.EdgesBetween(from, to) {
		w, ok := g.WeightOf(e)
		if !ok {
			continue
		}
		if !found || w < best {
			best = w
			found = true
		}
	}

	return best, found
}
