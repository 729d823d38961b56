// Package kruskal implements Kruskal's minimum-spanning-forest
// computation over any weighted graph satisfying core.WeightedGraph.
//
// Edges are processed in ascending weight order (stable, so equal
// weights keep their insertion order) against a disjoint-set structure
// with path compression and union by rank. An edge joins the forest iff
// its endpoints lie in different components.
//
// Undirected storage carries each logical edge as two mirrored records
// with equal weight; no explicit filtering is needed because the second
// record always lands in an already-merged component and is rejected by
// the same test that rejects cycles. Self-loops fall out the same way.
//
// A disconnected graph is not an error: the result is the minimum
// spanning forest, one tree per component holding at least one node.
//
// Complexity: O(E log E) for the sort, near-O(E) for the union-find
// passes. Memory: O(V+E).
package kruskal

import (
	"sort"

	"github.com/dkravets/graphtk/core"
)

// Edge is one accepted forest edge, reported by original key.
type Edge[K comparable, W core.Weight] struct {
	From   K
	To     K
	Weight W
}

// Result holds the accepted edges in acceptance order and their summed
// weight. Total starts from the weight type's additive identity, so an
// empty forest reports zero.
type Result[K comparable, W core.Weight] struct {
	Edges []Edge[K, W]
	Total W
}

// Kruskal computes the minimum spanning forest of g. Records carrying no
// weight are skipped; everything else participates.
func Kruskal[K comparable, D, M any, W core.Weight](g core.WeightedGraph[K, D, M, W]) *Result[K, W] {
	// 1) Collect every weighted record.
	type candidate struct {
		from, to core.NodeID
		weight   W
	}
	var edges []candidate
	for e := range g.EdgeIDs() {
		w, ok := g.WeightOf(e)
		if !ok {
			continue
		}
		from, to := g.Endpoints(e)
		edges = append(edges, candidate{from: from, to: to, weight: w})
	}

	// 2) Ascending stable sort keeps insertion order among equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].weight < edges[j].weight
	})

	// 3) Disjoint-set over the dense node ids.
	n := g.Order()
	parent := make([]core.NodeID, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = core.NodeID(v)
	}

	find := func(u core.NodeID) core.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(u, v core.NodeID) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 4) Accept each edge that bridges two components.
	res := &Result[K, W]{}
	for _, e := range edges {
		if find(e.from) == find(e.to) {
			continue
		}
		union(e.from, e.to)
		res.Edges = append(res.Edges, Edge[K, W]{
			From:   g.NodeKey(e.from),
			To:     g.NodeKey(e.to),
			Weight: e.weight,
		})
		res.Total += e.weight
	}

	return res
}
