package storage

import (
	"iter"

	"github.com/dkravets/graphtk/core"
)

// AdjacencyDual is the in+out adjacency backend: per-node indexes of both
// outgoing and incoming edge ids, giving O(deg) walks in either
// direction at twice the index cost of AdjacencyList.
type AdjacencyDual[K comparable, D, M any, W core.Weight] struct {
	nodes *core.Interner[K, D]
	edges []EdgeRecord[M, W]
	out   [][]core.EdgeID
	in    [][]core.EdgeID
}

// NewAdjacencyDual returns an empty in+out adjacency backend.
func NewAdjacencyDual[K comparable, D, M any, W core.Weight]() *AdjacencyDual[K, D, M, W] {
	return &AdjacencyDual[K, D, M, W]{nodes: core.NewInterner[K, D]()}
}

// NewAdjacencyDualFromDefinition copies def into a fresh in+out backend:
// nodes in interning order, edges in insertion order.
// Complexity: O(V+E).
func NewAdjacencyDualFromDefinition[K comparable, D, M any, W core.Weight](def *Definition[K, D, M, W]) *AdjacencyDual[K, D, M, W] {
	ad := &AdjacencyDual[K, D, M, W]{
		nodes: def.nodes.Clone(),
		edges: make([]EdgeRecord[M, W], len(def.edges)),
		out:   make([][]core.EdgeID, def.nodes.Len()),
		in:    make([][]core.EdgeID, def.nodes.Len()),
	}
	copy(ad.edges, def.edges)
	for i := range ad.edges {
		eid := core.EdgeID(i)
		ad.out[ad.edges[i].From] = append(ad.out[ad.edges[i].From], eid)
		ad.in[ad.edges[i].To] = append(ad.in[ad.edges[i].To], eid)
	}

	return ad
}

// AddNode interns key, growing both indexes as needed.
func (ad *AdjacencyDual[K, D, M, W]) AddNode(key K, data D) core.NodeID {
	id := ad.nodes.Intern(key, data)
	ad.grow(id)

	return id
}

func (ad *AdjacencyDual[K, D, M, W]) grow(id core.NodeID) {
	for len(ad.out) <= int(id) {
		ad.out = append(ad.out, nil)
	}
	for len(ad.in) <= int(id) {
		ad.in = append(ad.in, nil)
	}
}

// AddEdge appends an unweighted record from→to and indexes both ends.
func (ad *AdjacencyDual[K, D, M, W]) AddEdge(from, to core.NodeID, meta M) core.EdgeID {
	return ad.append(EdgeRecord[M, W]{From: from, To: to, Meta: meta})
}

// AddWeightedEdge appends a weighted record from→to and indexes both ends.
func (ad *AdjacencyDual[K, D, M, W]) AddWeightedEdge(from, to core.NodeID, meta M, weight W) core.EdgeID {
	return ad.append(EdgeRecord[M, W]{From: from, To: to, Meta: meta, Weight: weight, Weighted: true})
}

func (ad *AdjacencyDual[K, D, M, W]) append(rec EdgeRecord[M, W]) core.EdgeID {
	if rec.From > rec.To {
		ad.grow(rec.From)
	} else {
		ad.grow(rec.To)
	}
	id := core.EdgeID(len(ad.edges))
	ad.edges = append(ad.edges, rec)
	ad.out[rec.From] = append(ad.out[rec.From], id)
	ad.in[rec.To] = append(ad.in[rec.To], id)

	return id
}

// ClearEdges drops every record and empties both index sides.
func (ad *AdjacencyDual[K, D, M, W]) ClearEdges() {
	ad.edges = ad.edges[:0]
	for i := range ad.out {
		ad.out[i] = ad.out[i][:0]
	}
	for i := range ad.in {
		ad.in[i] = ad.in[i][:0]
	}
}

// Order reports the node count.
func (ad *AdjacencyDual[K, D, M, W]) Order() int { return ad.nodes.Len() }

// Size reports the edge-record count.
func (ad *AdjacencyDual[K, D, M, W]) Size() int { return len(ad.edges) }

// NodeID resolves key to its dense id.
func (ad *AdjacencyDual[K, D, M, W]) NodeID(key K) (core.NodeID, bool) { return ad.nodes.ID(key) }

// NodeIDs yields 0..Order() in order.
func (ad *AdjacencyDual[K, D, M, W]) NodeIDs() iter.Seq[core.NodeID] {
	return nodeRange(ad.nodes.Len())
}

// NodeKey returns the key interned under id.
func (ad *AdjacencyDual[K, D, M, W]) NodeKey(id core.NodeID) K { return ad.nodes.Record(id).Key }

// NodeData returns the payload interned under id.
func (ad *AdjacencyDual[K, D, M, W]) NodeData(id core.NodeID) D { return ad.nodes.Record(id).Data }

// EdgeIDs yields 0..Size() in insertion order.
func (ad *AdjacencyDual[K, D, M, W]) EdgeIDs() iter.Seq[core.EdgeID] {
	return edgeRange(len(ad.edges))
}

// Endpoints returns the (from, to) pair of edge e.
func (ad *AdjacencyDual[K, D, M, W]) Endpoints(e core.EdgeID) (core.NodeID, core.NodeID) {
	r := ad.edges[e]

	return r.From, r.To
}

// EdgeMeta returns the opaque payload of edge e.
func (ad *AdjacencyDual[K, D, M, W]) EdgeMeta(e core.EdgeID) M { return ad.edges[e].Meta }

// EdgesBetween yields every edge id from→to via the out index.
// Complexity: O(deg).
func (ad *AdjacencyDual[K, D, M, W]) EdgesBetween(from, to core.NodeID) iter.Seq[core.EdgeID] {
	return func(yield func(core.EdgeID) bool) {
		if int(from) >= len(ad.out) {
			return
		}
		for _, eid := range ad.out[from] {
			if ad.edges[eid].To == to {
				if !yield(eid) {
					return
				}
			}
		}
	}
}

// Neighborhood yields each distinct incident node once, in first-seen
// order across the out then in index. Complexity: O(deg).
func (ad *AdjacencyDual[K, D, M, W]) Neighborhood(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		seen := make(map[core.NodeID]struct{})
		if int(v) < len(ad.out) {
			for _, eid := range ad.out[v] {
				u := ad.edges[eid].To
				if _, dup := seen[u]; dup {
					continue
				}
				seen[u] = struct{}{}
				if !yield(u) {
					return
				}
			}
		}
		if int(v) < len(ad.in) {
			for _, eid := range ad.in[v] {
				u := ad.edges[eid].From
				if _, dup := seen[u]; dup {
					continue
				}
				seen[u] = struct{}{}
				if !yield(u) {
					return
				}
			}
		}
	}
}

// Successors yields targets of edges leaving v via the out index.
// Complexity: O(deg).
func (ad *AdjacencyDual[K, D, M, W]) Successors(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		if int(v) >= len(ad.out) {
			return
		}
		for _, eid := range ad.out[v] {
			if !yield(ad.edges[eid].To) {
				return
			}
		}
	}
}

// Predecessors yields sources of edges entering v via the in index.
// Complexity: O(deg).
func (ad *AdjacencyDual[K, D, M, W]) Predecessors(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		if int(v) >= len(ad.in) {
			return
		}
		for _, eid := range ad.in[v] {
			if !yield(ad.edges[eid].From) {
				return
			}
		}
	}
}

// WeightOf returns the weight of edge e, ok == false when unweighted.
func (ad *AdjacencyDual[K, D, M, W]) WeightOf(e core.EdgeID) (W, bool) {
	r := ad.edges[e]

	return r.Weight, r.Weighted
}

// ToDefinition exports the canonical form. Complexity: O(V+E).
func (ad *AdjacencyDual[K, D, M, W]) ToDefinition() *Definition[K, D, M, W] {
	def := &Definition[K, D, M, W]{
		nodes: ad.nodes.Clone(),
		edges: make([]EdgeRecord[M, W], len(ad.edges)),
	}
	copy(def.edges, ad.edges)

	return def
}
