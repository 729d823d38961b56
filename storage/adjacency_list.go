package storage

import (
	"iter"

	"github.com/dkravets/graphtk/core"
)

// AdjacencyList is the out-adjacency backend: the canonical record slice
// plus a per-node index of outgoing edge ids. Successor walks cost
// O(deg); queries against incoming edges still scan all records.
type AdjacencyList[K comparable, D, M any, W core.Weight] struct {
	nodes *core.Interner[K, D]
	edges []EdgeRecord[M, W]
	out   [][]core.EdgeID
}

// NewAdjacencyList returns an empty out-adjacency backend.
func NewAdjacencyList[K comparable, D, M any, W core.Weight]() *AdjacencyList[K, D, M, W] {
	return &AdjacencyList[K, D, M, W]{nodes: core.NewInterner[K, D]()}
}

// NewAdjacencyListFromDefinition copies def into a fresh out-adjacency
// backend: nodes in interning order, edges in insertion order.
// Complexity: O(V+E).
func NewAdjacencyListFromDefinition[K comparable, D, M any, W core.Weight](def *Definition[K, D, M, W]) *AdjacencyList[K, D, M, W] {
	al := &AdjacencyList[K, D, M, W]{
		nodes: def.nodes.Clone(),
		edges: make([]EdgeRecord[M, W], len(def.edges)),
		out:   make([][]core.EdgeID, def.nodes.Len()),
	}
	copy(al.edges, def.edges)
	for i := range al.edges {
		al.out[al.edges[i].From] = append(al.out[al.edges[i].From], core.EdgeID(i))
	}

	return al
}

// AddNode interns key, growing the out index as needed.
func (al *AdjacencyList[K, D, M, W]) AddNode(key K, data D) core.NodeID {
	id := al.nodes.Intern(key, data)
	for len(al.out) <= int(id) {
		al.out = append(al.out, nil)
	}

	return id
}

// AddEdge appends an unweighted record from→to and indexes it.
func (al *AdjacencyList[K, D, M, W]) AddEdge(from, to core.NodeID, meta M) core.EdgeID {
	return al.append(EdgeRecord[M, W]{From: from, To: to, Meta: meta})
}

// AddWeightedEdge appends a weighted record from→to and indexes it.
func (al *AdjacencyList[K, D, M, W]) AddWeightedEdge(from, to core.NodeID, meta M, weight W) core.EdgeID {
	return al.append(EdgeRecord[M, W]{From: from, To: to, Meta: meta, Weight: weight, Weighted: true})
}

func (al *AdjacencyList[K, D, M, W]) append(rec EdgeRecord[M, W]) core.EdgeID {
	for len(al.out) <= int(rec.From) {
		al.out = append(al.out, nil)
	}
	id := core.EdgeID(len(al.edges))
	al.edges = append(al.edges, rec)
	al.out[rec.From] = append(al.out[rec.From], id)

	return id
}

// ClearEdges drops every record and empties the out index buckets.
func (al *AdjacencyList[K, D, M, W]) ClearEdges() {
	al.edges = al.edges[:0]
	for i := range al.out {
		al.out[i] = al.out[i][:0]
	}
}

// Order reports the node count.
func (al *AdjacencyList[K, D, M, W]) Order() int { return al.nodes.Len() }

// Size reports the edge-record count.
func (al *AdjacencyList[K, D, M, W]) Size() int { return len(al.edges) }

// NodeID resolves key to its dense id.
func (al *AdjacencyList[K, D, M, W]) NodeID(key K) (core.NodeID, bool) { return al.nodes.ID(key) }

// NodeIDs yields 0..Order() in order.
func (al *AdjacencyList[K, D, M, W]) NodeIDs() iter.Seq[core.NodeID] {
	return nodeRange(al.nodes.Len())
}

// NodeKey returns the key interned under id.
func (al *AdjacencyList[K, D, M, W]) NodeKey(id core.NodeID) K { return al.nodes.Record(id).Key }

// NodeData returns the payload interned under id.
func (al *AdjacencyList[K, D, M, W]) NodeData(id core.NodeID) D { return al.nodes.Record(id).Data }

// EdgeIDs yields 0..Size() in insertion order.
func (al *AdjacencyList[K, D, M, W]) EdgeIDs() iter.Seq[core.EdgeID] {
	return edgeRange(len(al.edges))
}

// Endpoints returns the (from, to) pair of edge e.
func (al *AdjacencyList[K, D, M, W]) Endpoints(e core.EdgeID) (core.NodeID, core.NodeID) {
	r := al.edges[e]

	return r.From, r.To
}

// EdgeMeta returns the opaque payload of edge e.
func (al *AdjacencyList[K, D, M, W]) EdgeMeta(e core.EdgeID) M { return al.edges[e].Meta }

// EdgesBetween yields every edge id from→to in insertion order.
// Complexity: O(E).
func (al *AdjacencyList[K, D, M, W]) EdgesBetween(from, to core.NodeID) iter.Seq[core.EdgeID] {
	return func(yield func(core.EdgeID) bool) {
		for i := range al.edges {
			if al.edges[i].From == from && al.edges[i].To == to {
				if !yield(core.EdgeID(i)) {
					return
				}
			}
		}
	}
}

// Neighborhood yields the far endpoint of every incident record.
// Complexity: O(E).
func (al *AdjacencyList[K, D, M, W]) Neighborhood(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		for i := range al.edges {
			if al.edges[i].From == v {
				if !yield(al.edges[i].To) {
					return
				}
			} else if al.edges[i].To == v {
				if !yield(al.edges[i].From) {
					return
				}
			}
		}
	}
}

// Successors yields targets of edges leaving v via the out index.
// Complexity: O(deg).
func (al *AdjacencyList[K, D, M, W]) Successors(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		if int(v) >= len(al.out) {
			return
		}
		for _, eid := range al.out[v] {
			if !yield(al.edges[eid].To) {
				return
			}
		}
	}
}

// Predecessors yields sources of edges entering v. No in-index exists,
// so this scans every record. Complexity: O(E).
func (al *AdjacencyList[K, D, M, W]) Predecessors(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		for i := range al.edges {
			if al.edges[i].To == v {
				if !yield(al.edges[i].From) {
					return
				}
			}
		}
	}
}

// WeightOf returns the weight of edge e, ok == false when unweighted.
func (al *AdjacencyList[K, D, M, W]) WeightOf(e core.EdgeID) (W, bool) {
	r := al.edges[e]

	return r.Weight, r.Weighted
}

// ToDefinition exports the canonical form. Complexity: O(V+E).
func (al *AdjacencyList[K, D, M, W]) ToDefinition() *Definition[K, D, M, W] {
	def := &Definition[K, D, M, W]{
		nodes: al.nodes.Clone(),
		edges: make([]EdgeRecord[M, W], len(al.edges)),
	}
	copy(def.edges, al.edges)

	return def
}
