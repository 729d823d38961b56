package storage

import (
	"iter"

	"github.com/dkravets/graphtk/core"
)

// EdgeRecord is one directed edge: endpoints, opaque meta, and an
// optional weight (Weighted reports presence). Undirected semantics are
// built above storage by inserting a matching reverse record.
type EdgeRecord[M any, W core.Weight] struct {
	From, To core.NodeID
	Meta     M
	Weight   W
	Weighted bool
}

// Definition is the canonical edge-list backend: an interner plus edge
// records in insertion order. Every other backend derives from it and
// converts back to it losslessly.
type Definition[K comparable, D, M any, W core.Weight] struct {
	nodes *core.Interner[K, D]
	edges []EdgeRecord[M, W]
}

// NewDefinition returns an empty canonical edge list.
func NewDefinition[K comparable, D, M any, W core.Weight]() *Definition[K, D, M, W] {
	return &Definition[K, D, M, W]{nodes: core.NewInterner[K, D]()}
}

// AddNode interns key, returning its id. Existing keys keep their
// original payload.
func (d *Definition[K, D, M, W]) AddNode(key K, data D) core.NodeID {
	return d.nodes.Intern(key, data)
}

// AddEdge appends an unweighted record from→to and returns its id.
func (d *Definition[K, D, M, W]) AddEdge(from, to core.NodeID, meta M) core.EdgeID {
	id := core.EdgeID(len(d.edges))
	d.edges = append(d.edges, EdgeRecord[M, W]{From: from, To: to, Meta: meta})

	return id
}

// AddWeightedEdge appends a weighted record from→to and returns its id.
func (d *Definition[K, D, M, W]) AddWeightedEdge(from, to core.NodeID, meta M, weight W) core.EdgeID {
	id := core.EdgeID(len(d.edges))
	d.edges = append(d.edges, EdgeRecord[M, W]{From: from, To: to, Meta: meta, Weight: weight, Weighted: true})

	return id
}

// ClearEdges drops every edge record; nodes and their ids survive.
func (d *Definition[K, D, M, W]) ClearEdges() { d.edges = d.edges[:0] }

// Order reports the node count.
func (d *Definition[K, D, M, W]) Order() int { return d.nodes.Len() }

// Size reports the edge-record count.
func (d *Definition[K, D, M, W]) Size() int { return len(d.edges) }

// NodeID resolves key to its dense id.
func (d *Definition[K, D, M, W]) NodeID(key K) (core.NodeID, bool) { return d.nodes.ID(key) }

// NodeIDs yields 0..Order() in order.
func (d *Definition[K, D, M, W]) NodeIDs() iter.Seq[core.NodeID] {
	return nodeRange(d.nodes.Len())
}

// NodeKey returns the key interned under id.
func (d *Definition[K, D, M, W]) NodeKey(id core.NodeID) K { return d.nodes.Record(id).Key }

// NodeData returns the payload interned under id.
func (d *Definition[K, D, M, W]) NodeData(id core.NodeID) D { return d.nodes.Record(id).Data }

// EdgeIDs yields 0..Size() in insertion order.
func (d *Definition[K, D, M, W]) EdgeIDs() iter.Seq[core.EdgeID] {
	return edgeRange(len(d.edges))
}

// Endpoints returns the (from, to) pair of edge e.
func (d *Definition[K, D, M, W]) Endpoints(e core.EdgeID) (core.NodeID, core.NodeID) {
	r := d.edges[e]

	return r.From, r.To
}

// EdgeMeta returns the opaque payload of edge e.
func (d *Definition[K, D, M, W]) EdgeMeta(e core.EdgeID) M { return d.edges[e].Meta }

// Edge returns the full record of edge e.
func (d *Definition[K, D, M, W]) Edge(e core.EdgeID) EdgeRecord[M, W] { return d.edges[e] }

// EdgesBetween yields every edge id from→to, in insertion order.
// Complexity: O(E).
func (d *Definition[K, D, M, W]) EdgesBetween(from, to core.NodeID) iter.Seq[core.EdgeID] {
	return func(yield func(core.EdgeID) bool) {
		for i := range d.edges {
			if d.edges[i].From == from && d.edges[i].To == to {
				if !yield(core.EdgeID(i)) {
					return
				}
			}
		}
	}
}

// Neighborhood yields the far endpoint of every record incident to v.
// Repeated neighbors are yielded repeatedly. Complexity: O(E).
func (d *Definition[K, D, M, W]) Neighborhood(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		for i := range d.edges {
			if d.edges[i].From == v {
				if !yield(d.edges[i].To) {
					return
				}
			} else if d.edges[i].To == v {
				if !yield(d.edges[i].From) {
					return
				}
			}
		}
	}
}

// Successors yields the target of every record leaving v. Complexity: O(E).
func (d *Definition[K, D, M, W]) Successors(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		for i := range d.edges {
			if d.edges[i].From == v {
				if !yield(d.edges[i].To) {
					return
				}
			}
		}
	}
}

// Predecessors yields the source of every record entering v. Complexity: O(E).
func (d *Definition[K, D, M, W]) Predecessors(v core.NodeID) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		for i := range d.edges {
			if d.edges[i].To == v {
				if !yield(d.edges[i].From) {
					return
				}
			}
		}
	}
}

// WeightOf returns the weight of edge e, ok == false when unweighted.
func (d *Definition[K, D, M, W]) WeightOf(e core.EdgeID) (W, bool) {
	r := d.edges[e]

	return r.Weight, r.Weighted
}

// Clone returns an independent deep copy.
// Complexity: O(V+E).
func (d *Definition[K, D, M, W]) Clone() *Definition[K, D, M, W] {
	cp := &Definition[K, D, M, W]{
		nodes: d.nodes.Clone(),
		edges: make([]EdgeRecord[M, W], len(d.edges)),
	}
	copy(cp.edges, d.edges)

	return cp
}

// ToDefinition exports the canonical form: a fresh deep copy, so the
// receiver and the result never alias.
func (d *Definition[K, D, M, W]) ToDefinition() *Definition[K, D, M, W] { return d.Clone() }
