package graph

import (
	"github.com/dkravets/graphtk/core"
	"github.com/dkravets/graphtk/storage"
)

// Edge is a key-level endpoint pair for the bulk constructors.
type Edge[K comparable] struct {
	From K
	To   K
}

// WeightedEdge is a key-level endpoint pair with a weight.
type WeightedEdge[K comparable, W core.Weight] struct {
	From   K
	To     K
	Weight W
}

// DirectedFromEdges builds a Definition-backed directed wrapper from
// key-level arcs. Endpoints are interned in first-mention order; node
// payloads and edge meta take their zero values.
func DirectedFromEdges[K comparable, D, M any, W core.Weight](kind Kind, arcs []Edge[K]) (*Directed[K, D, M, W], error) {
	g := NewDirected(storage.NewDefinition[K, D, M, W](), kind)
	var d D
	var m M
	for _, a := range arcs {
		if _, err := g.AddArcByKey(a.From, a.To, d, d, m); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// DirectedFromWeightedEdges builds a Definition-backed directed wrapper
// from key-level weighted arcs.
func DirectedFromWeightedEdges[K comparable, D, M any, W core.Weight](kind Kind, arcs []WeightedEdge[K, W]) (*Directed[K, D, M, W], error) {
	g := NewDirected(storage.NewDefinition[K, D, M, W](), kind)
	var d D
	var m M
	for _, a := range arcs {
		if _, err := g.AddArcWeightedByKey(a.From, a.To, d, d, m, a.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// UndirectedFromEdges builds a Definition-backed undirected wrapper from
// key-level edges.
func UndirectedFromEdges[K comparable, D, M any, W core.Weight](kind Kind, edges []Edge[K]) (*Undirected[K, D, M, W], error) {
	g := NewUndirected(storage.NewDefinition[K, D, M, W](), kind)
	var d D
	var m M
	for _, e := range edges {
		if _, _, err := g.AddEdgeByKey(e.From, e.To, d, d, m); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// UndirectedFromWeightedEdges builds a Definition-backed undirected
// wrapper from key-level weighted edges.
func UndirectedFromWeightedEdges[K comparable, D, M any, W core.Weight](kind Kind, edges []WeightedEdge[K, W]) (*Undirected[K, D, M, W], error) {
	g := NewUndirected(storage.NewDefinition[K, D, M, W](), kind)
	var d D
	var m M
	for _, e := range edges {
		if _, _, err := g.AddEdgeWeightedByKey(e.From, e.To, d, d, m, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// UndirectedFromNodesAndEdges pre-interns isolated nodes before the edge
// pass, so nodes mentioned by no edge still appear in the graph.
func UndirectedFromNodesAndEdges[K comparable, D, M any, W core.Weight](kind Kind, nodes []K, edges []Edge[K]) (*Undirected[K, D, M, W], error) {
	g := NewUndirected(storage.NewDefinition[K, D, M, W](), kind)
	var d D
	var m M
	for _, k := range nodes {
		g.AddNode(k, d)
	}
	for _, e := range edges {
		if _, _, err := g.AddEdgeByKey(e.From, e.To, d, d, m); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// DirectedFromNodesAndEdges pre-interns isolated nodes before the arc
// pass.
func DirectedFromNodesAndEdges[K comparable, D, M any, W core.Weight](kind Kind, nodes []K, arcs []Edge[K]) (*Directed[K, D, M, W], error) {
	g := NewDirected(storage.NewDefinition[K, D, M, W](), kind)
	var d D
	var m M
	for _, k := range nodes {
		g.AddNode(k, d)
	}
	for _, a := range arcs {
		if _, err := g.AddArcByKey(a.From, a.To, d, d, m); err != nil {
			return nil, err
		}
	}

	return g, nil
}
