package graph

import (
	"iter"

	"github.com/dkravets/graphtk/core"
)

// Directed wraps a storage backend with directed-arc semantics and a
// Kind governing insertion. Every read delegates to the storage.
type Directed[K comparable, D, M any, W core.Weight] struct {
	store core.MutableStorage[K, D, M, W]
	kind  Kind
}

// NewDirected wraps store with the given kind. The wrapper assumes
// exclusive ownership of store from here on.
func NewDirected[K comparable, D, M any, W core.Weight](store core.MutableStorage[K, D, M, W], kind Kind) *Directed[K, D, M, W] {
	return &Directed[K, D, M, W]{store: store, kind: kind}
}

// Kind reports the wrapper's edge-kind tag.
func (g *Directed[K, D, M, W]) Kind() Kind { return g.kind }

// Storage exposes the wrapped backend, e.g. for conversion.
func (g *Directed[K, D, M, W]) Storage() core.MutableStorage[K, D, M, W] { return g.store }

// AddNode interns key into the wrapped storage.
func (g *Directed[K, D, M, W]) AddNode(key K, data D) core.NodeID {
	return g.store.AddNode(key, data)
}

// checkArc validates from→to against the kind tag.
// Simple scans existing edges, costing O(E).
func (g *Directed[K, D, M, W]) checkArc(from, to core.NodeID) error {
	switch g.kind {
	case Simple:
		if from == to {
			return ErrSelfLoop
		}
		if hasEdge[K, D, M, W](g.store, from, to) {
			return ErrParallelEdge
		}
	case Multi:
		if from == to {
			return ErrSelfLoop
		}
	}

	return nil
}

// AddArc inserts an unweighted arc from→to after kind validation.
func (g *Directed[K, D, M, W]) AddArc(from, to core.NodeID, meta M) (core.EdgeID, error) {
	if err := g.checkArc(from, to); err != nil {
		return core.NoEdge, err
	}

	return g.store.AddEdge(from, to, meta), nil
}

// AddArcWeighted inserts a weighted arc from→to after kind validation.
func (g *Directed[K, D, M, W]) AddArcWeighted(from, to core.NodeID, meta M, weight W) (core.EdgeID, error) {
	if err := g.checkArc(from, to); err != nil {
		return core.NoEdge, err
	}

	return g.store.AddWeightedEdge(from, to, meta, weight), nil
}

// AddArcByKey interns both endpoints, then inserts as AddArc.
func (g *Directed[K, D, M, W]) AddArcByKey(fromKey, toKey K, fromData, toData D, meta M) (core.EdgeID, error) {
	from := g.store.AddNode(fromKey, fromData)
	to := g.store.AddNode(toKey, toData)

	return g.AddArc(from, to, meta)
}

// AddArcWeightedByKey interns both endpoints, then inserts as AddArcWeighted.
func (g *Directed[K, D, M, W]) AddArcWeightedByKey(fromKey, toKey K, fromData, toData D, meta M, weight W) (core.EdgeID, error) {
	from := g.store.AddNode(fromKey, fromData)
	to := g.store.AddNode(toKey, toData)

	return g.AddArcWeighted(from, to, meta, weight)
}

// ClearEdges drops every arc, keeping all nodes.
func (g *Directed[K, D, M, W]) ClearEdges() { g.store.ClearEdges() }

// GraphBase delegation.

func (g *Directed[K, D, M, W]) Order() int { return g.store.Order() }
func (g *Directed[K, D, M, W]) Size() int  { return g.store.Size() }

func (g *Directed[K, D, M, W]) NodeID(key K) (core.NodeID, bool) { return g.store.NodeID(key) }
func (g *Directed[K, D, M, W]) NodeIDs() iter.Seq[core.NodeID]   { return g.store.NodeIDs() }
func (g *Directed[K, D, M, W]) NodeKey(id core.NodeID) K         { return g.store.NodeKey(id) }
func (g *Directed[K, D, M, W]) NodeData(id core.NodeID) D        { return g.store.NodeData(id) }

func (g *Directed[K, D, M, W]) EdgeIDs() iter.Seq[core.EdgeID] { return g.store.EdgeIDs() }
func (g *Directed[K, D, M, W]) Endpoints(e core.EdgeID) (core.NodeID, core.NodeID) {
	return g.store.Endpoints(e)
}
func (g *Directed[K, D, M, W]) EdgeMeta(e core.EdgeID) M { return g.store.EdgeMeta(e) }
func (g *Directed[K, D, M, W]) EdgesBetween(from, to core.NodeID) iter.Seq[core.EdgeID] {
	return g.store.EdgesBetween(from, to)
}

func (g *Directed[K, D, M, W]) Neighborhood(v core.NodeID) iter.Seq[core.NodeID] {
	return g.store.Neighborhood(v)
}
func (g *Directed[K, D, M, W]) Successors(v core.NodeID) iter.Seq[core.NodeID] {
	return g.store.Successors(v)
}
func (g *Directed[K, D, M, W]) Predecessors(v core.NodeID) iter.Seq[core.NodeID] {
	return g.store.Predecessors(v)
}

func (g *Directed[K, D, M, W]) WeightOf(e core.EdgeID) (W, bool) { return g.store.WeightOf(e) }
