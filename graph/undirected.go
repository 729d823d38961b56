package graph

import (
	"iter"

	"github.com/dkravets/graphtk/core"
)

// Undirected wraps a storage backend with undirected-edge semantics.
// Every logical edge is stored as two mirrored records with identical
// meta and weight, so record-level degree counts both orientations.
type Undirected[K comparable, D, M any, W core.Weight] struct {
	store core.MutableStorage[K, D, M, W]
	kind  Kind
}

// NewUndirected wraps store with the given kind. The wrapper assumes
// exclusive ownership of store from here on.
func NewUndirected[K comparable, D, M any, W core.Weight](store core.MutableStorage[K, D, M, W], kind Kind) *Undirected[K, D, M, W] {
	return &Undirected[K, D, M, W]{store: store, kind: kind}
}

// Kind reports the wrapper's edge-kind tag.
func (g *Undirected[K, D, M, W]) Kind() Kind { return g.kind }

// Storage exposes the wrapped backend, e.g. for conversion.
func (g *Undirected[K, D, M, W]) Storage() core.MutableStorage[K, D, M, W] { return g.store }

// AddNode interns key into the wrapped storage.
func (g *Undirected[K, D, M, W]) AddNode(key K, data D) core.NodeID {
	return g.store.AddNode(key, data)
}

// checkEdge validates the unordered pair {a, b} against the kind tag.
// Simple checks both orientations before either record lands, so a
// failed insertion leaves the storage untouched.
func (g *Undirected[K, D, M, W]) checkEdge(a, b core.NodeID) error {
	switch g.kind {
	case Simple:
		if a == b {
			return ErrSelfLoop
		}
		if hasEdge[K, D, M, W](g.store, a, b) || hasEdge[K, D, M, W](g.store, b, a) {
			return ErrParallelEdge
		}
	case Multi:
		if a == b {
			return ErrSelfLoop
		}
	}

	return nil
}

// AddEdge inserts an unweighted undirected edge {a, b} as the mirrored
// record pair (a→b, b→a). Both ids are returned, forward first.
func (g *Undirected[K, D, M, W]) AddEdge(a, b core.NodeID, meta M) (core.EdgeID, core.EdgeID, error) {
	if err := g.checkEdge(a, b); err != nil {
		return core.NoEdge, core.NoEdge, err
	}
	fw := g.store.AddEdge(a, b, meta)
	bw := g.store.AddEdge(b, a, meta)

	return fw, bw, nil
}

// AddEdgeWeighted inserts a weighted undirected edge {a, b} as the
// mirrored record pair (a→b, b→a). Both ids are returned, forward first.
func (g *Undirected[K, D, M, W]) AddEdgeWeighted(a, b core.NodeID, meta M, weight W) (core.EdgeID, core.EdgeID, error) {
	if err := g.checkEdge(a, b); err != nil {
		return core.NoEdge, core.NoEdge, err
	}
	fw := g.store.AddWeightedEdge(a, b, meta, weight)
	bw := g.store.AddWeightedEdge(b, a, meta, weight)

	return fw, bw, nil
}

// AddEdgeByKey interns both endpoints, then inserts as AddEdge.
func (g *Undirected[K, D, M, W]) AddEdgeByKey(aKey, bKey K, aData, bData D, meta M) (core.EdgeID, core.EdgeID, error) {
	a := g.store.AddNode(aKey, aData)
	b := g.store.AddNode(bKey, bData)

	return g.AddEdge(a, b, meta)
}

// AddEdgeWeightedByKey interns both endpoints, then inserts as AddEdgeWeighted.
func (g *Undirected[K, D, M, W]) AddEdgeWeightedByKey(aKey, bKey K, aData, bData D, meta M, weight W) (core.EdgeID, core.EdgeID, error) {
	a := g.store.AddNode(aKey, aData)
	b := g.store.AddNode(bKey, bData)

	return g.AddEdgeWeighted(a, b, meta, weight)
}

// ClearEdges drops every record, keeping all nodes.
func (g *Undirected[K, D, M, W]) ClearEdges() { g.store.ClearEdges() }

// GraphBase delegation. Direction-sensitive walks collapse to the
// incident set: on an undirected wrapper Successors, Predecessors and
// Neighborhood are the same sequence.

func (g *Undirected[K, D, M, W]) Order() int { return g.store.Order() }
func (g *Undirected[K, D, M, W]) Size() int  { return g.store.Size() }

func (g *Undirected[K, D, M, W]) NodeID(key K) (core.NodeID, bool) { return g.store.NodeID(key) }
func (g *Undirected[K, D, M, W]) NodeIDs() iter.Seq[core.NodeID]   { return g.store.NodeIDs() }
func (g *Undirected[K, D, M, W]) NodeKey(id core.NodeID) K         { return g.store.NodeKey(id) }
func (g *Undirected[K, D, M, W]) NodeData(id core.NodeID) D        { return g.store.NodeData(id) }

func (g *Undirected[K, D, M, W]) EdgeIDs() iter.Seq[core.EdgeID] { return g.store.EdgeIDs() }
func (g *Undirected[K, D, M, W]) Endpoints(e core.EdgeID) (core.NodeID, core.NodeID) {
	return g.store.Endpoints(e)
}
func (g *Undirected[K, D, M, W]) EdgeMeta(e core.EdgeID) M { return g.store.EdgeMeta(e) }
func (g *Undirected[K, D, M, W]) EdgesBetween(from, to core.NodeID) iter.Seq[core.EdgeID] {
	return g.store.EdgesBetween(from, to)
}

func (g *Undirected[K, D, M, W]) Neighborhood(v core.NodeID) iter.Seq[core.NodeID] {
	return g.store.Neighborhood(v)
}
func (g *Undirected[K, D, M, W]) Successors(v core.NodeID) iter.Seq[core.NodeID] {
	return g.store.Neighborhood(v)
}
func (g *Undirected[K, D, M, W]) Predecessors(v core.NodeID) iter.Seq[core.NodeID] {
	return g.store.Neighborhood(v)
}

func (g *Undirected[K, D, M, W]) WeightOf(e core.EdgeID) (W, bool) { return g.store.WeightOf(e) }
