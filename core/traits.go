// This file declares the capability interfaces implemented by the storage
// backends and delegated to by the graph wrappers. Algorithms accept the
// narrowest interface that covers their needs (GraphBase for topology,
// WeightedGraph when weights matter, MutableStorage when they rebuild).

package core

import "iter"

// GraphBase is the minimal read-only topology contract.
//
// Neighbor queries differ only in orientation:
//   - Successors(v):   targets of edges leaving v.
//   - Predecessors(v): sources of edges entering v.
//   - Neighborhood(v): both, i.e. the incident record set.
//
// Undirected wrappers define all three identically. Sequences are lazy
// and finite; backends may or may not deduplicate repeated neighbors.
type GraphBase[K comparable, D, M any, W Weight] interface {
	// Order reports the number of nodes.
	Order() int
	// Size reports the number of edge records.
	Size() int

	// NodeID resolves a user key to its dense id.
	NodeID(key K) (NodeID, bool)
	// NodeIDs yields every node id in insertion order.
	NodeIDs() iter.Seq[NodeID]
	// NodeKey returns the key interned under id.
	NodeKey(id NodeID) K
	// NodeData returns the payload interned under id.
	NodeData(id NodeID) D

	// EdgeIDs yields every edge id in insertion order.
	EdgeIDs() iter.Seq[EdgeID]
	// Endpoints returns the (from, to) pair of an edge record.
	Endpoints(e EdgeID) (NodeID, NodeID)
	// EdgeMeta returns the opaque per-edge payload.
	EdgeMeta(e EdgeID) M
	// EdgesBetween yields the ids of edges from→to; zero, one, or many.
	EdgesBetween(from, to NodeID) iter.Seq[EdgeID]

	// Neighborhood yields nodes incident to v in either direction.
	Neighborhood(v NodeID) iter.Seq[NodeID]
	// Successors yields targets of edges leaving v.
	Successors(v NodeID) iter.Seq[NodeID]
	// Predecessors yields sources of edges entering v.
	Predecessors(v NodeID) iter.Seq[NodeID]
}

// EdgeWeights adds optional weight lookup. Unweighted edge records
// report ok == false.
type EdgeWeights[W Weight] interface {
	WeightOf(e EdgeID) (W, bool)
}

// WeightedGraph couples topology with weight lookup; the contract
// consumed by Dijkstra, Kruskal, and the Warshall lightest-path engine.
type WeightedGraph[K comparable, D, M any, W Weight] interface {
	GraphBase[K, D, M, W]
	EdgeWeights[W]
}

// MutableStorage extends GraphBase with insertion and bulk edge clearing.
// There is no removal: ids stay dense and stable until the instance is
// discarded. ClearEdges drops every edge record while keeping nodes,
// which is what residual-network reconstruction needs.
type MutableStorage[K comparable, D, M any, W Weight] interface {
	GraphBase[K, D, M, W]
	EdgeWeights[W]

	// AddNode interns key, returning its (possibly pre-existing) id.
	AddNode(key K, data D) NodeID
	// AddEdge appends an unweighted edge record from→to.
	AddEdge(from, to NodeID, meta M) EdgeID
	// AddWeightedEdge appends a weighted edge record from→to.
	AddWeightedEdge(from, to NodeID, meta M, weight W) EdgeID
	// ClearEdges removes every edge record, keeping all nodes.
	ClearEdges()
}
