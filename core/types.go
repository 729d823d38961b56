// This file declares the identifier handles and the Weight constraint.
// Storage backends hand out NodeIDs/EdgeIDs densely in insertion order;
// the ids double as indices into backend-local slices.

package core

// NodeID is a dense, zero-based handle to a node inside one storage
// instance. Ids are assigned in interning order and never reused.
type NodeID int

// EdgeID is a dense, zero-based handle to an edge record inside one
// storage instance. Ids follow edge insertion order.
type EdgeID int

// NoNode marks the absence of a node, e.g. a missing predecessor.
const NoNode NodeID = -1

// NoEdge marks the absence of an edge in dense matrix cells.
const NoEdge EdgeID = -1

// Weight is the minimal numeric capability required of edge weights:
// ordered (<), summable (+), with the type's zero value as additive
// identity. Satisfied by every built-in integer and float type.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
