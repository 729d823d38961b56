package graph

import (
	"errors"

	"github.com/dkravets/graphtk/core"
)

// ErrSelfLoop indicates a self-loop insertion on a Simple or Multi wrapper.
var ErrSelfLoop = errors.New("graph: self-loops not allowed for this kind")

// ErrParallelEdge indicates a duplicate-pair insertion on a Simple wrapper.
var ErrParallelEdge = errors.New("graph: parallel edges not allowed for this kind")

// Kind selects which edge-insertion constraints a wrapper enforces.
// It is a property of the wrapper, not of the storage: storage permits
// anything, the wrapper validates before delegating.
type Kind int

const (
	// Simple forbids self-loops and parallel edges.
	Simple Kind = iota
	// Multi permits parallel edges but forbids self-loops.
	Multi
	// Pseudo permits both self-loops and parallel edges.
	Pseudo
)

// String names the kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Multi:
		return "multi"
	case Pseudo:
		return "pseudo"
	default:
		return "unknown"
	}
}

// hasEdge reports whether any record from→to exists in g.
func hasEdge[K comparable, D, M any, W core.Weight](g core.GraphBase[K, D, M, W], from, to core.NodeID) bool {
	for range g.EdgesBetween(from, to) {
		return true
	}

	return false
}
