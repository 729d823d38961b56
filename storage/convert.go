package storage

import (
	"iter"

	"github.com/dkravets/graphtk/core"
)

// Convertible is the backend-to-backend conversion contract: lossless
// export to the canonical edge-list form. Converting storage S into
// storage T is NewTFromDefinition(s.ToDefinition()); both legs copy every
// node in interning order and every edge in insertion order, so the
// round-trip preserves node order, keys, payloads, and edge order.
// O(V+E) time and space per leg.
type Convertible[K comparable, D, M any, W core.Weight] interface {
	ToDefinition() *Definition[K, D, M, W]
}

// nodeRange yields NodeIDs 0..n-1.
func nodeRange(n int) iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		for i := 0; i < n; i++ {
			if !yield(core.NodeID(i)) {
				return
			}
		}
	}
}

// edgeRange yields EdgeIDs 0..n-1.
func edgeRange(n int) iter.Seq[core.EdgeID] {
	return func(yield func(core.EdgeID) bool) {
		for i := 0; i < n; i++ {
			if !yield(core.EdgeID(i)) {
				return
			}
		}
	}
}
