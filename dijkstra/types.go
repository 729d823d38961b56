// Package dijkstra defines the result type and sentinel errors for the
// single-source shortest-path computation in this package.
//
// Errors (sentinel):
//
//	– ErrStartNotFound  if the start key is not interned in the graph.
//	– ErrTargetNotFound if a PathTo target key is not interned.
//	– ErrNoPath         if PathTo's target is unreachable from the start.
package dijkstra

import (
	"errors"

	"github.com/dkravets/graphtk/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrStartNotFound indicates that the start key does not exist in the graph.
	ErrStartNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrTargetNotFound indicates that the PathTo target key does not exist.
	ErrTargetNotFound = errors.New("dijkstra: target node not found in graph")

	// ErrNoPath indicates that the target is not reachable from the start.
	ErrNoPath = errors.New("dijkstra: no path from start to target")
)

// Result holds one complete single-source run. All slices are indexed by
// core.NodeID; Dist[v] is meaningful only where Reached[v] is true.
type Result[K comparable, W core.Weight] struct {
	// Start is the node the run was rooted at.
	Start core.NodeID

	// Dist[v] is the lightest-path weight from Start to v.
	Dist []W

	// Reached[v] reports whether v was settled with a finite distance.
	Reached []bool

	// Prev[v] is the predecessor of v on a lightest path from Start,
	// core.NoNode for the start itself and for unreached nodes.
	Prev []core.NodeID

	// Keys[v] is the interned key of node v, for key-level reporting.
	Keys []K
}

// DistTo returns the lightest-path weight to the node interned under
// key, ok == false when key is unknown or unreached.
func (r *Result[K, W]) DistTo(key K) (W, bool) {
	for v := range r.Keys {
		if r.Keys[v] == key {
			if !r.Reached[v] {
				var zero W

				return zero, false
			}

			return r.Dist[v], true
		}
	}
	var zero W

	return zero, false
}

// PathTo reconstructs the lightest path from the start to target by
// walking Prev backwards. The returned slice runs start..target in key
// form. Complexity: O(V) per call.
func (r *Result[K, W]) PathTo(target K) (W, []K, error) {
	t := core.NoNode
	for v := range r.Keys {
		if r.Keys[v] == target {
			t = core.NodeID(v)

			break
		}
	}
	if t == core.NoNode {
		var zero W

		return zero, nil, ErrTargetNotFound
	}
	if !r.Reached[t] {
		var zero W

		return zero, nil, ErrNoPath
	}

	// Walk predecessors back to the start, then reverse in place.
	path := []K{r.Keys[t]}
	for v := t; v != r.Start; v = r.Prev[v] {
		path = append(path, r.Keys[r.Prev[v]])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return r.Dist[t], path, nil
}
