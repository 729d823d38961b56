// Package prufer converts between labeled trees and Prüfer sequences.
//
// Encode walks any tree-shaped graph (keys must be ordered) and emits
// the length n-2 sequence of neighbor keys produced by repeatedly
// removing the smallest leaf. Degrees are computed over distinct
// neighbors, so a tree stored with mirrored records encodes the same as
// one stored with single records. Non-tree input is not detected; the
// sequence it produces is unspecified.
//
// Decode maps a sequence of length n-2 over integer labels 1..n back to
// the unique tree it encodes, returned as a canonical edge list keyed
// by label. A label outside 1..n fails with LabelRangeError.
//
// Both directions run in O(n log n) via a min-heap of current leaves.
package prufer

import (
	"cmp"
	"container/heap"
	"errors"
	"fmt"

	"github.com/dkravets/graphtk/core"
	"github.com/dkravets/graphtk/storage"
)

// ErrTreeTooSmall indicates an Encode input with fewer than two nodes.
var ErrTreeTooSmall = errors.New("prufer: tree must have at least two nodes")

// LabelRangeError reports a Decode label outside 1..n.
type LabelRangeError struct {
	Label int
	N     int
}

func (e LabelRangeError) Error() string {
	return fmt.Sprintf("prufer: label %d outside 1..%d", e.Label, e.N)
}

// leafHeap is a min-heap of plain ordered values.
type leafHeap[T cmp.Ordered] []T

func (h leafHeap[T]) Len() int           { return len(h) }
func (h leafHeap[T]) Less(i, j int) bool { return h[i] < h[j] }
func (h leafHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *leafHeap[T]) Push(x any)        { *h = append(*h, x.(T)) }

func (h *leafHeap[T]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// Encode produces the Prüfer sequence of the tree g: n-2 neighbor keys
// in smallest-leaf removal order.
func Encode[K cmp.Ordered, D, M any, W core.Weight](g core.GraphBase[K, D, M, W]) ([]K, error) {
	n := g.Order()
	if n < 2 {
		return nil, ErrTreeTooSmall
	}

	// 1) Distinct-neighbor adjacency. Mirrored and parallel records
	//    collapse here, so degree means tree degree.
	adj := make([]map[core.NodeID]struct{}, n)
	for v := 0; v < n; v++ {
		adj[v] = make(map[core.NodeID]struct{})
		for u := range g.Neighborhood(core.NodeID(v)) {
			adj[v][u] = struct{}{}
		}
	}

	// 2) Seed the leaf heap with every degree-1 node, ordered by key.
	leaves := &leafHeap[K]{}
	for v := 0; v < n; v++ {
		if len(adj[v]) == 1 {
			*leaves = append(*leaves, g.NodeKey(core.NodeID(v)))
		}
	}
	heap.Init(leaves)

	// 3) Remove the smallest leaf n-2 times, recording its neighbor.
	seq := make([]K, 0, n-2)
	for len(seq) < n-2 && leaves.Len() > 0 {
		key := heap.Pop(leaves).(K)
		u, _ := g.NodeID(key)

		var next core.NodeID
		found := false
		for w := range adj[u] {
			next = w
			found = true
		}
		if !found {
			continue
		}

		seq = append(seq, g.NodeKey(next))
		delete(adj[next], u)
		adj[u] = nil
		if len(adj[next]) == 1 {
			heap.Push(leaves, g.NodeKey(next))
		}
	}

	return seq, nil
}

// Decode rebuilds the tree encoded by seq over labels 1..len(seq)+2.
// The result is a canonical edge list with one record per tree edge,
// nodes interned in label order.
func Decode(seq []int) (*storage.Definition[int, struct{}, struct{}, int], error) {
	n := len(seq) + 2
	for _, label := range seq {
		if label < 1 || label > n {
			return nil, LabelRangeError{Label: label, N: n}
		}
	}

	def := storage.NewDefinition[int, struct{}, struct{}, int]()
	ids := make([]core.NodeID, n+1)
	for label := 1; label <= n; label++ {
		ids[label] = def.AddNode(label, struct{}{})
	}

	// The two-node tree is the single edge 1-2.
	if n == 2 {
		def.AddEdge(ids[1], ids[2], struct{}{})

		return def, nil
	}

	// 1) A label's degree is one plus its occurrence count.
	degree := make([]int, n+1)
	for label := 1; label <= n; label++ {
		degree[label] = 1
	}
	for _, label := range seq {
		degree[label]++
	}

	leaves := &leafHeap[int]{}
	for label := 1; label <= n; label++ {
		if degree[label] == 1 {
			*leaves = append(*leaves, label)
		}
	}
	heap.Init(leaves)

	// 2) Join each sequence element with the smallest current leaf.
	for _, v := range seq {
		u := heap.Pop(leaves).(int)
		def.AddEdge(ids[u], ids[v], struct{}{})
		degree[v]--
		if degree[v] == 1 {
			heap.Push(leaves, v)
		}
	}

	// 3) Exactly two leaves remain; the final edge closes the tree.
	a := heap.Pop(leaves).(int)
	b := heap.Pop(leaves).(int)
	def.AddEdge(ids[a], ids[b], struct{}{})

	return def, nil
}
