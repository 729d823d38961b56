// Package hierholzer finds Eulerian circuits in undirected graphs via
// Hierholzer's stack-based walk.
//
// The engine works at record level: every stored record is one
// traversable edge, and a node's degree is its incident record count
// (self-loops count twice). On a wrapper-built undirected graph each
// logical edge is two mirrored records, so every degree is even by
// construction and the interesting inputs are raw single-record
// storages. Feed the engine whichever representation matches the
// multigraph you mean.
//
// Preconditions are checked up front and reported as values:
//
//   - OddDegreeError names the first node (in id order) whose degree is
//     odd, along with that degree.
//   - ErrDisconnected is returned when the walk exhausts its component
//     but unused records remain elsewhere, detected by the circuit
//     length falling short of size+1.
//
// An edgeless graph with nodes yields the trivial single-node circuit;
// a fully empty graph yields an empty circuit.
//
// Complexity: O(V+E) time and memory.
package hierholzer

import (
	"errors"
	"fmt"

	"github.com/dkravets/graphtk/core"
)

// ErrDisconnected indicates records unreachable from the walk's start.
var ErrDisconnected = errors.New("hierholzer: graph has edges in more than one component")

// OddDegreeError reports the node that breaks the even-degree
// precondition.
type OddDegreeError[K comparable] struct {
	Key    K
	Degree int
}

func (e OddDegreeError[K]) Error() string {
	return fmt.Sprintf("hierholzer: node %v has odd degree %d", e.Key, e.Degree)
}

// Result is a complete Eulerian circuit in key form: size+1 entries,
// first and last identical, every record traversed exactly once.
type Result[K comparable] struct {
	Circuit []K
}

// Hierholzer computes an Eulerian circuit of g treating every record as
// one undirected edge.
func Hierholzer[K comparable, D, M any, W core.Weight](g core.GraphBase[K, D, M, W]) (*Result[K], error) {
	n := g.Order()
	m := g.Size()

	// Trivial shapes first: no records to traverse.
	if m == 0 {
		if n == 0 {
			return &Result[K]{}, nil
		}

		return &Result[K]{Circuit: []K{g.NodeKey(0)}}, nil
	}

	// 1) Record-level degrees and incidence lists. A self-loop adds two
	//    to its node's degree but appears once in its incidence list,
	//    since following it returns to the same node.
	degree := make([]int, n)
	incident := make([][]core.EdgeID, n)
	for e := range g.EdgeIDs() {
		from, to := g.Endpoints(e)
		incident[from] = append(incident[from], e)
		if from == to {
			degree[from] += 2

			continue
		}
		degree[from]++
		degree[to]++
		incident[to] = append(incident[to], e)
	}

	// 2) Even-degree precondition, first offender in id order.
	for v := 0; v < n; v++ {
		if degree[v]%2 != 0 {
			return nil, OddDegreeError[K]{Key: g.NodeKey(core.NodeID(v)), Degree: degree[v]}
		}
	}

	// 3) Start anywhere with a record attached.
	start := core.NoNode
	for v := 0; v < n; v++ {
		if degree[v] > 0 {
			start = core.NodeID(v)

			break
		}
	}

	// 4) Stack walk: follow an unused incident record when one exists,
	//    otherwise retire the top node onto the circuit.
	used := make([]bool, m)
	cursor := make([]int, n)
	stack := []core.NodeID{start}
	circuit := make([]K, 0, m+1)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		advanced := false
		for cursor[top] < len(incident[top]) {
			e := incident[top][cursor[top]]
			if used[e] {
				cursor[top]++

				continue
			}
			used[e] = true
			from, to := g.Endpoints(e)
			next := to
			if top == to {
				next = from
			}
			stack = append(stack, next)
			advanced = true

			break
		}
		if !advanced {
			circuit = append(circuit, g.NodeKey(top))
			stack = stack[:len(stack)-1]
		}
	}

	// 5) A shorter circuit means some records sit in another component.
	if len(circuit) != m+1 {
		return nil, ErrDisconnected
	}

	// The walk retires nodes in reverse traversal order.
	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return &Result[K]{Circuit: circuit}, nil
}
