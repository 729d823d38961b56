package flow

import (
	"fmt"

	"github.com/dkravets/graphtk/core"
	"github.com/dkravets/graphtk/storage"
)

// FordFulkerson computes the maximum flow of net using the Edmonds–Karp
// discipline: augmenting paths are found by breadth-first search over a
// residual network rebuilt from scratch each iteration.
//
// It returns a Result carrying the max-flow value, the final signed
// assignment, and the full iteration trace (one Step per residual
// build, the terminal no-path step included).
//
// Steps per iteration:
//  1. Rebuild the residual network from the capacities and the current
//     assignment (O(V+E)).
//  2. BFS from source to sink over the residual (O(V+E)). The found
//     path is shortest in arc count, not in capacity.
//  3. No path: record the terminal step and stop.
//  4. Else: bottleneck = minimum residual capacity along the path; add
//     it to the assignment on each forward pair, subtract on each
//     reverse pair; record the step.
//
// With integer capacities the loop terminates within the Edmonds–Karp
// bound of O(VE) augmentations, O(VE²) total. The per-iteration rebuild
// costs an extra O(E) allocation each round; that is the price of the
// retained trace.
//
// The input assignment is left untouched; Result.Flow is a fresh map.
func FordFulkerson[K comparable](net *Network[K], opts ...Option) (*Result[K], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if int(net.Source) >= net.Graph.Order() || net.Source < 0 {
		return nil, ErrSourceNotFound
	}
	if int(net.Sink) >= net.Graph.Order() || net.Sink < 0 {
		return nil, ErrSinkNotFound
	}

	res := &Result[K]{Flow: make(map[ArcKey]int64, len(net.Flow))}
	for k, f := range net.Flow {
		res.Flow[k] = f
	}

	n := net.Graph.Order()
	for {
		// 1) Fresh residual snapshot for this iteration.
		residual := buildResidual(net, res.Flow)

		// 2) BFS for any source→sink path with positive residual capacity.
		parent := bfsParents(residual, n, net.Source, net.Sink)
		if net.Sink == net.Source || parent[net.Sink] == core.NoEdge {
			res.Steps = append(res.Steps, Step[K]{Residual: residual})

			break
		}

		// 3) Walk the parent chain to find the bottleneck.
		var bottleneck int64
		for v := net.Sink; v != net.Source; {
			e := parent[v]
			w, _ := residual.WeightOf(e)
			if bottleneck == 0 || w < bottleneck {
				bottleneck = w
			}
			from, _ := residual.Endpoints(e)
			v = from
		}

		// 4) Augment the assignment and record the path in key form.
		path := []K{net.Graph.NodeKey(net.Sink)}
		for v := net.Sink; v != net.Source; {
			from, to := residual.Endpoints(parent[v])
			res.Flow[ArcKey{From: from, To: to}] += bottleneck
			res.Flow[ArcKey{From: to, To: from}] -= bottleneck
			path = append(path, net.Graph.NodeKey(from))
			v = from
		}
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}

		if cfg.Verbose {
			fmt.Printf("augmenting path %v with flow %d\n", path, bottleneck)
		}

		snapshot := make(map[ArcKey]int64, len(res.Flow))
		for k, f := range res.Flow {
			snapshot[k] = f
		}
		res.Steps = append(res.Steps, Step[K]{
			Residual:   residual,
			Path:       path,
			Bottleneck: bottleneck,
			Flow:       snapshot,
		})
	}

	// Max flow = net flow leaving the source under the final assignment.
	for k, f := range res.Flow {
		if k.From == net.Source {
			res.MaxFlow += f
		}
	}

	return res, nil
}

// buildResidual constructs the residual network for the given
// assignment. For every capacity arc with remaining capacity a forward
// residual arc is added; a cancellation arc carrying the current flow is
// added only where no reverse capacity arc exists, since an existing
// reverse arc already absorbs cancellation through its own residual.
// Complexity: O(V+E²) worst case from the reverse-arc probe, O(V+E) on
// pair-sparse networks.
func buildResidual[K comparable](net *Network[K], flow map[ArcKey]int64) *storage.Definition[K, struct{}, struct{}, int64] {
	residual := storage.NewDefinition[K, struct{}, struct{}, int64]()
	for v := range net.Graph.NodeIDs() {
		residual.AddNode(net.Graph.NodeKey(v), struct{}{})
	}
	for e := range net.Graph.EdgeIDs() {
		from, to := net.Graph.Endpoints(e)
		forward := flow[ArcKey{From: from, To: to}]
		if rest := net.Capacities[e] - forward; rest > 0 {
			residual.AddWeightedEdge(from, to, struct{}{}, rest)
		}
		if forward > 0 && !hasReverse(net.Graph, to, from) {
			residual.AddWeightedEdge(to, from, struct{}{}, forward)
		}
	}

	return residual
}

// hasReverse reports whether any capacity arc from→to exists.
func hasReverse[K comparable](g *storage.Definition[K, struct{}, struct{}, int64], from, to core.NodeID) bool {
	for range g.EdgesBetween(from, to) {
		return true
	}

	return false
}

// bfsParents runs a breadth-first search from source over the residual
// arcs and returns, per node, the arc it was discovered through
// (core.NoEdge where undiscovered). The search stops at first sink
// discovery, so the recorded path is minimal in arc count.
func bfsParents[K comparable](residual *storage.Definition[K, struct{}, struct{}, int64], n int, source, sink core.NodeID) []core.EdgeID {
	out := make([][]core.EdgeID, n)
	for e := range residual.EdgeIDs() {
		from, _ := residual.Endpoints(e)
		out[from] = append(out[from], e)
	}

	parent := make([]core.EdgeID, n)
	for i := range parent {
		parent[i] = core.NoEdge
	}
	visited := make([]bool, n)
	visited[source] = true

	queue := []core.NodeID{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range out[u] {
			_, to := residual.Endpoints(e)
			if visited[to] {
				continue
			}
			visited[to] = true
			parent[to] = e
			if to == sink {
				return parent
			}
			queue = append(queue, to)
		}
	}

	return parent
}
