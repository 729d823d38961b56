// Package dijkstra_test contains unit tests for the lightest-path
// engine: validation errors, directed and undirected routing, parallel
// records, tie handling, unreachable nodes, and path reconstruction.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/dkravets/graphtk/core"
	"github.com/dkravets/graphtk/dijkstra"
	"github.com/dkravets/graphtk/graph"
	"github.com/dkravets/graphtk/storage"
)

// ------------------------------------------------------------------------
// 1. Validation tests: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_StartNotFound(t *testing.T) {
	g, err := graph.DirectedFromWeightedEdges[string, struct{}, struct{}, int](graph.Simple, []graph.WeightedEdge[string, int]{
		{From: "A", To: "B", Weight: 1},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	_, err = dijkstra.Dijkstra[string, struct{}, struct{}, int](g, "Z")
	if !errors.Is(err, dijkstra.ErrStartNotFound) {
		t.Fatalf("expected ErrStartNotFound, got %v", err)
	}
}

func TestResult_PathTo_TargetNotFound(t *testing.T) {
	g, _ := graph.DirectedFromWeightedEdges[string, struct{}, struct{}, int](graph.Simple, []graph.WeightedEdge[string, int]{
		{From: "A", To: "B", Weight: 1},
	})
	res, err := dijkstra.Dijkstra[string, struct{}, struct{}, int](g, "A")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, _, err = res.PathTo("Z"); !errors.Is(err, dijkstra.ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}
}

func TestResult_PathTo_NoPath(t *testing.T) {
	// C exists but no arc reaches it from A.
	g, _ := graph.DirectedFromNodesAndEdges[string, struct{}, struct{}, int](graph.Simple, []string{"C"}, []graph.Edge[string]{
		{From: "A", To: "B"},
	})
	// The single arc is unweighted, but reachability alone decides NoPath
	// for the isolated node.
	res, err := dijkstra.Dijkstra[string, struct{}, struct{}, int](g, "A")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, _, err = res.PathTo("A"); err != nil {
		t.Fatalf("start must be reachable from itself, got %v", err)
	}
	if _, _, err = res.PathTo("C"); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Routing tests: distances, predecessors, tie handling.
// ------------------------------------------------------------------------

func TestDijkstra_DirectedBasic(t *testing.T) {
	g, _ := graph.DirectedFromWeightedEdges[string, struct{}, struct{}, int](graph.Simple, []graph.WeightedEdge[string, int]{
		{From: "A", To: "B", Weight: 2},
		{From: "A", To: "C", Weight: 1},
		{From: "C", To: "B", Weight: 1},
		{From: "B", To: "D", Weight: 3},
		{From: "C", To: "D", Weight: 5},
	})
	res, err := dijkstra.Dijkstra[string, struct{}, struct{}, int](g, "A")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	w, path, err := res.PathTo("D")
	if err != nil {
		t.Fatalf("PathTo(D): %v", err)
	}
	if w != 5 {
		t.Errorf("dist[D] = %d, want 5", w)
	}
	want := []string{"A", "C", "B", "D"}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestDijkstra_ParallelArcsUseMinimum(t *testing.T) {
	// Two arcs A→B; relaxation must pick the lighter one.
	g, _ := graph.DirectedFromWeightedEdges[string, struct{}, struct{}, int](graph.Multi, []graph.WeightedEdge[string, int]{
		{From: "A", To: "B", Weight: 7},
		{From: "A", To: "B", Weight: 3},
	})
	res, err := dijkstra.Dijkstra[string, struct{}, struct{}, int](g, "A")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if d, ok := res.DistTo("B"); !ok || d != 3 {
		t.Errorf("dist[B] = %d (ok=%v), want 3", d, ok)
	}
}

func TestDijkstra_TieKeepsEarlierPredecessor(t *testing.T) {
	// Both A→B→D and A→C→D cost 2. B is settled before C, so the
	// predecessor recorded for D must stay B.
	g, _ := graph.DirectedFromWeightedEdges[string, struct{}, struct{}, int](graph.Simple, []graph.WeightedEdge[string, int]{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 1},
		{From: "B", To: "D", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})
	res, err := dijkstra.Dijkstra[string, struct{}, struct{}, int](g, "A")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	d, path, err := res.PathTo("D")
	if err != nil {
		t.Fatalf("PathTo(D): %v", err)
	}
	if d != 2 {
		t.Errorf("dist[D] = %d, want 2", d)
	}
	if len(path) != 3 || path[1] != "B" {
		t.Errorf("path = %v, want [A B D]", path)
	}
}

func TestDijkstra_UnreachableKeepsUnknown(t *testing.T) {
	g, _ := graph.DirectedFromWeightedEdges[string, struct{}, struct{}, int](graph.Simple, []graph.WeightedEdge[string, int]{
		{From: "A", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})
	res, err := dijkstra.Dijkstra[string, struct{}, struct{}, int](g, "A")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	id, _ := g.NodeID("D")
	if res.Reached[id] {
		t.Error("D must stay unreached")
	}
	if res.Prev[id] != core.NoNode {
		t.Errorf("Prev[D] = %d, want NoNode", res.Prev[id])
	}
}

func TestDijkstra_FloatWeights(t *testing.T) {
	g, _ := graph.UndirectedFromWeightedEdges[string, struct{}, struct{}, float64](graph.Simple, []graph.WeightedEdge[string, float64]{
		{From: "A", To: "B", Weight: 0.5},
		{From: "B", To: "C", Weight: 0.25},
		{From: "A", To: "C", Weight: 1.0},
	})
	res, err := dijkstra.Dijkstra[string, struct{}, struct{}, float64](g, "A")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if d, ok := res.DistTo("C"); !ok || d != 0.75 {
		t.Errorf("dist[C] = %v (ok=%v), want 0.75", d, ok)
	}
}

// ------------------------------------------------------------------------
// 3. Backend independence: the same run over every storage backend.
// ------------------------------------------------------------------------

func TestDijkstra_NineNodeScenarioAcrossBackends(t *testing.T) {
	def := storage.NewDefinition[string, struct{}, struct{}, int]()
	add := func(from, to string, w int) {
		f := def.AddNode(from, struct{}{})
		t2 := def.AddNode(to, struct{}{})
		def.AddWeightedEdge(f, t2, struct{}{}, w)
	}
	add("s", "u", 10)
	add("s", "x", 5)
	add("u", "x", 2)
	add("x", "u", 3)
	add("u", "v", 1)
	add("x", "v", 9)
	add("x", "y", 2)
	add("v", "y", 4)
	add("y", "v", 6)
	add("y", "s", 7)

	backends := map[string]core.WeightedGraph[string, struct{}, struct{}, int]{
		"definition": def,
		"list":       storage.NewAdjacencyListFromDefinition(def),
		"dual":       storage.NewAdjacencyDualFromDefinition(def),
		"matrix":     storage.NewAdjacencyMatrixFromDefinition(def),
	}
	for name, g := range backends {
		t.Run(name, func(t *testing.T) {
			res, err := dijkstra.Dijkstra[string, struct{}, struct{}, int](g, "s")
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			w, path, err := res.PathTo("v")
			if err != nil {
				t.Fatalf("PathTo(v): %v", err)
			}
			if w != 9 {
				t.Errorf("dist[v] = %d, want 9", w)
			}
			want := []string{"s", "x", "u", "v"}
			if len(path) != len(want) {
				t.Fatalf("path = %v, want %v", path, want)
			}
			for i := range want {
				if path[i] != want[i] {
					t.Fatalf("path = %v, want %v", path, want)
				}
			}
		})
	}
}
