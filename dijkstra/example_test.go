// Package dijkstra_test provides runnable examples for the lightest-path
// engine. Each example is executable via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/dkravets/graphtk/dijkstra"
	"github.com/dkravets/graphtk/graph"
)

// ExampleDijkstra_triangle computes distances on a small undirected
// triangle. The indirect route A→B→C at weight 3 beats the direct edge.
func ExampleDijkstra_triangle() {
	// 1) Build a simple undirected graph from weighted key pairs.
	g, err := graph.UndirectedFromWeightedEdges[string, struct{}, struct{}, int](graph.Simple, []graph.WeightedEdge[string, int]{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 5},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 2) Run from "A" and read distances back by key.
	res, err := dijkstra.Dijkstra[string, struct{}, struct{}, int](g, "A")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	db, _ := res.DistTo("B")
	dc, _ := res.DistTo("C")
	fmt.Printf("dist[B]=%d, dist[C]=%d\n", db, dc)
	// Output: dist[B]=1, dist[C]=3
}

// ExampleResult_PathTo reconstructs the lightest route on a directed
// graph with competing paths and parallel-arc shortcuts.
func ExampleResult_PathTo() {
	g, err := graph.DirectedFromWeightedEdges[string, struct{}, struct{}, int](graph.Pseudo, []graph.WeightedEdge[string, int]{
		{From: "s", To: "u", Weight: 10},
		{From: "s", To: "x", Weight: 5},
		{From: "u", To: "x", Weight: 2},
		{From: "x", To: "u", Weight: 3},
		{From: "u", To: "v", Weight: 1},
		{From: "x", To: "v", Weight: 9},
		{From: "x", To: "y", Weight: 2},
		{From: "v", To: "y", Weight: 4},
		{From: "y", To: "v", Weight: 6},
		{From: "y", To: "s", Weight: 7},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := dijkstra.Dijkstra[string, struct{}, struct{}, int](g, "s")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	w, path, err := res.PathTo("v")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("weight=%d path=%v\n", w, path)
	// Output: weight=9 path=[s x u v]
}
