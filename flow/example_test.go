// Package flow_test provides runnable examples for the max-flow engine.
package flow_test

import (
	"fmt"

	"github.com/dkravets/graphtk/flow"
)

// ExampleFordFulkerson computes the maximum flow of a small diamond
// network and inspects the retained trace.
func ExampleFordFulkerson() {
	// 1) Build the network from (from, to, flow, capacity) tuples.
	net, err := flow.FromArcs([]flow.Arc[string]{
		{From: "s", To: "a", Capacity: 4},
		{From: "s", To: "b", Capacity: 2},
		{From: "a", To: "b", Capacity: 1},
		{From: "a", To: "t", Capacity: 3},
		{From: "b", To: "t", Capacity: 3},
	}, "s", "t")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 2) Run the augmenting loop.
	res, err := flow.FordFulkerson(net)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 3) The trace holds one step per iteration, terminal step included.
	fmt.Printf("maxflow=%d augmentations=%d\n", res.MaxFlow, len(res.Steps)-1)
	// Output: maxflow=6 augmentations=3
}
