package hierholzer_test

import (
	"fmt"

	"github.com/dkravets/graphtk/hierholzer"
	"github.com/dkravets/graphtk/storage"
)

// ExampleHierholzer walks an Eulerian circuit over a bow-tie multigraph
// built from raw single-record storage.
func ExampleHierholzer() {
	def := storage.NewDefinition[string, struct{}, struct{}, int]()
	add := func(a, b string) {
		u := def.AddNode(a, struct{}{})
		v := def.AddNode(b, struct{}{})
		def.AddEdge(u, v, struct{}{})
	}
	// Two triangles sharing the node m: every degree is even.
	add("m", "a")
	add("a", "b")
	add("b", "m")
	add("m", "c")
	add("c", "d")
	add("d", "m")

	res, err := hierholzer.Hierholzer[string, struct{}, struct{}, int](def)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("steps=%d closed=%v\n", len(res.Circuit)-1, res.Circuit[0] == res.Circuit[len(res.Circuit)-1])
	// Output: steps=6 closed=true
}
