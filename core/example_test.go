package core_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/grafold/core"
)

// ExampleGraph_Connect shows weight accumulation: repeated connects
// reinforce one edge instead of duplicating it.
func ExampleGraph_Connect() {
	g := core.NewGraph[string]()
	g.Connect("A", "B", 2)
	g.Connect("A", "B", 3)

	w, _ := g.EdgeWeight("A", "B")
	fmt.Println("A-B weight:", w)

	total, _ := g.CountEdge()
	fmt.Println("total weight:", total)
	// Output:
	// A-B weight: 5
	// total weight: 5
}

// ExampleGraph_Collapse contracts one triangle corner into another:
//
//	    A
//	   / \
//	  2   5
//	 /     \
//	B---3---C
//
// Folding A into B removes the direct A-B edge and merges A's side of
// the triangle into the surviving B-C edge.
func ExampleGraph_Collapse() {
	g := core.NewGraph[string]()
	g.Connect("A", "B", 2)
	g.Connect("B", "C", 3)
	g.Connect("C", "A", 5)

	if err := g.Collapse("A", "B"); err != nil {
		fmt.Println("collapse:", err)
		return
	}
	fmt.Print(g)
	// Output:
	// A [unvisited]
	// B [unvisited] -> C(8, 1)
	// C [unvisited] -> B(8, 1)
}

// ExampleGraph_Display dumps a directed graph in first-seen vertex
// order with ascending edge lists.
func ExampleGraph_Display() {
	g := core.NewGraph[string](core.WithDirected(true))
	g.Connect("web", "db", 3)
	g.Connect("web", "cache", 1, core.WithDistance(0.5))

	g.Display(os.Stdout)
	// Output:
	// web [unvisited] -> cache(1, 0.5) -> db(3, 1)
	// db [unvisited]
	// cache [unvisited]
}
