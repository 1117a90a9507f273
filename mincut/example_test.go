package mincut_test

import (
	"fmt"

	"github.com/katalvlaran/grafold/core"
	"github.com/katalvlaran/grafold/mincut"
)

// ExampleMinCut estimates the minimum cut of a ring network:
//
//	c0 - c1 - c2
//	|         |
//	c5 - c4 - c3
//
// Cutting a ring anywhere severs exactly two links, and contraction
// finds that no matter how the random picks fall.
func ExampleMinCut() {
	g := core.NewGraph[string]()
	ring := []string{"c0", "c1", "c2", "c3", "c4", "c5"}
	for i := range ring {
		g.Connect(ring[i], ring[(i+1)%len(ring)], 1)
	}

	res, err := mincut.MinCut(g, mincut.WithTrials(8), mincut.WithSeed(1))
	if err != nil {
		fmt.Println("mincut:", err)
		return
	}
	fmt.Println("min cut:", res.Weight)
	fmt.Println("trials:", res.Trials)
	// Output:
	// min cut: 2
	// trials: 8
}
