// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/trapgrid/trapgrid/grid"
	"github.com/trapgrid/trapgrid/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath demonstrates solving a small classified board: a single
// trap at the center forces the route around it, paying the danger penalty
// on the way in and out of the hazard ring.
// Scenario:
//
//   - 3×3 board, trap at (1,1), danger zone on its four neighbors
//   - Optimal cost is 6: two dangerous steps (2 each) and two empty (1 each)
func ExampleFindPath() {
	g, _ := grid.FromCells([][]int{
		{0, 2, 0},
		{2, 1, 2},
		{0, 2, 0},
	})

	res, _ := search.FindPath(g)

	cost := 0
	for _, c := range res.Path[1:] {
		cost += g.CostOfEntering(c.X, c.Y)
	}
	fmt.Println("found:", res.Found())
	fmt.Println("length:", res.Stats.PathLength)
	fmt.Println("cost:", cost)
	fmt.Println("pruned:", res.Stats.Pruned > 0)

	// Output:
	// found: true
	// length: 5
	// cost: 6
	// pruned: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: no path
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath_noPath demonstrates the normal-failure contract: a trap
// wall across the board yields an empty path and populated statistics,
// without any error.
func ExampleFindPath_noPath() {
	g, _ := grid.FromCells([][]int{
		{2, 2, 2, 2},
		{1, 1, 1, 1},
		{2, 2, 2, 2},
		{0, 0, 0, 0},
	})

	res, err := search.FindPath(g)
	fmt.Println("err:", err)
	fmt.Println("found:", res.Found())
	fmt.Println("path length:", res.Stats.PathLength)

	// Output:
	// err: <nil>
	// found: false
	// path length: 0
}
