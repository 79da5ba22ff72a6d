// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Components identifies walkable regions of a small map.
// Scenario:
//
//   - '#' cells are walls, '.' cells are floor.
//   - The wall column splits the map into a left and a right room.
func ExampleGrid_Components() {
	rows, cols, mask, _ := gridgraph.ParseMask([]string{
		"..#.",
		"..#.",
	})
	g, _ := gridgraph.NewGrid(rows, cols, mask)

	for i, comp := range g.Components() {
		fmt.Printf("region %d:", i)
		for _, c := range comp {
			fmt.Printf(" %v", c)
		}
		fmt.Println()
	}

	// Output:
	// region 0: (0,0) (1,0) (0,1) (1,1)
	// region 1: (3,0) (3,1)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Distance
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Distance measures the walking distance around a wall.
func ExampleGrid_Distance() {
	rows, cols, mask, _ := gridgraph.ParseMask([]string{
		"...",
		"##.",
		"...",
	})
	g, _ := gridgraph.NewGrid(rows, cols, mask)

	d, err := g.Distance(gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Coordinate{X: 0, Y: 2})
	fmt.Println(d, err)

	// Output:
	// 6 <nil>
}
