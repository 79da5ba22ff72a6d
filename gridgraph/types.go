// Package gridgraph defines the coordinate, cell and grid types shared by
// the search and rendering packages of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Coordinate identifies a grid cell by column X and row Y.
// A valid Coordinate satisfies 0 ≤ X < Columns and 0 ≤ Y < Rows.
type Coordinate struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|, the unit-step distance between
// two cells when only cardinal moves are allowed.
// Complexity: O(1).
func Manhattan(a, b Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell is the static part of one grid position.
// Blocked mirrors the obstacle mask; Neighbors holds the in-bounds cardinal
// neighbors in N, E, S, W order. Both are fixed for the Grid's lifetime.
type Cell struct {
	Blocked   bool
	Neighbors []Coordinate
}

// Grid is an immutable rows×columns topology built from an obstacle mask.
// Cells are stored row-major: index = y*Columns + x.
type Grid struct {
	Rows, Columns int
	cells         []Cell
}

// cardinalOffsets lists the 4-directional moves in N, E, S, W order.
// The order is part of the deterministic tie-break contract of the search.
var cardinalOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
