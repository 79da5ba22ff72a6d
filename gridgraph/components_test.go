// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

func mustParse(t *testing.T, lines ...string) *Grid {
	t.Helper()
	rows, cols, mask, err := ParseMask(lines)
	if err != nil {
		t.Fatalf("ParseMask failed: %v", err)
	}
	g, err := NewGrid(rows, cols, mask)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

// TestComponents_Simple tests Components on a 4×3 grid.
//
// Grid (. = open, # = blocked):
//
//	#..#
//	..##
//	##..
//
// Expected: 2 regions of sizes 4 and 2.
func TestComponents_Simple(t *testing.T) {
	g := mustParse(t,
		"#..#",
		"..##",
		"##..",
	)

	comps := g.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if comps[0][0] != (Coordinate{X: 1, Y: 0}) {
		t.Errorf("first region starts at %v; want (1,0)", comps[0][0])
	}
}

// TestComponents_DiagonalDoesNotConnect checks that corner-touching open
// cells are separate regions under 4-connectivity.
//
//	.#
//	#.
func TestComponents_DiagonalDoesNotConnect(t *testing.T) {
	g := mustParse(t,
		".#",
		"#.",
	)
	if n := len(g.Components()); n != 2 {
		t.Errorf("got %d components; want 2", n)
	}
	if g.Connected(Coordinate{0, 0}, Coordinate{1, 1}) {
		t.Error("diagonal cells reported connected")
	}
}

// TestComponents_EdgeCases covers all-blocked and single-open grids.
func TestComponents_EdgeCases(t *testing.T) {
	if n := len(mustParse(t, "##", "##").Components()); n != 0 {
		t.Errorf("all-blocked: got %d components; want 0", n)
	}
	comps := mustParse(t, "#.").Components()
	if len(comps) != 1 || len(comps[0]) != 1 {
		t.Errorf("single open: got %v; want one region of size 1", comps)
	}
}

// TestConnected separates a grid with a full blocked column.
func TestConnected(t *testing.T) {
	g := mustParse(t,
		".#.",
		".#.",
		".#.",
	)
	if !g.Connected(Coordinate{0, 0}, Coordinate{0, 2}) {
		t.Error("same side reported disconnected")
	}
	if g.Connected(Coordinate{0, 0}, Coordinate{2, 2}) {
		t.Error("opposite sides reported connected")
	}
	if g.Connected(Coordinate{1, 0}, Coordinate{1, 0}) {
		t.Error("blocked cell reported connected to itself")
	}
	if g.Connected(Coordinate{0, 0}, Coordinate{9, 9}) {
		t.Error("out-of-bounds cell reported connected")
	}
}
