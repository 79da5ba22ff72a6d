package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func benchGrid(b *testing.B, n int, density float64) *gridgraph.Grid {
	b.Helper()
	mask, err := gridgraph.RandomMask(n, n, density, rand.New(rand.NewSource(42)))
	if err != nil {
		b.Fatalf("setup RandomMask failed: %v", err)
	}
	mask[0][0], mask[n-1][n-1] = false, false
	g, err := gridgraph.NewGrid(n, n, mask)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	return g
}

// BenchmarkSearch_Reference measures the default mode on a 500×500 grid.
// Complexity: O(W×H log(W×H))
func BenchmarkSearch_Reference(b *testing.B) {
	const n = 500
	g := benchGrid(b, n, 0.25)
	start, goal := gridgraph.Coordinate{}, gridgraph.Coordinate{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, goal)
	}
}

// BenchmarkSearch_Canonical measures textbook A* on the same grid.
func BenchmarkSearch_Canonical(b *testing.B) {
	const n = 500
	g := benchGrid(b, n, 0.25)
	start, goal := gridgraph.Coordinate{}, gridgraph.Coordinate{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, goal, astar.Canonical())
	}
}
