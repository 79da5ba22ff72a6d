package gridgraph

// Components finds all contiguous regions of passable cells under
// 4-connectivity. Regions are returned in row-major order of their first
// cell; cells inside a region are in BFS discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]Coordinate {
	seen := make([]bool, len(g.cells))
	var comps [][]Coordinate

	for i0, cell := range g.cells {
		if cell.Blocked || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Coordinate

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, g.Coordinate(u))
			for _, n := range g.cells[u].Neighbors {
				vi := g.Index(n)
				if g.cells[vi].Blocked || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether a and b are passable cells of the same region.
// Out-of-bounds or blocked endpoints are never connected.
// Complexity: O(W·H) worst case.
func (g *Grid) Connected(a, b Coordinate) bool {
	if g.Blocked(a) || g.Blocked(b) {
		return false
	}
	_, err := g.Distance(a, b)
	return err == nil
}
