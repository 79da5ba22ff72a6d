package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// reconstruct follows predecessor links from goal back to start and returns
// the path in start→goal order, both ends included.
//
// Every link is checked: the predecessor must have been discovered, be a
// passable cardinal neighbor, and have a strictly smaller g. Since g strictly
// decreases and is never negative, the walk always terminates. Any broken
// link yields ErrReconstructionGap instead of a truncated path.
func reconstruct(grid *gridgraph.Grid, st *searchState, start, goal int) ([]gridgraph.Coordinate, error) {
	path := []gridgraph.Coordinate{grid.Coordinate(goal)}

	for cur := goal; cur != start; {
		at := grid.Coordinate(cur)
		if !st.discovered[cur] {
			return nil, fmt.Errorf("%w: %v was never reached", ErrReconstructionGap, at)
		}
		prev := st.pred[cur]
		pc := grid.Coordinate(prev)
		if !grid.Adjacent(pc, at) || grid.Blocked(pc) {
			return nil, fmt.Errorf("%w: predecessor %v of %v is not a passable neighbor", ErrReconstructionGap, pc, at)
		}
		if !st.discovered[prev] || st.g[prev] >= st.g[cur] {
			return nil, fmt.Errorf("%w: cost does not decrease from %v (g=%d) to %v (g=%d)",
				ErrReconstructionGap, at, st.g[cur], pc, st.g[prev])
		}
		path = append(path, pc)
		cur = prev
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
