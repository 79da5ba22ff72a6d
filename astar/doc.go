// Package astar finds a shortest path between two cells of a uniform 2-D
// grid with impassable cells, using best-first search guided by the
// Manhattan distance.
//
// Moves are the four cardinal steps, each costing 1. The search keeps a
// binary-heap frontier of (priority, cell) entries and uses lazy deletion:
// improving a cell pushes a new entry, and outdated entries are dropped
// when popped.
//
// Complexity:
//
//   - Time:  O(W×H log(W×H)).
//   - Space: O(W×H) for per-cell state; the frontier holds at most one entry
//     per relaxation.
//
// Behavior:
//
//   - Default (reference) mode closes every neighbor the first time it is
//     examined and accepts the goal as soon as it is discovered. Each cell is
//     relaxed at most once. On open grids the result is shortest; around
//     obstacles it can be longer than the shortest path, but a path is found
//     whenever one exists.
//   - Canonical() switches to textbook A*: cells close when popped and the
//     goal is accepted when popped, giving shortest paths.
//   - Ties on priority go to the smaller heuristic, then to the entry pushed
//     first. Neighbors are examined in N, E, S, W order, so identical inputs
//     give identical paths.
//   - Paths are rebuilt from the predecessor links recorded during search.
//
// Errors (sentinel):
//
//   - ErrNoPathFound       frontier exhausted, or an endpoint is blocked.
//   - ErrReconstructionGap predecessor chain broken (internal inconsistency).
//   - ErrNilGrid           nil grid passed to Search.
//   - gridgraph.ErrInvalidDimensions / gridgraph.ErrOutOfBounds from input validation.
//
// Example usage:
//
//	res, err := astar.FindPath(3, 3, mask,
//	    gridgraph.Coordinate{X: 0, Y: 0},
//	    gridgraph.Coordinate{X: 2, Y: 2},
//	)
//	if errors.Is(err, astar.ErrNoPathFound) {
//	    // render nothing
//	}
//	fmt.Println(res.Path, res.Cost)
package astar
