// Package gridgraph treats a rectangular grid with impassable cells as a
// graph for 4-directional pathfinding.
//
// What:
//
//   - Grid wraps a rows×columns obstacle mask (true = blocked).
//   - Every cell carries its in-bounds N/E/S/W neighbors, precomputed once.
//   - Identifies connected regions of passable cells.
//   - Computes unit-cost BFS distances between passable cells.
//   - Supplies obstacle masks: random by density, or parsed from text.
//
// Why:
//
//   - Game maps: walkable-area detection and reachability checks.
//   - Search drivers (see package astar) need a fixed adjacency to expand.
//   - Tests need a distance oracle to verify optimality of heuristic search.
//
// Complexity:
//
//   - NewGrid:    O(W×H), Memory: O(W×H).
//   - Components: O(W×H), Memory: O(W×H).
//   - Distance:   O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive size or mask shape mismatch.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrUnreachable: no passable route between two cells.
//   - ErrInvalidDensity: random mask density outside [0,1].
//   - ErrInvalidSymbol: text mask contains something other than '#' or '.'.
package gridgraph
