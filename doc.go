// Package gridpath finds shortest paths on uniform 2-D grids with
// impassable cells.
//
// What is gridpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid topology: 4-directional adjacency, passability, regions, BFS distance
//		• Best-first search: Manhattan-guided A* with a lazy-deletion heap
//		• Obstacle masks: random by density, or parsed from text
//		• Rendering: plain text frames and tcell terminal screens
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/    — Coordinate, Grid, adjacency, regions, distance oracle, masks
//	astar/        — FindPath / Search / SearchAsync, options, Result
//	render/       — ASCII and tcell drawing of a grid and its path
//	config/       — GRIDPATH_* environment and .env loading
//	cmd/gridpath/ — demo command tying the pieces together
//
// Quick ASCII example (S start, G goal, # wall, * path):
//
//	S***
//	###*
//	...G
//
//	go run github.com/katalvlaran/gridpath/cmd/gridpath -rows 15 -cols 30
package gridpath
