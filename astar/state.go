package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// searchState holds the per-cell bookkeeping of one search, indexed by the
// grid's row-major cell index. It is allocated fresh for every call.
//
// A cell with discovered == false has unknown cost; g, h and f are only
// meaningful once discovered is set.
type searchState struct {
	g          []int  // best known cost from start
	h          []int  // Manhattan estimate to goal
	f          []int  // g + h, frontier priority
	discovered []bool // g/h/f hold a real value
	closed     []bool // excluded from further relaxation
	expanded   []bool // popped and expanded; later frontier entries are stale
	pred       []int  // index of the predecessor on the best known path
}

func newSearchState(n int) *searchState {
	return &searchState{
		g:          make([]int, n),
		h:          make([]int, n),
		f:          make([]int, n),
		discovered: make([]bool, n),
		closed:     make([]bool, n),
		expanded:   make([]bool, n),
		pred:       make([]int, n),
	}
}

// improves reports whether reaching cell i with cost g and estimate h would
// lower its priority, or whether i has never been discovered.
func (s *searchState) improves(i, g, h int) bool {
	return !s.discovered[i] || g+h < s.f[i]
}

// record stores a new best route to cell i through predecessor from.
// A closed cell is never updated.
func (s *searchState) record(i, from, g, h int) {
	if s.closed[i] {
		return
	}
	s.g[i] = g
	s.h[i] = h
	s.f[i] = g + h
	s.pred[i] = from
	s.discovered[i] = true
}

// heuristic is the Manhattan distance, admissible and consistent for unit
// cardinal steps.
func heuristic(c, goal gridgraph.Coordinate) int {
	return gridgraph.Manhattan(c, goal)
}
