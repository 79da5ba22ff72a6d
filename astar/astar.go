package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FindPath builds a fresh Grid from the rows×columns obstacle mask
// (obstacles[y][x], true = blocked) and searches it from start to goal.
// No state survives between calls.
//
// Errors:
//   - gridgraph.ErrInvalidDimensions if the mask does not match rows×columns.
//   - see Search for the rest.
//
// Complexity: O(W×H) to build the grid plus the cost of Search.
func FindPath(rows, columns int, obstacles [][]bool, start, goal gridgraph.Coordinate, opts ...Option) (Result, error) {
	grid, err := gridgraph.NewGrid(rows, columns, obstacles)
	if err != nil {
		return Result{Status: Failed}, fmt.Errorf("astar: %w", err)
	}

	return Search(grid, start, goal, opts...)
}

// Search runs a best-first search guided by the Manhattan heuristic over
// grid, from start to goal, with unit step cost and cardinal moves only.
//
// Returns the path from start to goal inclusive. On exhaustion the Result
// carries Status Failed and the expansion count, together with
// ErrNoPathFound.
//
// Preconditions and validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. start and goal must be in bounds (gridgraph.ErrOutOfBounds).
//  3. start and goal must be passable (ErrNoPathFound).
//  4. with WithReachabilityCheck, start and goal must share a region (ErrNoPathFound).
//
// Options customization:
//
//   - WithClosing(p):        when neighbors leave consideration.
//   - WithGoalTest(t):       accept the goal on discovery or on expansion.
//   - Canonical():           textbook A*.
//   - WithReachabilityCheck: fail fast on disconnected endpoints.
//
// Complexity:
//
//   - Time:  O(W×H log(W×H))
//   - Space: O(W×H), frontier included.
func Search(grid *gridgraph.Grid, start, goal gridgraph.Coordinate, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if grid == nil {
		return Result{Status: Failed}, ErrNilGrid
	}
	if err := grid.CheckBounds(start, goal); err != nil {
		return Result{Status: Failed}, fmt.Errorf("astar: %w", err)
	}
	if grid.Blocked(start) || grid.Blocked(goal) {
		return Result{Status: Failed}, fmt.Errorf("%w: endpoint blocked (start %v, goal %v)", ErrNoPathFound, start, goal)
	}
	if cfg.ReachabilityCheck && !grid.Connected(start, goal) {
		return Result{Status: Failed}, fmt.Errorf("%w: %v and %v lie in different regions", ErrNoPathFound, start, goal)
	}

	r := &runner{
		grid:    grid,
		options: cfg,
		start:   grid.Index(start),
		goal:    grid.Index(goal),
		goalAt:  goal,
		state:   newSearchState(grid.Len()),
		pq:      make(frontier, 0, grid.Columns+grid.Rows),
		status:  Running,
	}
	r.init()

	return r.process()
}

// runner holds the mutable state of a single search.
type runner struct {
	grid     *gridgraph.Grid
	options  Options
	start    int                  // row-major index of start
	goal     int                  // row-major index of goal
	goalAt   gridgraph.Coordinate // goal coordinate, for the heuristic
	state    *searchState
	pq       frontier
	seq      int // next insertion sequence number
	expanded int
	status   Status
}

// init records the start cell with g = 0 and pushes it onto the frontier.
// The start is its own predecessor.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.state.record(r.start, r.start, 0, heuristic(r.grid.Coordinate(r.start), r.goalAt))
	r.push(r.start)
}

// push adds a frontier entry carrying the cell's current priority.
func (r *runner) push(i int) {
	heap.Push(&r.pq, &entry{
		cell:     i,
		priority: r.state.f[i],
		h:        r.state.h[i],
		seq:      r.seq,
	})
	r.seq++
}

// process is the main loop: pop the lowest-priority live entry, close and
// expand it, until the goal is accepted or the frontier runs dry.
func (r *runner) process() (Result, error) {
	if r.start == r.goal {
		r.status = Succeeded
		return r.result()
	}

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*entry)
		u := item.cell

		// Lazy deletion: skip entries superseded by a better push or whose
		// cell was already expanded.
		if r.state.expanded[u] || item.priority != r.state.f[u] {
			continue
		}
		r.state.expanded[u] = true
		r.state.closed[u] = true
		r.expanded++

		if r.options.Goal == GoalOnExpansion && u == r.goal {
			r.status = Succeeded
			return r.result()
		}
		if r.relax(u) {
			r.status = Succeeded
			return r.result()
		}
	}

	r.status = Failed
	return Result{Expanded: r.expanded, Status: r.status},
		fmt.Errorf("%w: frontier exhausted after %d expansions", ErrNoPathFound, r.expanded)
}

// relax examines every neighbor of the expanded cell u. It reports true
// when the goal was accepted on discovery.
func (r *runner) relax(u int) bool {
	gu := r.state.g[u]
	for _, n := range r.grid.Neighbors(r.grid.Coordinate(u)) {
		v := r.grid.Index(n)

		if r.options.Goal == GoalOnDiscovery && v == r.goal {
			r.state.record(v, u, gu+1, 0)
			return true
		}
		if r.state.closed[v] {
			continue
		}
		// Blocked cells are closed on first encounter and never revisited.
		if r.grid.Blocked(n) {
			r.state.closed[v] = true
			continue
		}

		g, h := gu+1, heuristic(n, r.goalAt)
		if r.state.improves(v, g, h) {
			r.state.record(v, u, g, h)
			r.push(v)
		}
		if r.options.Closing == ClosingOnDiscovery {
			r.state.closed[v] = true
		}
	}

	return false
}

// result reconstructs the path for a successful search.
func (r *runner) result() (Result, error) {
	path, err := reconstruct(r.grid, r.state, r.start, r.goal)
	if err != nil {
		return Result{Expanded: r.expanded, Status: Failed}, err
	}

	return Result{
		Path:     path,
		Cost:     len(path) - 1,
		Expanded: r.expanded,
		Status:   r.status,
	}, nil
}
