package gridgraph

import (
	"container/list"
	"fmt"
)

// Distance returns the minimum number of cardinal steps from one passable
// cell to another, moving only through passable cells.
//
// Behavior:
//  1. Validate both coordinates (ErrOutOfBounds).
//  2. Blocked endpoints are unreachable (ErrUnreachable).
//  3. Plain BFS from `from`; every step costs 1.
//  4. Stop as soon as `to` is dequeued.
//
// Complexity: O(W·H) time, O(W·H) memory for the distance table.
func (g *Grid) Distance(from, to Coordinate) (int, error) {
	if err := g.CheckBounds(from, to); err != nil {
		return 0, err
	}
	if g.Blocked(from) || g.Blocked(to) {
		return 0, fmt.Errorf("%w: %v→%v has a blocked endpoint", ErrUnreachable, from, to)
	}

	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	src, dst := g.Index(from), g.Index(to)
	dist[src] = 0

	q := list.New()
	q.PushBack(src)
	for q.Len() > 0 {
		e := q.Front()
		q.Remove(e)
		u := e.Value.(int)
		if u == dst {
			return dist[u], nil
		}
		for _, n := range g.cells[u].Neighbors {
			v := g.Index(n)
			if g.cells[v].Blocked || dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			q.PushBack(v)
		}
	}

	return 0, fmt.Errorf("%w: %v→%v", ErrUnreachable, from, to)
}
