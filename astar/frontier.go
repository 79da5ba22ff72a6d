package astar

// entry is a (priority, cell) pair held in the frontier. Several entries may
// exist for the same cell; only the one matching the cell's current priority
// is live.
type entry struct {
	cell     int // row-major cell index
	priority int // f = g + h at push time
	h        int // heuristic at push time, first tie-breaker
	seq      int // insertion order, second tie-breaker
}

// frontier is a min-heap of *entry ordered by priority, then by lower h
// (closer to goal), then by earlier insertion. The ordering is total, so the
// search is deterministic for equal inputs.
type frontier []*entry

// Len returns the number of entries in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders entries by priority, h, then seq.
func (q frontier) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}

// Swap swaps two entries.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds an entry. Called by heap.Push.
func (q *frontier) Push(x interface{}) { *q = append(*q, x.(*entry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
