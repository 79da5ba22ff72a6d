package astar

import (
	"context"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Outcome is the single value delivered by SearchAsync.
type Outcome struct {
	Result Result
	Err    error
}

// SearchAsync runs Search on its own goroutine and delivers the outcome
// through a one-shot channel that is closed after the value is sent.
// The channel is buffered, so the goroutine never blocks if the caller
// stops listening.
//
// ctx is checked once before the search starts; a search already running is
// not interrupted.
func SearchAsync(ctx context.Context, grid *gridgraph.Grid, start, goal gridgraph.Coordinate, opts ...Option) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		if err := ctx.Err(); err != nil {
			out <- Outcome{Result: Result{Status: Failed}, Err: err}
			return
		}
		res, err := Search(grid, start, goal, opts...)
		out <- Outcome{Result: res, Err: err}
	}()

	return out
}
