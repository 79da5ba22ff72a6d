package astar_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestSearchAsync_DeliversOnce(t *testing.T) {
	grid, err := gridgraph.NewGrid(4, 4, openMask(4, 4))
	require.NoError(t, err)

	ch := astar.SearchAsync(context.Background(), grid, xy{X: 0, Y: 0}, xy{X: 3, Y: 3}, astar.Canonical())
	select {
	case out := <-ch:
		require.NoError(t, out.Err)
		require.Equal(t, 6, out.Result.Cost)
	case <-time.After(5 * time.Second):
		t.Fatal("SearchAsync did not deliver")
	}

	_, ok := <-ch
	require.False(t, ok, "channel must be closed after the single outcome")
}

func TestSearchAsync_NoPath(t *testing.T) {
	rows, cols, mask := parse(t, ".#.")
	grid, err := gridgraph.NewGrid(rows, cols, mask)
	require.NoError(t, err)

	out := <-astar.SearchAsync(context.Background(), grid, xy{X: 0, Y: 0}, xy{X: 2, Y: 0})
	require.ErrorIs(t, out.Err, astar.ErrNoPathFound)
	require.Equal(t, astar.Failed, out.Result.Status)
}

func TestSearchAsync_CancelledBeforeStart(t *testing.T) {
	grid, err := gridgraph.NewGrid(2, 2, openMask(2, 2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := <-astar.SearchAsync(ctx, grid, xy{X: 0, Y: 0}, xy{X: 1, Y: 1})
	require.ErrorIs(t, out.Err, context.Canceled)
	require.Equal(t, astar.Failed, out.Result.Status)
}
