package render_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

func frame(t *testing.T, lines ...string) render.Frame {
	t.Helper()
	rows, cols, mask, err := gridgraph.ParseMask(lines)
	require.NoError(t, err)
	g, err := gridgraph.NewGrid(rows, cols, mask)
	require.NoError(t, err)

	start, goal := gridgraph.Coordinate{}, gridgraph.Coordinate{X: cols - 1, Y: rows - 1}
	res, _ := astar.Search(g, start, goal)
	return render.Frame{Grid: g, Path: res.Path, Start: start, Goal: goal}
}

func TestASCII(t *testing.T) {
	f := frame(t,
		"....",
		"###.",
		"....",
	)
	require.Equal(t,
		"S***\n"+
			"###*\n"+
			"...G\n",
		render.ASCII(f))
}

func TestASCII_NoPath(t *testing.T) {
	f := frame(t,
		".#.",
		".#.",
	)
	require.Nil(t, f.Path)
	require.Equal(t, "S#.\n.#G\n", render.ASCII(f))
}

func TestDraw_SimulationScreen(t *testing.T) {
	f := frame(t,
		"...",
		"#..",
	)
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 5)

	render.Draw(screen, f)
	render.DrawStatus(screen, f, "ok")

	cells, width, _ := screen.GetContents()
	at := func(x, y int) tcell.SimCell { return cells[y*width+x] }

	require.Equal(t, []rune{render.SymbolStart}, at(0, 0).Runes)
	require.Equal(t, render.StyleStart, at(0, 0).Style)
	require.Equal(t, []rune{render.SymbolBlocked}, at(0, 1).Runes)
	require.Equal(t, render.StyleBlocked, at(0, 1).Style)
	require.Equal(t, []rune{render.SymbolGoal}, at(2, 1).Runes)
	require.Equal(t, render.StyleGoal, at(2, 1).Style)
	for _, c := range f.Path[1 : len(f.Path)-1] {
		require.Equal(t, []rune{render.SymbolPath}, at(c.X, c.Y).Runes, "path cell %v", c)
		require.Equal(t, render.StylePath, at(c.X, c.Y).Style)
	}
	require.Equal(t, []rune{'o'}, at(0, 3).Runes)
	require.Equal(t, []rune{'k'}, at(1, 3).Runes)
}

func TestDraw_ClipsToScreen(t *testing.T) {
	f := frame(t,
		"......",
		"......",
		"......",
	)
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(2, 2)

	require.NotPanics(t, func() {
		render.Draw(screen, f)
		render.DrawStatus(screen, f, "clipped")
	})
}
