// Package render draws a grid and a discovered path, either as plain text
// or onto a tcell screen.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Symbols used by ASCII and Draw.
const (
	SymbolOpen    = '.'
	SymbolBlocked = '#'
	SymbolPath    = '*'
	SymbolStart   = 'S'
	SymbolGoal    = 'G'
)

// Styles for Draw: gray floor, dark-gray walls, gold path.
var (
	StyleOpen    = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorBlack)
	StyleBlocked = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorBlack)
	StylePath    = tcell.StyleDefault.Background(tcell.ColorGold).Foreground(tcell.ColorBlack)
	StyleStart   = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	StyleGoal    = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
)

// Frame is one picture: the grid, the path to highlight (may be nil when the
// search failed) and the two endpoints.
type Frame struct {
	Grid        *gridgraph.Grid
	Path        []gridgraph.Coordinate
	Start, Goal gridgraph.Coordinate
}

// cell returns the symbol and style for c. Endpoints win over the path,
// the path wins over the floor.
func (f Frame) cell(c gridgraph.Coordinate, onPath map[gridgraph.Coordinate]bool) (rune, tcell.Style) {
	switch {
	case c == f.Start:
		return SymbolStart, StyleStart
	case c == f.Goal:
		return SymbolGoal, StyleGoal
	case f.Grid.Blocked(c):
		return SymbolBlocked, StyleBlocked
	case onPath[c]:
		return SymbolPath, StylePath
	default:
		return SymbolOpen, StyleOpen
	}
}

func (f Frame) pathSet() map[gridgraph.Coordinate]bool {
	set := make(map[gridgraph.Coordinate]bool, len(f.Path))
	for _, c := range f.Path {
		set[c] = true
	}
	return set
}

// ASCII renders the frame one line per row, each line ending in '\n'.
func ASCII(f Frame) string {
	onPath := f.pathSet()
	var b strings.Builder
	b.Grow((f.Grid.Columns + 1) * f.Grid.Rows)
	for y := 0; y < f.Grid.Rows; y++ {
		for x := 0; x < f.Grid.Columns; x++ {
			r, _ := f.cell(gridgraph.Coordinate{X: x, Y: y}, onPath)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Draw paints the frame onto screen starting at its top-left corner, one
// terminal column per grid column, and shows it. Cells beyond the screen
// size are clipped.
func Draw(screen tcell.Screen, f Frame) {
	onPath := f.pathSet()
	w, h := screen.Size()
	screen.Clear()
	for y := 0; y < f.Grid.Rows && y < h; y++ {
		for x := 0; x < f.Grid.Columns && x < w; x++ {
			r, style := f.cell(gridgraph.Coordinate{X: x, Y: y}, onPath)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}

// DrawStatus writes a one-line message under the grid, clipped to the
// screen width.
func DrawStatus(screen tcell.Screen, f Frame, msg string) {
	w, h := screen.Size()
	y := f.Grid.Rows + 1
	if y >= h {
		return
	}
	for x, r := range []rune(msg) {
		if x >= w {
			break
		}
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}
