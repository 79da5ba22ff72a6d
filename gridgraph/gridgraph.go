package gridgraph

import "fmt"

// NewGrid builds a Grid from a rows×columns obstacle mask indexed
// obstacles[y][x]; true marks a blocked cell. Every cell receives the list
// of in-bounds cardinal neighbors, so adjacency is symmetric by construction.
// Returns ErrInvalidDimensions (wrapped) when rows or columns are not
// positive or when the mask shape differs from rows×columns.
// Complexity: O(rows×columns) time and memory.
func NewGrid(rows, columns int, obstacles [][]bool) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, columns)
	}
	if len(obstacles) != rows {
		return nil, fmt.Errorf("%w: mask has %d rows, want %d", ErrInvalidDimensions, len(obstacles), rows)
	}
	for y, row := range obstacles {
		if len(row) != columns {
			return nil, fmt.Errorf("%w: mask row %d has %d columns, want %d",
				ErrInvalidDimensions, y, len(row), columns)
		}
	}

	g := &Grid{
		Rows:    rows,
		Columns: columns,
		cells:   make([]Cell, rows*columns),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			neighbors := make([]Coordinate, 0, len(cardinalOffsets))
			for _, d := range cardinalOffsets {
				n := Coordinate{X: x + d[0], Y: y + d[1]}
				if g.InBounds(n) {
					neighbors = append(neighbors, n)
				}
			}
			g.cells[y*columns+x] = Cell{
				Blocked:   obstacles[y][x],
				Neighbors: neighbors,
			}
		}
	}

	return g, nil
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Columns && c.Y >= 0 && c.Y < g.Rows
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index maps c to its row-major index y*Columns + x.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coordinate) int {
	return c.Y*g.Columns + c.X
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.Columns, Y: idx / g.Columns}
}

// Cell returns the static cell at c. The Neighbors slice is shared and
// must not be modified.
func (g *Grid) Cell(c Coordinate) Cell {
	return g.cells[g.Index(c)]
}

// Blocked reports whether c is an obstacle. Out-of-bounds coordinates are
// reported as blocked.
func (g *Grid) Blocked(c Coordinate) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.cells[g.Index(c)].Blocked
}

// Neighbors returns the in-bounds cardinal neighbors of c in N, E, S, W
// order, blocked cells included.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	return g.cells[g.Index(c)].Neighbors
}

// Adjacent reports whether a and b are both in bounds and exactly one
// cardinal step apart.
func (g *Grid) Adjacent(a, b Coordinate) bool {
	return g.InBounds(a) && g.InBounds(b) && Manhattan(a, b) == 1
}

// CheckBounds returns ErrOutOfBounds, wrapped with the offending coordinate,
// for the first coordinate outside the grid.
func (g *Grid) CheckBounds(cs ...Coordinate) error {
	for _, c := range cs {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, c, g.Rows, g.Columns)
		}
	}
	return nil
}
