package gridgraph

import "errors"

var (
	// ErrInvalidDimensions indicates non-positive dimensions or an obstacle
	// mask whose shape differs from rows×columns.
	ErrInvalidDimensions = errors.New("gridgraph: obstacle mask must be rows×columns with rows, columns > 0")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrUnreachable indicates no passable route exists between two cells.
	ErrUnreachable = errors.New("gridgraph: cells are not connected")
	// ErrInvalidDensity indicates an obstacle density outside [0,1].
	ErrInvalidDensity = errors.New("gridgraph: obstacle density must be within [0,1]")
	// ErrInvalidSymbol indicates a character other than '#' or '.' in a text mask.
	ErrInvalidSymbol = errors.New("gridgraph: mask symbol must be '#' or '.'")
)
