package gridgraph

import (
	"fmt"
	"math/rand"
)

// Text mask symbols accepted by ParseMask.
const (
	SymbolBlocked = '#'
	SymbolOpen    = '.'
)

// RandomMask samples a rows×columns obstacle mask where every cell is
// blocked independently with probability density. A nil rng is replaced by
// a source seeded with 1, so results stay reproducible.
// Returns ErrInvalidDimensions or ErrInvalidDensity for bad arguments.
// Complexity: O(rows×columns).
func RandomMask(rows, columns int, density float64, rng *rand.Rand) ([][]bool, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, columns)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidDensity, density)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	mask := make([][]bool, rows)
	for y := range mask {
		mask[y] = make([]bool, columns)
		for x := range mask[y] {
			mask[y][x] = rng.Float64() < density
		}
	}
	return mask, nil
}

// ParseMask reads a text mask, one string per row, where '#' is blocked and
// '.' is open. All rows must have the same length.
// Returns the dimensions together with the mask.
func ParseMask(lines []string) (rows, columns int, mask [][]bool, err error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return 0, 0, nil, fmt.Errorf("%w: empty mask", ErrInvalidDimensions)
	}
	rows, columns = len(lines), len(lines[0])
	mask = make([][]bool, rows)
	for y, line := range lines {
		if len(line) != columns {
			return 0, 0, nil, fmt.Errorf("%w: line %d has %d symbols, want %d",
				ErrInvalidDimensions, y, len(line), columns)
		}
		mask[y] = make([]bool, columns)
		for x := 0; x < columns; x++ {
			switch line[x] {
			case SymbolBlocked:
				mask[y][x] = true
			case SymbolOpen:
			default:
				return 0, 0, nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidSymbol, line[x], x, y)
			}
		}
	}
	return rows, columns, mask, nil
}
