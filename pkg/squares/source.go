package squares

import (
	"fmt"

	"github.com/Faultbox/marching-squares/pkg/math"
)

// SourceCell is one input sample: a cell value and its world position.
type SourceCell struct {
	Position math.Vec3
	Value    uint8
}

// SourceGrid is a dense, row-major grid of input samples.
// Row 0 is the top row of the map.
type SourceGrid struct {
	Width  int
	Height int
	Cells  []SourceCell
}

// NewSourceGrid lays values out on a regular lattice with the given spacing.
// values[y][x] is the cell in row y (top first) and column x. World X grows
// with the column, world Z grows towards the top row and Y is zero.
func NewSourceGrid(values [][]uint8, cellSize float32) (*SourceGrid, error) {
	height := len(values)
	if height == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimension)
	}
	width := len(values[0])

	src := &SourceGrid{
		Width:  width,
		Height: height,
		Cells:  make([]SourceCell, width*height),
	}
	for y, row := range values {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, y, len(row), width)
		}
		for x, v := range row {
			src.Cells[y*width+x] = SourceCell{
				Position: math.Vec3{
					X: float32(x) * cellSize,
					Z: float32(height-1-y) * cellSize,
				},
				Value: v,
			}
		}
	}
	return src, nil
}

// InBounds reports whether (x, y) addresses a cell.
func (g *SourceGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the cell at (x, y). The caller must check bounds.
func (g *SourceGrid) At(x, y int) SourceCell {
	return g.Cells[y*g.Width+x]
}

// Set overwrites the cell at (x, y).
func (g *SourceGrid) Set(x, y int, cell SourceCell) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: cell (%d, %d) not in %dx%d", ErrIndexOutOfRange, x, y, g.Width, g.Height)
	}
	g.Cells[y*g.Width+x] = cell
	return nil
}

// Solid returns the number of wall cells.
func (g *SourceGrid) Solid() int {
	n := 0
	for _, c := range g.Cells {
		if c.Value == 1 {
			n++
		}
	}
	return n
}
