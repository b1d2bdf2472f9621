// Package squares builds the marching-squares topology: control nodes, the
// evaluation squares between them and their 4-bit configuration codes.
//
// A Grid is built once from a SourceGrid and is read-only afterwards. Each
// square owns copies of its nodes; neighbouring squares never share node
// instances even when their positions coincide.
package squares

import "fmt"

// Grid is the (W-1) x (H-1) array of evaluation squares of a W x H source.
type Grid struct {
	width   int
	height  int
	squares []Square
}

// BuildGrid creates the square grid for src.
func BuildGrid(src *SourceGrid) (*Grid, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidDimension)
	}
	if src.Width < 2 || src.Height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, src.Width, src.Height)
	}
	if len(src.Cells) != src.Width*src.Height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidDimension, len(src.Cells), src.Width, src.Height)
	}

	g := &Grid{
		width:   src.Width - 1,
		height:  src.Height - 1,
		squares: make([]Square, (src.Width-1)*(src.Height-1)),
	}

	for y := range g.height {
		for x := range g.width {
			sq, err := NewSquare(
				corner(src.At(x, y)),
				corner(src.At(x+1, y)),
				corner(src.At(x+1, y+1)),
				corner(src.At(x, y+1)),
			)
			if err != nil {
				return nil, fmt.Errorf("square (%d, %d): %w", x, y, err)
			}
			g.squares[y*g.width+x] = sq
		}
	}

	return g, nil
}

func corner(c SourceCell) CornerNode {
	return CornerNode{Position: c.Position, Value: c.Value}
}

// Width returns the number of square columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of square rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of squares.
func (g *Grid) Len() int {
	return len(g.squares)
}

// Square returns a copy of the square at (x, y).
func (g *Grid) Square(x, y int) (Square, error) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Square{}, fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrIndexOutOfRange, x, y, g.width, g.height)
	}
	return g.squares[y*g.width+x], nil
}

// Each calls fn for every square in row-major order. The square must not
// be retained or modified.
func (g *Grid) Each(fn func(x, y int, sq *Square)) {
	for y := range g.height {
		for x := range g.width {
			fn(x, y, &g.squares[y*g.width+x])
		}
	}
}

// ConfigurationCounts returns how many squares use each configuration.
func (g *Grid) ConfigurationCounts() [NumConfigurations]int {
	var counts [NumConfigurations]int
	for i := range g.squares {
		counts[g.squares[i].configuration]++
	}
	return counts
}
