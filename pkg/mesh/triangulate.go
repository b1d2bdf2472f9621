package mesh

import (
	"fmt"

	"github.com/Faultbox/marching-squares/pkg/squares"
)

// Triangulate builds a fresh mesh for grid.
func Triangulate(grid *squares.Grid, opts Options) (*Mesh, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", squares.ErrInvalidDimension)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	b := newBuilder(grid, opts)
	emit := b.rounded
	if opts.Mode == ModeSharp {
		emit = b.sharp
	}

	var err error
	grid.Each(func(x, y int, sq *squares.Square) {
		if err != nil {
			return
		}
		if e := emit(sq); e != nil {
			err = fmt.Errorf("square (%d, %d) configuration %v: %w", x, y, sq.Configuration(), e)
		}
	})
	if err != nil {
		return nil, err
	}
	return b.mesh, nil
}
