package formats

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/Faultbox/marching-squares/pkg/squares"
)

// ErrLayerNotFound is returned when a TMX map has no tile layer of the
// requested name.
var ErrLayerNotFound = errors.New("formats: tile layer not found")

// LoadTMXGrid reads a tile layer of a Tiled map as a wall grid. Every
// non-empty tile is a wall. Cells are one unit apart; scale with
// SourceGrid.Set or the collider options for pixel space.
func LoadTMXGrid(fsys fs.FS, path, layer string) (*squares.SourceGrid, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	for _, l := range levelMap.Layers {
		if l.Name != layer {
			continue
		}
		if len(l.Tiles) != levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("%w: layer %q has %d tiles for a %dx%d map",
				ErrRaggedGrid, layer, len(l.Tiles), levelMap.Width, levelMap.Height)
		}

		values := make([][]uint8, levelMap.Height)
		for y := range values {
			values[y] = make([]uint8, levelMap.Width)
			for x := range values[y] {
				if tile := l.Tiles[y*levelMap.Width+x]; tile != nil && !tile.IsNil() {
					values[y][x] = 1
				}
			}
		}
		return squares.NewSourceGrid(values, DefaultCellSize)
	}

	return nil, fmt.Errorf("%w: %q in %s", ErrLayerNotFound, layer, path)
}
