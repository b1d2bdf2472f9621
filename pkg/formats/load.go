package formats

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/Faultbox/marching-squares/pkg/squares"
)

// LoadSource reads a grid file from fsys, choosing the format by extension:
// ".tmx" maps read the named tile layer, anything else is a YAML grid
// document. A positive cellSize overrides the spacing of the file.
func LoadSource(fsys fs.FS, name, layer string, cellSize float32) (*squares.SourceGrid, error) {
	var (
		src *squares.SourceGrid
		err error
	)
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		src, err = LoadTMXGrid(fsys, name, layer)
		if err != nil {
			return nil, err
		}
		if cellSize > 0 {
			if err := scaleSource(src, cellSize/DefaultCellSize); err != nil {
				return nil, fmt.Errorf("tmx %s: %w", name, err)
			}
		}
	default:
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read grid %s: %w", name, err)
		}
		g, err := ParseGrid(data)
		if err != nil {
			return nil, fmt.Errorf("grid %s: %w", name, err)
		}
		if cellSize > 0 {
			g.CellSize = cellSize
		}
		src, err = g.Source()
		if err != nil {
			return nil, fmt.Errorf("grid %s: %w", name, err)
		}
	}
	return src, nil
}

func scaleSource(src *squares.SourceGrid, factor float32) error {
	for y := range src.Height {
		for x := range src.Width {
			cell := src.At(x, y)
			cell.Position = cell.Position.Scale(factor)
			if err := src.Set(x, y, cell); err != nil {
				return err
			}
		}
	}
	return nil
}
