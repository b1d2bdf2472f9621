// Package formats reads wall grids from disk and writes generated meshes.
//
// Supported inputs are YAML grid documents and layers of Tiled TMX maps.
// Meshes are exported as Wavefront OBJ.
package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/marching-squares/pkg/squares"
)

// Grid document errors.
var (
	ErrEmptyGrid   = errors.New("formats: grid has no rows")
	ErrRaggedGrid  = errors.New("formats: grid rows differ in length")
	ErrInvalidCell = errors.New("formats: invalid grid cell")
)

// DefaultCellSize is used when a document omits cell_size.
const DefaultCellSize float32 = 1

// Cell characters. Parsing also accepts '1' for walls and '0' or ' ' for
// empty cells.
const (
	WallCell  = '#'
	EmptyCell = '.'
)

// Grid is a YAML grid document:
//
//	cell_size: 1
//	rows:
//	  - "#..."
//	  - "##.."
//
// Row 0 is the top row of the map.
type Grid struct {
	CellSize float32  `yaml:"cell_size,omitempty"`
	Rows     []string `yaml:"rows"`
}

// ParseGrid decodes and validates a grid document.
func ParseGrid(data []byte) (*Grid, error) {
	var g Grid
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode grid: %w", err)
	}
	if g.CellSize == 0 {
		g.CellSize = DefaultCellSize
	}
	if g.CellSize < 0 {
		return nil, fmt.Errorf("%w: cell_size %v", ErrInvalidCell, g.CellSize)
	}
	if _, err := g.Values(); err != nil {
		return nil, err
	}
	return &g, nil
}

// ReadGrid parses a grid document from r.
func ReadGrid(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return ParseGrid(data)
}

// NewGrid builds a document from cell values, values[y][x] with row 0 on top.
func NewGrid(values [][]uint8, cellSize float32) (*Grid, error) {
	if len(values) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{CellSize: cellSize, Rows: make([]string, len(values))}
	for y, row := range values {
		var sb strings.Builder
		for x, v := range row {
			switch v {
			case 0:
				sb.WriteByte(EmptyCell)
			case 1:
				sb.WriteByte(WallCell)
			default:
				return nil, fmt.Errorf("%w: value %d at row %d column %d", ErrInvalidCell, v, y, x)
			}
		}
		g.Rows[y] = sb.String()
	}
	if _, err := g.Values(); err != nil {
		return nil, err
	}
	return g, nil
}

// Values returns the cell values, values[y][x].
func (g *Grid) Values() ([][]uint8, error) {
	if len(g.Rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(g.Rows[0])
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	values := make([][]uint8, len(g.Rows))
	for y, row := range g.Rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), width)
		}
		values[y] = make([]uint8, width)
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case WallCell, '1':
				values[y][x] = 1
			case EmptyCell, '0', ' ':
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrInvalidCell, row[x], y, x)
			}
		}
	}
	return values, nil
}

// Source lays the document out as a source grid for squares.BuildGrid.
func (g *Grid) Source() (*squares.SourceGrid, error) {
	values, err := g.Values()
	if err != nil {
		return nil, err
	}
	cellSize := g.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}
	return squares.NewSourceGrid(values, cellSize)
}

// EncodeGrid writes g as a YAML document.
func EncodeGrid(w io.Writer, g *Grid) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode grid: %w", err)
	}
	return enc.Close()
}

// MarshalGrid returns g as YAML bytes.
func MarshalGrid(g *Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeGrid(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
