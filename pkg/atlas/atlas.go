// Package atlas maps marching-squares configurations onto cells of a 4x4
// tile atlas texture.
package atlas

import "github.com/Faultbox/marching-squares/pkg/math"

// Columns is the number of tiles per atlas row (and column).
const Columns = 4

// Aspect is the UV size of one atlas cell.
const Aspect float32 = 1.0 / Columns

// DefaultIndex is used for configuration 0 and out-of-range codes.
const DefaultIndex = 12

// tileIndex lists the atlas cell drawn for each configuration.
var tileIndex = [16]int{
	0:  DefaultIndex,
	1:  13,
	2:  14,
	3:  15,
	4:  8,
	5:  9,
	6:  10,
	7:  11,
	8:  4,
	9:  5,
	10: 6,
	11: 7,
	12: 0,
	13: 1,
	14: 2,
	15: 3,
}

// Corner names a corner of an atlas cell.
type Corner int

// Cell corners. The order matches the sprite UV order used by the sharp
// triangulation tables.
const (
	CornerTopRight Corner = iota
	CornerTopLeft
	CornerBottomRight
	CornerBottomLeft
)

// Rect is the tiling (Scale) and offset of one atlas cell in UV space.
type Rect struct {
	Scale  math.Vec2
	Offset math.Vec2
}

// TileIndex returns the atlas cell index for a configuration.
func TileIndex(configuration int) int {
	if configuration < 0 || configuration >= len(tileIndex) {
		return DefaultIndex
	}
	return tileIndex[configuration]
}

// TileRect returns the tiling and offset of the cell for a configuration.
func TileRect(configuration int) Rect {
	return RectForIndex(TileIndex(configuration))
}

// RectForIndex returns the rect of atlas cell index (row-major, row 0 at V=0).
func RectForIndex(index int) Rect {
	return Rect{
		Scale: math.Vec2{X: Aspect, Y: Aspect},
		Offset: math.Vec2{
			X: float32(index%Columns) * Aspect,
			Y: float32(index/Columns) * Aspect,
		},
	}
}

// Map transforms a local [0,1] square coordinate into the atlas cell.
func (r Rect) Map(local math.Vec2) math.Vec2 {
	return local.Mul(r.Scale).Add(r.Offset)
}

// Corner returns the UV of a corner of the cell.
func (r Rect) Corner(c Corner) math.Vec2 {
	switch c {
	case CornerTopRight:
		return r.Map(math.Vec2{X: 1, Y: 1})
	case CornerTopLeft:
		return r.Map(math.Vec2{X: 0, Y: 1})
	case CornerBottomRight:
		return r.Map(math.Vec2{X: 1, Y: 0})
	default:
		return r.Map(math.Vec2{X: 0, Y: 0})
	}
}

// Contains reports whether uv lies inside the cell, allowing eps slack.
func (r Rect) Contains(uv math.Vec2, eps float32) bool {
	return uv.X >= r.Offset.X-eps && uv.X <= r.Offset.X+r.Scale.X+eps &&
		uv.Y >= r.Offset.Y-eps && uv.Y <= r.Offset.Y+r.Scale.Y+eps
}
