package mesh

import (
	"github.com/Faultbox/marching-squares/pkg/atlas"
	"github.com/Faultbox/marching-squares/pkg/math"
	"github.com/Faultbox/marching-squares/pkg/squares"
)

const (
	uvTR = atlas.CornerTopRight
	uvTL = atlas.CornerTopLeft
	uvBR = atlas.CornerBottomRight
	uvBL = atlas.CornerBottomLeft
)

// sharpIdentity samples each atlas corner at the matching square corner.
var sharpIdentity = [4]atlas.Corner{uvTL, uvTR, uvBR, uvBL}

// sharpUVs lists, per configuration, the atlas corner sampled by the square's
// TL, TR, BR and BL vertex. Rows rotate the tile so its wall side faces the
// solid corners. Configurations without a row use sharpIdentity.
var sharpUVs = map[squares.Configuration][4]atlas.Corner{
	1:  {uvBL, uvTL, uvTR, uvBR},
	2:  {uvTR, uvBR, uvBL, uvTL},
	3:  {uvBR, uvBL, uvTL, uvTR},
	4:  {uvTR, uvBR, uvBL, uvTL},
	6:  {uvTR, uvBR, uvBL, uvTL},
	7:  {uvTR, uvBR, uvBL, uvTL},
	8:  {uvBL, uvTL, uvTR, uvBR},
	9:  {uvBL, uvTL, uvTR, uvBR},
	11: {uvBR, uvBL, uvTL, uvTR},
	12: sharpIdentity,
	13: {uvBL, uvTL, uvTR, uvBR},
}

// SharpUVCorners returns the atlas corners sampled by a square's four
// corners in sharp mode.
func SharpUVCorners(c squares.Configuration) [4]atlas.Corner {
	if row, ok := sharpUVs[c]; ok {
		return row
	}
	return sharpIdentity
}

// sharp emits the square as a quad. Edge nodes are never used.
func (b *builder) sharp(sq *squares.Square) error {
	cfg := sq.Configuration()
	if cfg == 0 {
		return nil
	}
	b.begin(sq)

	corners := SharpUVCorners(cfg)
	var idx [4]uint32
	for i, s := range [4]squares.Slot{tl, tr, br, bl} {
		uv := b.rect.Corner(corners[i])
		idx[i] = b.slot(s, func(math.Vec3) math.Vec2 { return uv })
	}

	b.triangle(idx[0], idx[1], idx[2])
	b.triangle(idx[0], idx[2], idx[3])
	return nil
}
