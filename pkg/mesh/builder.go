package mesh

import (
	gomath "math"

	"github.com/Faultbox/marching-squares/pkg/atlas"
	"github.com/Faultbox/marching-squares/pkg/math"
	"github.com/Faultbox/marching-squares/pkg/squares"
)

// weldEpsilon is the quantization step for position keys.
const weldEpsilon = 0.001

type posKey [3]int64

func quantize(p math.Vec3) posKey {
	return posKey{
		int64(gomath.Round(float64(p.X) / weldEpsilon)),
		int64(gomath.Round(float64(p.Y) / weldEpsilon)),
		int64(gomath.Round(float64(p.Z) / weldEpsilon)),
	}
}

// builder accumulates one triangulation pass.
type builder struct {
	opts Options
	mesh *Mesh

	// Per-square state, reset by begin.
	square *squares.Square
	rect   atlas.Rect
	origin math.Vec2
	extent math.Vec2
	slots  [squares.NumSlots]int64

	// welded maps positions to vertex indices across the pass.
	welded map[posKey]uint32
	// enclosed holds the solid corner positions. Nil when boundaries are
	// not tracked.
	enclosed map[posKey]struct{}

	hasBounds bool
}

func newBuilder(grid *squares.Grid, opts Options) *builder {
	b := &builder{
		opts: opts,
		mesh: &Mesh{},
	}
	if opts.WeldVertices {
		b.welded = make(map[posKey]uint32)
	}
	if opts.Mode == ModeRounded {
		b.enclosed = enclosedPositions(grid)
	}
	return b
}

// begin resets the per-square slot table and UV mapping.
func (b *builder) begin(sq *squares.Square) {
	b.square = sq
	b.rect = atlas.TileRect(int(sq.Configuration()))
	b.origin = sq.BottomLeft.Position.XZ()
	b.extent = sq.Extent()
	if b.extent.X == 0 {
		b.extent.X = 1
	}
	if b.extent.Y == 0 {
		b.extent.Y = 1
	}
	for i := range b.slots {
		b.slots[i] = -1
	}
}

// localUV maps a position to the atlas cell of the current square.
func (b *builder) localUV(p math.Vec3) math.Vec2 {
	local := p.XZ().Sub(b.origin)
	local = math.Vec2{X: local.X / b.extent.X, Y: local.Y / b.extent.Y}
	return b.rect.Map(local)
}

// vertex appends a vertex, or returns the welded index for its position.
func (b *builder) vertex(p math.Vec3, uv math.Vec2) uint32 {
	var key posKey
	if b.welded != nil {
		key = quantize(p)
		if idx, ok := b.welded[key]; ok {
			return idx
		}
	}

	idx := uint32(len(b.mesh.Vertices))
	b.mesh.Vertices = append(b.mesh.Vertices, p)
	b.mesh.UVs = append(b.mesh.UVs, uv)
	b.updateBounds(p)

	if b.welded != nil {
		b.welded[key] = idx
	}
	return idx
}

// slot returns the vertex of a node of the current square, emitting it the
// first time the square references it.
func (b *builder) slot(s squares.Slot, uv func(math.Vec3) math.Vec2) uint32 {
	if idx := b.slots[s]; idx >= 0 {
		return uint32(idx)
	}
	p := b.square.Node(s)
	idx := b.vertex(p, uv(p))
	b.slots[s] = int64(idx)
	return idx
}

func (b *builder) triangle(i0, i1, i2 uint32) {
	b.mesh.Indices = append(b.mesh.Indices, i0, i1, i2)
}

// fan triangulates an ordered polygon from its first vertex and records the
// boundary runs of the polygon.
func (b *builder) fan(indices []uint32) error {
	if len(indices) < 3 {
		return ErrDegenerateTriangulation
	}
	for i := 1; i+1 < len(indices); i++ {
		b.triangle(indices[0], indices[i], indices[i+1])
	}
	if b.enclosed != nil {
		positions := make([]math.Vec3, len(indices))
		for i, idx := range indices {
			positions[i] = b.mesh.Vertices[idx]
		}
		b.mesh.Boundaries = append(b.mesh.Boundaries, boundaryRuns(positions, b.enclosed)...)
	}
	return nil
}

func (b *builder) updateBounds(p math.Vec3) {
	if !b.hasBounds {
		b.mesh.Bounds = Bounds{Min: p, Max: p}
		b.hasBounds = true
		return
	}
	b.mesh.Bounds.Min = b.mesh.Bounds.Min.Min(p)
	b.mesh.Bounds.Max = b.mesh.Bounds.Max.Max(p)
}
