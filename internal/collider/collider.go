// Package collider turns mesh boundary polylines into a resolv collision
// space, one line-shaped object per polyline segment.
package collider

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/solarlune/resolv"

	"github.com/Faultbox/marching-squares/pkg/math"
	"github.com/Faultbox/marching-squares/pkg/mesh"
)

// ErrInvalidOptions is returned for a non-positive scale or cell size.
var ErrInvalidOptions = errors.New("collider: invalid options")

// Defaults for Options.
const (
	DefaultScale    = 16.0
	DefaultCellSize = 16
	DefaultTag      = "wall"
)

// Options configures the collision space.
type Options struct {
	// Scale converts world units to space units.
	Scale float64
	// CellSize is the spatial hash cell size in space units.
	CellSize int
	// Tag is attached to every wall object.
	Tag string
}

// DefaultOptions returns 16 space units per world unit, 16-unit cells and
// the "wall" tag.
func DefaultOptions() Options {
	return Options{Scale: DefaultScale, CellSize: DefaultCellSize, Tag: DefaultTag}
}

// Segment is one boundary edge in world (X, Z) coordinates.
type Segment struct {
	A, B math.Vec2
}

// World is a resolv space holding the boundary segments. Space coordinates
// have Y pointing down: world Z is flipped around the top of the bounds.
type World struct {
	space   *resolv.Space
	objects []*resolv.Object
	opts    Options

	// World-space corner that maps to the space origin, minus one cell of
	// padding.
	originX float64
	originZ float64
	padding float64
}

// Build creates a world with one object per polyline segment. Zero-length
// segments are skipped. An empty input gives an empty world.
func Build(polylines []mesh.Polyline, opts Options) (*World, error) {
	if opts.Scale <= 0 || opts.CellSize <= 0 {
		return nil, fmt.Errorf("%w: scale %v cell size %d", ErrInvalidOptions, opts.Scale, opts.CellSize)
	}
	if opts.Tag == "" {
		opts.Tag = DefaultTag
	}

	minX, minZ := gomath.Inf(1), gomath.Inf(1)
	maxX, maxZ := gomath.Inf(-1), gomath.Inf(-1)
	for _, line := range polylines {
		for _, p := range line {
			minX = gomath.Min(minX, float64(p.X))
			maxX = gomath.Max(maxX, float64(p.X))
			minZ = gomath.Min(minZ, float64(p.Y))
			maxZ = gomath.Max(maxZ, float64(p.Y))
		}
	}
	if gomath.IsInf(minX, 1) {
		minX, maxX, minZ, maxZ = 0, 0, 0, 0
	}

	pad := float64(opts.CellSize)
	w := &World{
		opts:    opts,
		originX: minX,
		originZ: maxZ,
		padding: pad,
	}
	width := int(gomath.Ceil((maxX-minX)*opts.Scale+2*pad)) + 1
	height := int(gomath.Ceil((maxZ-minZ)*opts.Scale+2*pad)) + 1
	w.space = resolv.NewSpace(width, height, opts.CellSize, opts.CellSize)

	for _, line := range polylines {
		for i := 0; i+1 < len(line); i++ {
			seg := Segment{A: line[i], B: line[i+1]}
			if seg.A == seg.B {
				continue
			}
			w.add(seg)
		}
	}
	return w, nil
}

func (w *World) add(seg Segment) {
	ax, ay := w.ToSpace(seg.A)
	bx, by := w.ToSpace(seg.B)
	x, y := gomath.Min(ax, bx), gomath.Min(ay, by)

	obj := resolv.NewObject(x, y, gomath.Abs(bx-ax), gomath.Abs(by-ay), w.opts.Tag)
	obj.SetShape(resolv.NewConvexPolygon(ax-x, ay-y, bx-x, by-y))
	obj.Data = seg
	w.space.Add(obj)
	w.objects = append(w.objects, obj)
}

// ToSpace converts a world (X, Z) point to space coordinates.
func (w *World) ToSpace(p math.Vec2) (x, y float64) {
	x = (float64(p.X)-w.originX)*w.opts.Scale + w.padding
	y = (w.originZ-float64(p.Y))*w.opts.Scale + w.padding
	return x, y
}

// Space returns the underlying resolv space.
func (w *World) Space() *resolv.Space {
	return w.space
}

// Objects returns the wall objects in insertion order.
func (w *World) Objects() []*resolv.Object {
	return w.objects
}

// Len returns the number of wall objects.
func (w *World) Len() int {
	return len(w.objects)
}

// Segments returns the world-space segment of every wall object.
func (w *World) Segments() []Segment {
	segs := make([]Segment, len(w.objects))
	for i, obj := range w.objects {
		segs[i] = obj.Data.(Segment)
	}
	return segs
}

// Overlaps reports whether any wall segment crosses the world-space
// rectangle with bottom-left corner (x, z) and size (width, height).
func (w *World) Overlaps(x, z, width, height float32) bool {
	if len(w.objects) == 0 {
		return false
	}
	sx, sy := w.ToSpace(math.Vec2{X: x, Y: z + height})
	query := resolv.NewObject(sx, sy, float64(width)*w.opts.Scale, float64(height)*w.opts.Scale)
	w.space.Add(query)
	defer w.space.Remove(query)

	check := query.Check(0, 0, w.opts.Tag)
	if check == nil {
		return false
	}
	minP := math.Vec2{X: x, Y: z}
	maxP := math.Vec2{X: x + width, Y: z + height}
	for _, obj := range check.Objects {
		seg, ok := obj.Data.(Segment)
		if ok && seg.intersectsRect(minP, maxP) {
			return true
		}
	}
	return false
}

// intersectsRect clips the segment against an axis-aligned rectangle
// (Liang-Barsky).
func (s Segment) intersectsRect(minP, maxP math.Vec2) bool {
	t0, t1 := 0.0, 1.0
	d := s.B.Sub(s.A)
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = gomath.Max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = gomath.Min(t1, r)
		}
		return true
	}
	return clip(-float64(d.X), float64(s.A.X-minP.X)) &&
		clip(float64(d.X), float64(maxP.X-s.A.X)) &&
		clip(-float64(d.Y), float64(s.A.Y-minP.Y)) &&
		clip(float64(d.Y), float64(maxP.Y-s.A.Y)) &&
		t0 <= t1
}
