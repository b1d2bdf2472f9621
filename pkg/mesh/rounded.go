package mesh

import (
	"fmt"

	"github.com/Faultbox/marching-squares/pkg/math"
	"github.com/Faultbox/marching-squares/pkg/squares"
)

// rounded emits the fans and arcs of the square's strategy.
func (b *builder) rounded(sq *squares.Square) error {
	cfg := sq.Configuration()
	if !cfg.Valid() {
		return fmt.Errorf("%w: %d", squares.ErrInvalidConfiguration, uint8(cfg))
	}
	st := roundedStrategies[cfg]
	if st.kind == strategyEmpty {
		return nil
	}
	fans, err := st.fansFor(b.opts.Saddle)
	if err != nil {
		return err
	}
	b.begin(sq)

	for _, fan := range fans {
		indices := make([]uint32, len(fan))
		for i, s := range fan {
			indices[i] = b.slot(s, b.localUV)
		}
		if err := b.fan(indices); err != nil {
			return fmt.Errorf("%s fan %v: %w", st.kind, fan, err)
		}
	}

	if st.arc != nil {
		if err := b.arc(st.kind, st.arc); err != nil {
			return fmt.Errorf("%s arc: %w", st.kind, err)
		}
	}
	return nil
}

// arc tessellates a rounded corner and fans it against the pivot node.
//
// A convex corner is centred on its own solid corner and swept clockwise, so
// the fan covers a quarter disc. A concave corner is centred on the missing
// corner and swept counter-clockwise, so the fan fills the square up to the
// arc.
func (b *builder) arc(kind strategyKind, spec *arcSpec) error {
	center := b.square.Node(spec.center)
	points := ArcPoints(center.XZ(), b.radius(), b.opts.steps(), spec.side)
	if kind == strategyConvexArc {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	indices := make([]uint32, 0, len(points)+1)
	indices = append(indices, b.slot(spec.pivot, b.localUV))
	for _, p := range points {
		pos := math.FromXZ(p, center.Y)
		indices = append(indices, b.vertex(pos, b.localUV(pos)))
	}
	return b.fan(indices)
}

// radius returns the arc radius for the current square.
func (b *builder) radius() float32 {
	if b.opts.Radius > 0 {
		return b.opts.Radius
	}
	w, h := b.extent.X, b.extent.Y
	if w < 0 {
		w = -w
	}
	if h < 0 {
		h = -h
	}
	return min(w, h) / 2
}
