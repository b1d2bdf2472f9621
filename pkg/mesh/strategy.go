package mesh

import (
	"fmt"

	"github.com/Faultbox/marching-squares/pkg/squares"
)

// strategyKind tags how a configuration is triangulated in rounded mode.
type strategyKind int

const (
	strategyEmpty strategyKind = iota
	strategyQuad
	strategyHalf
	strategySaddle
	strategyConvexArc
	strategyConcaveArc
)

func (k strategyKind) String() string {
	switch k {
	case strategyEmpty:
		return "empty"
	case strategyQuad:
		return "quad"
	case strategyHalf:
		return "half"
	case strategySaddle:
		return "saddle"
	case strategyConvexArc:
		return "convex-arc"
	case strategyConcaveArc:
		return "concave-arc"
	default:
		return "unknown"
	}
}

// arcSpec describes a rounded corner: the corner the arc is centred on, the
// quadrant it sweeps and the node the arc fan is anchored to.
type arcSpec struct {
	center squares.Slot
	side   CornerSide
	pivot  squares.Slot
}

// strategy is one row of the rounded dispatch table. Every fan is an
// ordered convex polygon, clockwise in the (X, Z) plane, triangulated from
// its first node.
type strategy struct {
	kind strategyKind
	fans [][]squares.Slot
	// saddle holds the fans of a saddle square per policy. It replaces fans.
	saddle map[squares.SaddlePolicy][][]squares.Slot
	arc    *arcSpec
}

// fansFor returns the fans to emit under the given saddle policy.
func (st *strategy) fansFor(policy squares.SaddlePolicy) ([][]squares.Slot, error) {
	if st.kind != strategySaddle {
		return st.fans, nil
	}
	fans, ok := st.saddle[policy]
	if !ok {
		return nil, fmt.Errorf("%w: %v", squares.ErrUnknownSaddlePolicy, policy)
	}
	return fans, nil
}

const (
	tl = squares.SlotTopLeft
	tr = squares.SlotTopRight
	br = squares.SlotBottomRight
	bl = squares.SlotBottomLeft
	tc = squares.SlotTopCenter
	rc = squares.SlotRightCenter
	bc = squares.SlotBottomCenter
	lc = squares.SlotLeftCenter
)

// roundedStrategies is indexed by configuration.
var roundedStrategies = [squares.NumConfigurations]strategy{
	0: {kind: strategyEmpty},

	1: {kind: strategyConvexArc, arc: &arcSpec{center: tl, side: SideBottomRight, pivot: tl}},
	2: {kind: strategyConvexArc, arc: &arcSpec{center: tr, side: SideBottomLeft, pivot: tr}},
	4: {kind: strategyConvexArc, arc: &arcSpec{center: br, side: SideTopLeft, pivot: br}},
	8: {kind: strategyConvexArc, arc: &arcSpec{center: bl, side: SideTopRight, pivot: bl}},

	3:  {kind: strategyHalf, fans: [][]squares.Slot{{tl, tr, rc, lc}}},
	6:  {kind: strategyHalf, fans: [][]squares.Slot{{tc, tr, br, bc}}},
	9:  {kind: strategyHalf, fans: [][]squares.Slot{{tl, tc, bc, bl}}},
	12: {kind: strategyHalf, fans: [][]squares.Slot{{lc, rc, br, bl}}},

	5: {kind: strategySaddle, saddle: map[squares.SaddlePolicy][][]squares.Slot{
		squares.SaddleConnectCenter: {{tl, tc, rc, br, bc, lc}},
		squares.SaddleSeparate:      {{tl, tc, lc}, {br, bc, rc}},
	}},
	10: {kind: strategySaddle, saddle: map[squares.SaddlePolicy][][]squares.Slot{
		squares.SaddleConnectCenter: {{tr, rc, bc, bl, lc, tc}},
		squares.SaddleSeparate:      {{tr, rc, tc}, {bl, lc, bc}},
	}},

	7: {
		kind: strategyConcaveArc,
		fans: [][]squares.Slot{{tr, lc, tl}, {tr, br, bc}},
		arc:  &arcSpec{center: bl, side: SideTopRight, pivot: tr},
	},
	11: {
		kind: strategyConcaveArc,
		fans: [][]squares.Slot{{tl, bc, bl}, {tl, tr, rc}},
		arc:  &arcSpec{center: br, side: SideTopLeft, pivot: tl},
	},
	13: {
		kind: strategyConcaveArc,
		fans: [][]squares.Slot{{bl, tl, tc}, {bl, rc, br}},
		arc:  &arcSpec{center: tr, side: SideBottomLeft, pivot: bl},
	},
	14: {
		kind: strategyConcaveArc,
		fans: [][]squares.Slot{{br, tc, tr}, {br, bl, lc}},
		arc:  &arcSpec{center: tl, side: SideBottomRight, pivot: br},
	},

	15: {kind: strategyQuad, fans: [][]squares.Slot{{tl, tr, br, bl}}},
}
