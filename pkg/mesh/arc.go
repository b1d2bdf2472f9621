package mesh

import (
	gomath "math"

	"github.com/Faultbox/marching-squares/pkg/math"
)

// CornerSide names the quadrant an arc sweeps, seen from its centre.
type CornerSide int

// Quadrants, counter-clockwise angle ranges from +X in the (X, Z) plane.
const (
	SideTopLeft     CornerSide = iota // [90°, 180°]
	SideTopRight                      // [0°, 90°]
	SideBottomRight                   // [270°, 360°]
	SideBottomLeft                    // [180°, 270°]
)

// Angles returns the start and end angle of the quadrant in radians.
func (s CornerSide) Angles() (from, to float64) {
	switch s {
	case SideTopLeft:
		return gomath.Pi / 2, gomath.Pi
	case SideTopRight:
		return 0, gomath.Pi / 2
	case SideBottomRight:
		return 3 * gomath.Pi / 2, 2 * gomath.Pi
	default:
		return gomath.Pi, 3 * gomath.Pi / 2
	}
}

// ArcPoints returns steps+1 points on the quarter circle of the given radius
// around center, counter-clockwise from the start of the quadrant.
// Steps below one are treated as one.
func ArcPoints(center math.Vec2, radius float32, steps int, side CornerSide) []math.Vec2 {
	steps = max(1, steps)
	from, to := side.Angles()
	step := (to - from) / float64(steps)

	points := make([]math.Vec2, steps+1)
	for i := range points {
		points[i] = center.Polar(radius, from+float64(i)*step)
	}
	return points
}
