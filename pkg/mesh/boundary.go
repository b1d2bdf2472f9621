package mesh

import (
	"github.com/Faultbox/marching-squares/pkg/math"
	"github.com/Faultbox/marching-squares/pkg/squares"
)

// enclosedPositions collects the positions of all solid corners. In rounded
// geometry every solid corner is surrounded by fans on all sides, so it never
// lies on the solid/empty boundary.
func enclosedPositions(grid *squares.Grid) map[posKey]struct{} {
	enclosed := make(map[posKey]struct{})
	grid.Each(func(_, _ int, sq *squares.Square) {
		for _, s := range [4]squares.Slot{tl, tr, br, bl} {
			if c := sq.Corner(s); c.Solid() {
				enclosed[quantize(c.Position)] = struct{}{}
			}
		}
	})
	return enclosed
}

// boundaryRuns splits a closed fan polygon into runs of consecutive vertices
// outside the enclosed set. Runs shorter than two points are dropped.
func boundaryRuns(polygon []math.Vec3, enclosed map[posKey]struct{}) []Polyline {
	isEnclosed := func(p math.Vec3) bool {
		_, ok := enclosed[quantize(p)]
		return ok
	}

	start := -1
	for i, p := range polygon {
		if isEnclosed(p) {
			start = i
			break
		}
	}
	if start < 0 {
		if len(polygon) < 2 {
			return nil
		}
		line := make(Polyline, len(polygon))
		for i, p := range polygon {
			line[i] = p.XZ()
		}
		return []Polyline{line}
	}

	var runs []Polyline
	var current Polyline
	n := len(polygon)
	for k := 1; k <= n; k++ {
		p := polygon[(start+k)%n]
		if isEnclosed(p) {
			if len(current) >= 2 {
				runs = append(runs, current)
			}
			current = nil
			continue
		}
		current = append(current, p.XZ())
	}
	return runs
}

// ExtractBoundaryPolylines returns the boundary polylines of the rounded
// triangulation of grid. Options.Mode is ignored. Polylines are not merged
// across squares.
func ExtractBoundaryPolylines(grid *squares.Grid, opts Options) ([]Polyline, error) {
	opts.Mode = ModeRounded
	m, err := Triangulate(grid, opts)
	if err != nil {
		return nil, err
	}
	return m.Boundaries, nil
}
