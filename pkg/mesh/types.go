// Package mesh triangulates a marching-squares grid into a flat vertex, UV
// and index buffer, and extracts the boundary polylines used for colliders.
//
// Two modes are supported. ModeSharp emits every non-empty square as a
// textured quad whose UVs are rotated per configuration. ModeRounded emits
// per-configuration fans over corner and edge nodes, rounds single and
// three-corner squares with tessellated quarter arcs, and records the
// solid/empty boundary of every fan.
//
// Vertices are emitted per square. Nodes shared by several fans of the same
// square are written once; positions shared with neighbouring squares are
// written again unless Options.WeldVertices is set.
package mesh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/marching-squares/pkg/math"
	"github.com/Faultbox/marching-squares/pkg/squares"
)

// Triangulation errors.
var (
	// ErrDegenerateTriangulation indicates a fan with fewer than three nodes.
	// It means a triangulation table is wrong, not that the input is.
	ErrDegenerateTriangulation = errors.New("mesh: fan needs at least three nodes")
	// ErrInvalidOptions indicates a negative step count or radius, or an
	// unknown saddle policy.
	ErrInvalidOptions = errors.New("mesh: invalid options")
	// ErrUnknownMode indicates a mode other than sharp or rounded.
	ErrUnknownMode = errors.New("mesh: unknown triangulation mode")
)

// Mode selects the triangulation variant.
type Mode int

// Triangulation modes.
const (
	ModeSharp Mode = iota
	ModeRounded
)

// String returns the mode name used in config files and flags.
func (m Mode) String() string {
	switch m {
	case ModeSharp:
		return "sharp"
	case ModeRounded:
		return "rounded"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "sharp" or "rounded" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sharp":
		return ModeSharp, nil
	case "rounded", "round":
		return ModeRounded, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// DefaultRoundSteps is the default number of segments per quarter arc.
const DefaultRoundSteps = 11

// Options configures a triangulation pass.
type Options struct {
	Mode Mode
	// RoundSteps is the number of segments per quarter arc. Zero is treated
	// as one segment, a straight chord.
	RoundSteps int
	// Radius of the rounded corners in world units. Zero uses half the side
	// of each square, so arcs end on the edge midpoints the fans use.
	Radius float32
	// Saddle selects how the diagonal configurations 5 and 10 are filled in
	// rounded mode.
	Saddle squares.SaddlePolicy
	// WeldVertices shares vertices at equal positions across squares. The UV
	// of the first square to emit a position is kept.
	WeldVertices bool
}

// DefaultOptions returns rounded triangulation with the default arc settings.
func DefaultOptions() Options {
	return Options{
		Mode:       ModeRounded,
		RoundSteps: DefaultRoundSteps,
		Saddle:     squares.SaddleConnectCenter,
	}
}

// Validate checks the options before a pass.
func (o Options) Validate() error {
	if o.Mode != ModeSharp && o.Mode != ModeRounded {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(o.Mode))
	}
	if o.RoundSteps < 0 {
		return fmt.Errorf("%w: round steps %d", ErrInvalidOptions, o.RoundSteps)
	}
	if o.Radius < 0 {
		return fmt.Errorf("%w: radius %v", ErrInvalidOptions, o.Radius)
	}
	if !o.Saddle.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, squares.ErrUnknownSaddlePolicy)
	}
	return nil
}

func (o Options) steps() int {
	return max(1, o.RoundSteps)
}

// Polyline is an ordered run of boundary points in the (X, Z) plane.
type Polyline []math.Vec2

// Bounds is the axis-aligned bounding box of the emitted vertices.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns Max - Min.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh is the output of one triangulation pass.
type Mesh struct {
	Vertices []math.Vec3
	UVs      []math.Vec2
	// Indices holds one triple per triangle. Every triangle faces +Y.
	Indices []uint32
	// Boundaries is filled in rounded mode only.
	Boundaries []Polyline
	Bounds     Bounds
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}

// Normal returns the unnormalized face normal of triangle i.
func (m *Mesh) Normal(i int) math.Vec3 {
	tri := m.Triangle(i)
	a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
	return b.Sub(a).Cross(c.Sub(a))
}
