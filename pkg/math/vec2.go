// Package math provides the small vector types shared by the grid and mesh packages.
package math

import "math"

// Vec2 is a 2D vector. Mesh code uses it for UVs and for boundary points in
// the (X, Z) ground plane.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Cross returns the z component of the 3D cross product of v and other.
// Positive means other is counter-clockwise from v.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Polar returns the point at the given radius and angle (radians, CCW from +X)
// around v.
func (v Vec2) Polar(radius float32, angle float64) Vec2 {
	return Vec2{
		X: v.X + radius*float32(math.Cos(angle)),
		Y: v.Y + radius*float32(math.Sin(angle)),
	}
}
