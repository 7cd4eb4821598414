package easel

import "math"

// Vec2 is a 2D vector used for positions, edges, sizes, and directions
// throughout the API. Y increases upward in arrangement (world) space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// PerpDot returns the 2D cross product (perpendicular dot product) of v and w.
// Positive when w lies counter-clockwise of v.
func (v Vec2) PerpDot(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsNaN reports whether either component is NaN.
func (v Vec2) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }

// Vec3 is a 3D vector. Only the picking backend works in three dimensions;
// everything else in the package is purely 2D.
type Vec3 struct {
	X, Y, Z float64
}

// XY returns the 2D projection of v.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromCorners builds the rectangle spanned by two opposite corners,
// in any order.
func RectFromCorners(a, b Vec2) Rect {
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	return Rect{
		X:      minX,
		Y:      minY,
		Width:  math.Max(a.X, b.X) - minX,
		Height: math.Max(a.Y, b.Y) - minY,
	}
}

// RectFromCenterSize builds the rectangle centered on c with the given size.
func RectFromCenterSize(c, size Vec2) Rect {
	return Rect{X: c.X - size.X/2, Y: c.Y - size.Y/2, Width: size.X, Height: size.Y}
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Size returns the rectangle's width and height as a Vec2.
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Transform2D is a 2D similarity transform: translation, rotation (radians),
// and per-axis scale. It is the unit of exchange between the editor host and
// the camera translator; the implied z of any translated transform is 0.
type Transform2D struct {
	X, Y           float64
	Rotation       float64
	ScaleX, ScaleY float64
}

// IdentityTransform2D returns a transform with no translation or rotation and
// unit scale.
func IdentityTransform2D() Transform2D {
	return Transform2D{ScaleX: 1, ScaleY: 1}
}

// Translation returns the transform's translation as a Vec2.
func (t Transform2D) Translation() Vec2 { return Vec2{t.X, t.Y} }

// affine returns the transform's affine matrix.
func (t Transform2D) affine() [6]float64 {
	sin, cos := math.Sincos(t.Rotation)
	return [6]float64{
		cos * t.ScaleX, sin * t.ScaleX,
		-sin * t.ScaleY, cos * t.ScaleY,
		t.X, t.Y,
	}
}
