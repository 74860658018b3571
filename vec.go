package softge

import "math"

// Vec2 represents a 2D vector with float32 components, the precision the
// hardware works in.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Vec3 represents a 3D vector with float32 components.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by a scalar.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return v.Div(length)
}

// IsZero returns true if the vector is the zero vector.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Vec4 represents a 4D vector with float32 components.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Vec3 drops the W component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec3i represents a 3-component integer vector. The hardware carries
// secondary (specular) colors as integer channel triples in [0, 255].
type Vec3i struct {
	X, Y, Z int32
}

// Vec4i represents a 4-component integer vector, used for primary colors
// with integer channels in [0, 255].
type Vec4i struct {
	X, Y, Z, W int32
}
