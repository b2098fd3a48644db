package mvp

import (
	"math"
)

// Radians converts an angle from degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Degrees converts an angle from radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// Cosine of the angle between a and b.
func Cosine(a, b Vector2D) float64 {
	return a.Dot(b) / (a.Magnitude() * b.Magnitude())
}

// Sine of the angle from a to b.
// Positive if b is counter-clockwise from a.
func Sine(a, b Vector2D) float64 {
	return a.Rotate90().Dot(b) / (a.Magnitude() * b.Magnitude())
}

// IsClockwise reports whether the sine of the angle from a to b is positive.
//
// This follows the convention of the transformation demos, where the
// winding of a triangle is checked with the sine between two of its edges.
func IsClockwise(a, b Vector2D) bool {
	return Sine(a, b) > 0.0
}

// IsParallel reports whether a and b point in the same direction
// (cosine within 0.01 of 1).
func IsParallel(a, b Vector2D) bool {
	return math.Abs(Cosine(a, b)-1.0) <= 0.01
}

func Cosine3D(a, b Vector3D) float64 {
	return a.Dot(b) / (a.Magnitude() * b.Magnitude())
}

// AbsSine3D is the absolute sine of the angle between a and b,
// computed from the cross product.
func AbsSine3D(a, b Vector3D) float64 {
	return a.Cross(b).Magnitude() / (a.Magnitude() * b.Magnitude())
}
