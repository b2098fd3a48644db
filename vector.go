package mvp

import (
	"fmt"
	"math"
)

// Vector is the set of operations shared by Vector1D, Vector2D and Vector3D.
//
// Generic code is parameterized over a single vector type, so mixing
// dimensions (e.g. adding a Vector2D to a Vector3D) does not compile.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(s float64) V
	Neg() V
	Dot(V) float64
	Magnitude() float64
	// MulComponents multiplies axis by axis.
	MulComponents(V) V
	// DivComponents divides axis by axis.
	DivComponents(V) V
	IsClose(other V, relTol, absTol float64) bool
	// Components returns the coordinates in axis order (x, y, z).
	Components() []float64
}

// Default tolerances for IsCloseDefault.
const (
	DefaultRelTol = 1e-9
	DefaultAbsTol = 1e-5
)

var axisNames = []string{"x", "y", "z"}

// IsCloseDefault compares two vectors with DefaultRelTol and DefaultAbsTol.
func IsCloseDefault[V Vector[V]](a, b V) bool {
	return a.IsClose(b, DefaultRelTol, DefaultAbsTol)
}

// isClose has the semantics of Python's math.isclose.
func isClose(a, b, relTol, absTol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	tol := math.Max(relTol*math.Max(math.Abs(a), math.Abs(b)), absTol)
	return diff <= tol
}

// Vector1D ------------------------------------------------------------------

// Vector1D is a point or displacement on a number line.
type Vector1D struct {
	X float64
}

func (v Vector1D) Add(o Vector1D) Vector1D {
	return Vector1D{v.X + o.X}
}

// Sub is a + (-b).
func (v Vector1D) Sub(o Vector1D) Vector1D {
	return v.Add(o.Neg())
}

func (v Vector1D) Scale(s float64) Vector1D {
	return Vector1D{v.X * s}
}

func (v Vector1D) Neg() Vector1D {
	return v.Scale(-1)
}

func (v Vector1D) Dot(o Vector1D) float64 {
	return v.X * o.X
}

func (v Vector1D) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector1D) MulComponents(o Vector1D) Vector1D {
	return Vector1D{v.X * o.X}
}

func (v Vector1D) DivComponents(o Vector1D) Vector1D {
	return Vector1D{v.X / o.X}
}

func (v Vector1D) IsClose(o Vector1D, relTol, absTol float64) bool {
	return isClose(v.X, o.X, relTol, absTol)
}

func (v Vector1D) Components() []float64 {
	return []float64{v.X}
}

func (v Vector1D) String() string {
	return fmt.Sprintf("(%g)", v.X)
}

// Vector2D ------------------------------------------------------------------

// Vector2D is a point or displacement in the plane.
type Vector2D struct {
	X, Y float64
}

func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{v.X + o.X, v.Y + o.Y}
}

func (v Vector2D) Sub(o Vector2D) Vector2D {
	return v.Add(o.Neg())
}

func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{v.X * s, v.Y * s}
}

func (v Vector2D) Neg() Vector2D {
	return v.Scale(-1)
}

func (v Vector2D) Dot(o Vector2D) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2D) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector2D) MulComponents(o Vector2D) Vector2D {
	return Vector2D{v.X * o.X, v.Y * o.Y}
}

func (v Vector2D) DivComponents(o Vector2D) Vector2D {
	return Vector2D{v.X / o.X, v.Y / o.Y}
}

func (v Vector2D) IsClose(o Vector2D, relTol, absTol float64) bool {
	return isClose(v.X, o.X, relTol, absTol) && isClose(v.Y, o.Y, relTol, absTol)
}

func (v Vector2D) Components() []float64 {
	return []float64{v.X, v.Y}
}

// Rotate90 turns the vector a quarter turn counter-clockwise: (-y, x).
func (v Vector2D) Rotate90() Vector2D {
	return Vector2D{-v.Y, v.X}
}

func (v Vector2D) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Vector3D ------------------------------------------------------------------

// Vector3D is a point or displacement in space.
type Vector3D struct {
	X, Y, Z float64
}

func (v Vector3D) Add(o Vector3D) Vector3D {
	return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3D) Sub(o Vector3D) Vector3D {
	return v.Add(o.Neg())
}

func (v Vector3D) Scale(s float64) Vector3D {
	return Vector3D{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3D) Neg() Vector3D {
	return v.Scale(-1)
}

func (v Vector3D) Dot(o Vector3D) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3D) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector3D) MulComponents(o Vector3D) Vector3D {
	return Vector3D{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vector3D) DivComponents(o Vector3D) Vector3D {
	return Vector3D{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

func (v Vector3D) IsClose(o Vector3D, relTol, absTol float64) bool {
	return isClose(v.X, o.X, relTol, absTol) &&
		isClose(v.Y, o.Y, relTol, absTol) &&
		isClose(v.Z, o.Z, relTol, absTol)
}

func (v Vector3D) Components() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// Cross returns the cross product v x o.
func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
