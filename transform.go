package mvp

import (
	"fmt"
	"math"

	"github.com/akeil/mvp/internal/logging"
)

// Translate moves every vector by the given offset.
func Translate[V Vector[V]](offset V) Function[V] {
	return Function[V]{op: translation[V]{offset}}
}

type translation[V Vector[V]] struct {
	offset V
}

func (t translation[V]) forward(v V) V {
	return v.Add(t.offset)
}

func (t translation[V]) backward(v V) V {
	return v.Sub(t.offset)
}

func (t translation[V]) checkInverse() error {
	return nil
}

func (t translation[V]) String() string {
	return fmt.Sprintf("translate(%v)", t.offset)
}

// UniformScale multiplies every vector with the given factor.
//
// A factor of zero has no inverse and is rejected with an
// "invalid parameter" error.
func UniformScale[V Vector[V]](factor float64) (Function[V], error) {
	if factor == 0 {
		logging.Debug("reject uniform scale with factor 0")
		return Function[V]{}, NewInvalidParameter("scaling factor cannot be zero")
	}
	return Function[V]{op: uniformScaling[V]{factor}}, nil
}

type uniformScaling[V Vector[V]] struct {
	factor float64
}

func (s uniformScaling[V]) forward(v V) V {
	return v.Scale(s.factor)
}

func (s uniformScaling[V]) backward(v V) V {
	return v.Scale(1.0 / s.factor)
}

func (s uniformScaling[V]) checkInverse() error {
	return nil
}

func (s uniformScaling[V]) String() string {
	return fmt.Sprintf("uniform_scale(%g)", s.factor)
}

// Scale multiplies each axis with its own factor.
// The factors are given as a vector, e.g. Vector2D{2, 0.5}.
//
// A zero factor on any axis is rejected with an "invalid parameter" error.
func Scale[V Vector[V]](factors V) (Function[V], error) {
	for i, c := range factors.Components() {
		if c == 0 {
			logging.Debug("reject scale %v with zero %v-factor", factors, axisNames[i])
			return Function[V]{}, NewInvalidParameter("scaling factor for %v cannot be zero", axisNames[i])
		}
	}
	return Function[V]{op: axisScaling[V]{factors}}, nil
}

type axisScaling[V Vector[V]] struct {
	factors V
}

func (s axisScaling[V]) forward(v V) V {
	return v.MulComponents(s.factors)
}

func (s axisScaling[V]) backward(v V) V {
	return v.DivComponents(s.factors)
}

func (s axisScaling[V]) checkInverse() error {
	return nil
}

func (s axisScaling[V]) String() string {
	return fmt.Sprintf("scale(%v)", s.factors)
}

// 2D rotation ----------------------------------------------------------------

// Rotate90 turns vectors a quarter turn counter-clockwise.
func Rotate90() Function[Vector2D] {
	return Function[Vector2D]{op: quarterTurn{}}
}

type quarterTurn struct{}

func (quarterTurn) forward(v Vector2D) Vector2D {
	return v.Rotate90()
}

func (quarterTurn) backward(v Vector2D) Vector2D {
	return v.Rotate90().Neg()
}

func (quarterTurn) checkInverse() error {
	return nil
}

func (quarterTurn) String() string {
	return "rotate_90()"
}

// Rotate turns vectors counter-clockwise around the origin.
// The angle is given in radians.
//
//  f(v) = cos(angle) * v + sin(angle) * rotate90(v)
//
// The inverse uses the inverse quarter turn, which is the same as rotating
// by -angle.
func Rotate(angle float64) Function[Vector2D] {
	return Function[Vector2D]{op: newRotation(angle)}
}

type rotation struct {
	angle    float64
	cos, sin float64
}

func newRotation(angle float64) rotation {
	return rotation{
		angle: angle,
		cos:   math.Cos(angle),
		sin:   math.Sin(angle),
	}
}

func (r rotation) forward(v Vector2D) Vector2D {
	parallel := v.Scale(r.cos)
	perpendicular := v.Rotate90().Scale(r.sin)
	return parallel.Add(perpendicular)
}

func (r rotation) backward(v Vector2D) Vector2D {
	parallel := v.Scale(r.cos)
	perpendicular := v.Rotate90().Neg().Scale(r.sin)
	return parallel.Add(perpendicular)
}

func (r rotation) checkInverse() error {
	return nil
}

func (r rotation) String() string {
	return fmt.Sprintf("rotate(%.4f)", r.angle)
}

// RotateAround rotates counter-clockwise around the given center
// (angle in radians).
//
// The center is moved to the origin, rotated and moved back:
//
//  Compose(Translate(center), Rotate(angle), Translate(-center))
func RotateAround(angle float64, center Vector2D) Function[Vector2D] {
	return Compose(
		Translate(center),
		Rotate(angle),
		Translate(center.Neg()),
	)
}

// 3D rotation ----------------------------------------------------------------

// Axis names one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// RotateX rotates around the x-axis (angle in radians).
// The (y, z) plane is rotated like the 2D plane (x, y); x is unchanged.
func RotateX(angle float64) Function[Vector3D] {
	return Function[Vector3D]{op: axisRotation{AxisX, newRotation(angle)}}
}

// RotateY rotates around the y-axis (angle in radians).
// The (z, x) plane is rotated like the 2D plane (x, y); y is unchanged.
func RotateY(angle float64) Function[Vector3D] {
	return Function[Vector3D]{op: axisRotation{AxisY, newRotation(angle)}}
}

// RotateZ rotates around the z-axis (angle in radians).
// The (x, y) plane is rotated; z is unchanged.
func RotateZ(angle float64) Function[Vector3D] {
	return Function[Vector3D]{op: axisRotation{AxisZ, newRotation(angle)}}
}

type axisRotation struct {
	axis  Axis
	plane rotation
}

// project picks the two coordinates orthogonal to the axis.
func (r axisRotation) project(v Vector3D) Vector2D {
	switch r.axis {
	case AxisX:
		return Vector2D{v.Y, v.Z}
	case AxisY:
		return Vector2D{v.Z, v.X}
	default:
		return Vector2D{v.X, v.Y}
	}
}

// unproject puts the rotated coordinates back next to the unchanged axis.
func (r axisRotation) unproject(p Vector2D, v Vector3D) Vector3D {
	switch r.axis {
	case AxisX:
		return Vector3D{v.X, p.X, p.Y}
	case AxisY:
		return Vector3D{p.Y, v.Y, p.X}
	default:
		return Vector3D{p.X, p.Y, v.Z}
	}
}

func (r axisRotation) forward(v Vector3D) Vector3D {
	return r.unproject(r.plane.forward(r.project(v)), v)
}

func (r axisRotation) backward(v Vector3D) Vector3D {
	return r.unproject(r.plane.backward(r.project(v)), v)
}

func (r axisRotation) checkInverse() error {
	return nil
}

func (r axisRotation) String() string {
	return fmt.Sprintf("rotate_%v(%.4f)", r.axis, r.plane.angle)
}
