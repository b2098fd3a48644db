package mvp

import (
	"fmt"
	"math"
)

// Ortho maps the box [left,right] x [bottom,top] x [near,far] onto the
// cube [-1,1] on every axis.
//
// The box is moved so that its center is at the origin and then each axis
// is scaled to a length of two. The camera looks down the negative z-axis,
// so near and far are usually negative (e.g. near=-1, far=-100) and the
// z-factor is negated: the near plane maps to z=1, the far plane to z=-1.
//
// A box with zero extent on any axis is rejected with an
// "invalid parameter" error.
func Ortho(left, right, bottom, top, near, far float64) (Function[Vector3D], error) {
	midpoint := Vector3D{
		X: (left + right) / 2.0,
		Y: (bottom + top) / 2.0,
		Z: (near + far) / 2.0,
	}
	lengthX, lengthY, lengthZ := right-left, top-bottom, far-near
	box := orthoBox{left, right, bottom, top, near, far}

	if lengthX == 0 || lengthY == 0 || lengthZ == 0 {
		return Function[Vector3D]{}, NewInvalidParameter("ortho box has zero extent: %v", box)
	}

	s, err := Scale(Vector3D{
		X: 2.0 / lengthX,
		Y: 2.0 / lengthY,
		Z: 2.0 / -lengthZ,
	})
	if err != nil {
		return Function[Vector3D]{}, err
	}

	return Function[Vector3D]{op: orthographic{
		box: box,
		fn:  Compose(s, Translate(midpoint.Neg())),
	}}, nil
}

type orthoBox struct {
	left, right, bottom, top, near, far float64
}

func (b orthoBox) String() string {
	return fmt.Sprintf("%g, %g, %g, %g, %g, %g", b.left, b.right, b.bottom, b.top, b.near, b.far)
}

type orthographic struct {
	box orthoBox
	fn  Function[Vector3D]
}

func (o orthographic) forward(v Vector3D) Vector3D {
	return o.fn.Apply(v)
}

func (o orthographic) backward(v Vector3D) Vector3D {
	return MustInverse(o.fn).Apply(v)
}

func (o orthographic) checkInverse() error {
	return nil
}

func (o orthographic) String() string {
	return "ortho(" + o.box.String() + ")"
}

// Perspective projects camera space onto NDC.
//
// fov is the vertical field of view in degrees, aspect is width / height.
// nearZ and farZ are the z-coordinates of the near and far planes, which
// are negative for a camera that looks down the negative z-axis.
//
// x and y are scaled by nearZ / z (the perspective divide), which maps the
// frustum onto a rectangular box; the box is then mapped with Ortho.
//
// Vectors with z == 0 have no defined image. It is up to the caller to keep
// geometry in front of the camera.
//
// A perspective projection has no inverse; Inverse reports an
// "unsupported inverse" error.
func Perspective(fov, aspect, nearZ, farZ float64) (Function[Vector3D], error) {
	top := -nearZ * math.Tan(Radians(fov)/2.0)
	right := top * aspect

	o, err := Ortho(-right, right, -top, top, nearZ, farZ)
	if err != nil {
		return Function[Vector3D]{}, Wrap(err, "perspective(%g, %g, %g, %g)", fov, aspect, nearZ, farZ)
	}

	return Function[Vector3D]{op: perspective{
		fov:    fov,
		aspect: aspect,
		nearZ:  nearZ,
		farZ:   farZ,
		ortho:  o,
	}}, nil
}

type perspective struct {
	fov, aspect float64
	nearZ, farZ float64
	ortho       Function[Vector3D]
}

func (p perspective) forward(v Vector3D) Vector3D {
	s := p.nearZ / v.Z
	prism := Vector3D{v.X * s, v.Y * s, v.Z}
	return p.ortho.Apply(prism)
}

// backward cannot be reached, Inverse refuses to invert a perspective.
func (p perspective) backward(v Vector3D) Vector3D {
	panic(p.checkInverse())
}

func (p perspective) checkInverse() error {
	return NewUnsupportedInverse("%v: z cannot be recovered from NDC", p)
}

func (p perspective) String() string {
	return fmt.Sprintf("perspective(%g, %g, %g, %g)", p.fov, p.aspect, p.nearZ, p.farZ)
}

// CameraSpaceToNDC is the projection used by the demo scene: a 45 degree
// field of view, square aspect and planes at z=-0.1 and z=-1000.
func CameraSpaceToNDC() Function[Vector3D] {
	fn, err := Perspective(45.0, 1.0, -0.1, -1000.0)
	if err != nil {
		// constant parameters
		panic(err)
	}
	return fn
}
