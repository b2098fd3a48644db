package imaging

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Identity is the affine transform that changes nothing.
func Identity() f64.Aff3 {
	return f64.Aff3{
		1, 0, 0,
		0, 1, 0,
	}
}

// Rotation Matrix (CCW)
//
//  cos(angle)   -sin(angle)    0
//  sin(angle)    cos(angle)    0
//  0             0             1
//
func Rotation(angle float64) f64.Aff3 {
	m := Identity()
	m[0] = math.Cos(angle)
	m[1] = math.Sin(angle) * -1

	m[3] = math.Sin(angle)
	m[4] = math.Cos(angle)

	return m
}

// Translation Matrix:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func Translation(dx, dy float64) f64.Aff3 {
	m := Identity()

	m[2] = dx
	m[5] = dy

	return m
}

// Scaling Matrix:
//
//  sx 0  0
//  0  sy 0
//  0  0  1
//
func Scaling(sx, sy float64) f64.Aff3 {
	m := Identity()

	m[0] = sx
	m[4] = sy

	return m
}

// Multiply combines two affine transforms.
// The result applies b first, then a.
//
// The implicit last row (0 0 1) is not stored.
func Multiply(a, b f64.Aff3) f64.Aff3 {
	var m f64.Aff3

	m[0] = a[0]*b[0] + a[1]*b[3]
	m[1] = a[0]*b[1] + a[1]*b[4]
	m[2] = a[0]*b[2] + a[1]*b[5] + a[2]

	m[3] = a[3]*b[0] + a[4]*b[3]
	m[4] = a[3]*b[1] + a[4]*b[4]
	m[5] = a[3]*b[2] + a[4]*b[5] + a[5]

	return m
}

// Transform applies an affine transform to the given x,y point.
func Transform(m f64.Aff3, x, y float64) (float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]
	ty := m[3]*x + m[4]*y + m[5]
	return tx, ty
}
