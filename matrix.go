package mvp

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f64"

	"github.com/akeil/mvp/internal/imaging"
)

// Matrix4 returns the 4x4 homogeneous matrix of an affine 3D function,
// e.g. to hand it to a GPU pipeline as a uniform.
//
// The matrix is built from the parameters of each part, not by sampling,
// so Matrix4(f).Mul4x1(v) agrees with f.Apply(v) up to rounding.
// Perspective projections are not affine and yield a "not affine" error.
func Matrix4(f Function[Vector3D]) (mgl64.Mat4, error) {
	switch o := f.op.(type) {
	case nil:
		return mgl64.Ident4(), nil

	case translation[Vector3D]:
		t := o.offset
		if f.inverted {
			t = t.Neg()
		}
		return mgl64.Translate3D(t.X, t.Y, t.Z), nil

	case uniformScaling[Vector3D]:
		k := o.factor
		if f.inverted {
			k = 1.0 / k
		}
		return mgl64.Scale3D(k, k, k), nil

	case axisScaling[Vector3D]:
		s := o.factors
		if f.inverted {
			s = Vector3D{1, 1, 1}.DivComponents(s)
		}
		return mgl64.Scale3D(s.X, s.Y, s.Z), nil

	case axisRotation:
		a := o.plane.angle
		if f.inverted {
			a = -a
		}
		switch o.axis {
		case AxisX:
			return mgl64.HomogRotate3DX(a), nil
		case AxisY:
			return mgl64.HomogRotate3DY(a), nil
		default:
			return mgl64.HomogRotate3DZ(a), nil
		}

	case orthographic:
		fn := o.fn
		if f.inverted {
			fn = MustInverse(fn)
		}
		return Matrix4(fn)

	case composition[Vector3D]:
		m := mgl64.Ident4()
		for _, p := range o.parts {
			if f.inverted {
				pm, err := Matrix4(MustInverse(p))
				if err != nil {
					return mgl64.Mat4{}, err
				}
				m = pm.Mul4(m)
			} else {
				pm, err := Matrix4(p)
				if err != nil {
					return mgl64.Mat4{}, err
				}
				m = m.Mul4(pm)
			}
		}
		return m, nil
	}

	return mgl64.Mat4{}, NewNotAffine("%v has no matrix form", f)
}

// Affine2 returns the 2x3 affine matrix of a 2D function in the row-major
// layout of f64.Aff3:
//
//  x' = m[0]*x + m[1]*y + m[2]
//  y' = m[3]*x + m[4]*y + m[5]
func Affine2(f Function[Vector2D]) (f64.Aff3, error) {
	switch o := f.op.(type) {
	case nil:
		return imaging.Identity(), nil

	case translation[Vector2D]:
		t := o.offset
		if f.inverted {
			t = t.Neg()
		}
		return imaging.Translation(t.X, t.Y), nil

	case uniformScaling[Vector2D]:
		k := o.factor
		if f.inverted {
			k = 1.0 / k
		}
		return imaging.Scaling(k, k), nil

	case axisScaling[Vector2D]:
		s := o.factors
		if f.inverted {
			s = Vector2D{1, 1}.DivComponents(s)
		}
		return imaging.Scaling(s.X, s.Y), nil

	case rotation:
		a := o.angle
		if f.inverted {
			a = -a
		}
		return imaging.Rotation(a), nil

	case quarterTurn:
		if f.inverted {
			return f64.Aff3{0, 1, 0, -1, 0, 0}, nil
		}
		return f64.Aff3{0, -1, 0, 1, 0, 0}, nil

	case composition[Vector2D]:
		m := imaging.Identity()
		for _, p := range o.parts {
			if f.inverted {
				pm, err := Affine2(MustInverse(p))
				if err != nil {
					return f64.Aff3{}, err
				}
				m = imaging.Multiply(pm, m)
			} else {
				pm, err := Affine2(p)
				if err != nil {
					return f64.Aff3{}, err
				}
				m = imaging.Multiply(m, pm)
			}
		}
		return m, nil
	}

	return f64.Aff3{}, NewNotAffine("%v has no matrix form", f)
}
