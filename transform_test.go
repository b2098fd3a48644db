package mvp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func close2(a, b Vector2D) bool {
	return a.IsClose(b, 0, tol)
}

func close3(a, b Vector3D) bool {
	return a.IsClose(b, 0, tol)
}

func samples2D() []Vector2D {
	s := make([]Vector2D, 0)
	for _, x := range []float64{-10, -1.5, 0, 0.25, 3, 42} {
		for _, y := range []float64{-7, 0, 1, 9.5} {
			s = append(s, Vector2D{x, y})
		}
	}
	return s
}

func samples3D() []Vector3D {
	s := make([]Vector3D, 0)
	for _, v := range samples2D() {
		for _, z := range []float64{-50, -1, 0, 2.5} {
			s = append(s, Vector3D{v.X, v.Y, z})
		}
	}
	return s
}

func mustScale[V Vector[V]](t *testing.T, factors V) Function[V] {
	f, err := Scale(factors)
	require.NoError(t, err)
	return f
}

func mustUniform[V Vector[V]](t *testing.T, factor float64) Function[V] {
	f, err := UniformScale[V](factor)
	require.NoError(t, err)
	return f
}

func TestTranslate(t *testing.T) {
	fn := Translate(Vector2D{2, 3})
	assert.Equal(t, Vector2D{2, 3}, fn.Apply(Vector2D{0, 0}))

	inv, err := fn.Inverse()
	require.NoError(t, err)
	assert.Equal(t, Vector2D{0, 0}, inv.Apply(Vector2D{2, 3}))
}

func TestRotate(t *testing.T) {
	fn := Rotate(Radians(90))
	r := fn.Apply(Vector2D{1, 0})
	assert.True(t, close2(Vector2D{0, 1}, r), "got %v", r)

	r = MustInverse(fn).Apply(Vector2D{0, 1})
	assert.True(t, close2(Vector2D{1, 0}, r), "got %v", r)

	r = Rotate(Radians(45)).Apply(Vector2D{1, 0})
	h := math.Sqrt(2) / 2
	assert.True(t, close2(Vector2D{h, h}, r), "got %v", r)
}

func TestRotate90(t *testing.T) {
	fn := Rotate90()
	assert.Equal(t, Vector2D{-2, 1}, fn.Apply(Vector2D{1, 2}))
	assert.Equal(t, Vector2D{1, 2}, MustInverse(fn).Apply(Vector2D{-2, 1}))
}

func TestRotateAround(t *testing.T) {
	fn := RotateAround(Radians(180), Vector2D{5, 0})
	r := fn.Apply(Vector2D{6, 0})
	assert.True(t, close2(Vector2D{4, 0}, r), "got %v", r)

	// the center is a fixed point for any angle
	centers := []Vector2D{{5, 0}, {-3, 8}, {0, 0}, {100, -0.5}}
	for _, c := range centers {
		for _, deg := range []float64{0, 13, 90, 180, 271, -45} {
			r = RotateAround(Radians(deg), c).Apply(c)
			assert.True(t, close2(c, r), "center %v moved to %v at %v deg", c, r, deg)
		}
	}
}

func TestRotateAroundOrder(t *testing.T) {
	// rotating first and translating after is rotation about the origin
	wrong := Compose(Rotate(Radians(180)), Translate(Vector2D{5, 0}), Translate(Vector2D{-5, 0}))
	r := wrong.Apply(Vector2D{6, 0})
	assert.False(t, close2(Vector2D{4, 0}, r))
}

func TestRotateAxes(t *testing.T) {
	angle := Radians(90)

	r := RotateX(angle).Apply(Vector3D{0, 1, 0})
	assert.True(t, close3(Vector3D{0, 0, 1}, r), "rotate_x got %v", r)

	r = RotateY(angle).Apply(Vector3D{0, 0, 1})
	assert.True(t, close3(Vector3D{1, 0, 0}, r), "rotate_y got %v", r)

	r = RotateZ(angle).Apply(Vector3D{1, 0, 0})
	assert.True(t, close3(Vector3D{0, 1, 0}, r), "rotate_z got %v", r)

	// the named axis is left unchanged
	v := Vector3D{3, -4, 5}
	assert.Equal(t, v.X, RotateX(1.2).Apply(v).X)
	assert.Equal(t, v.Y, RotateY(1.2).Apply(v).Y)
	assert.Equal(t, v.Z, RotateZ(1.2).Apply(v).Z)
}

func TestUniformScale(t *testing.T) {
	fn := mustUniform[Vector2D](t, 4)
	assert.Equal(t, Vector2D{8, 12}, fn.Apply(Vector2D{2, 3}))
	assert.Equal(t, Vector2D{2, 3}, MustInverse(fn).Apply(Vector2D{8, 12}))

	_, err := UniformScale[Vector2D](0)
	require.Error(t, err)
	assert.True(t, IsInvalidParameter(err))

	_, err = UniformScale[Vector1D](0)
	assert.True(t, IsInvalidParameter(err))
}

func TestScale(t *testing.T) {
	fn := mustScale(t, Vector3D{2, -1, 0.5})
	assert.Equal(t, Vector3D{2, -2, 2}, fn.Apply(Vector3D{1, 2, 4}))

	for _, factors := range []Vector3D{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}} {
		_, err := Scale(factors)
		require.Error(t, err, "zero factor in %v not detected", factors)
		assert.True(t, IsInvalidParameter(err))
	}

	_, err := Scale(Vector2D{3, 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "for y")
}

func TestInverseRoundTrip2D(t *testing.T) {
	fns := map[string]Function[Vector2D]{
		"translate":     Translate(Vector2D{2, -3}),
		"uniform_scale": mustUniform[Vector2D](t, -2.5),
		"scale":         mustScale(t, Vector2D{0.5, 3}),
		"rotate":        Rotate(Radians(33)),
		"rotate_90":     Rotate90(),
		"rotate_around": RotateAround(Radians(-120), Vector2D{4, 1}),
		"compose": Compose(
			Translate(Vector2D{1, 1}),
			mustUniform[Vector2D](t, 3),
			Rotate(0.3),
		),
	}

	for name, fn := range fns {
		inv, err := fn.Inverse()
		require.NoError(t, err, name)
		for _, v := range samples2D() {
			r := inv.Apply(fn.Apply(v))
			assert.True(t, close2(v, r), "%v: inverse(f)(f(v)) = %v for %v", name, r, v)
			r = fn.Apply(inv.Apply(v))
			assert.True(t, close2(v, r), "%v: f(inverse(f)(v)) = %v for %v", name, r, v)
		}
	}
}

func TestInverseRoundTrip3D(t *testing.T) {
	ortho, err := Ortho(-10, 10, -5, 5, -1, -100)
	require.NoError(t, err)

	fns := map[string]Function[Vector3D]{
		"translate":     Translate(Vector3D{2, -3, 7}),
		"uniform_scale": mustUniform[Vector3D](t, 0.1),
		"scale":         mustScale(t, Vector3D{0.5, 3, -1}),
		"rotate_x":      RotateX(1),
		"rotate_y":      RotateY(-2),
		"rotate_z":      RotateZ(0.5),
		"ortho":         ortho,
	}

	for name, fn := range fns {
		inv, err := fn.Inverse()
		require.NoError(t, err, name)
		for _, v := range samples3D() {
			r := inv.Apply(fn.Apply(v))
			assert.True(t, close3(v, r), "%v: inverse(f)(f(v)) = %v for %v", name, r, v)
			r = fn.Apply(inv.Apply(v))
			assert.True(t, close3(v, r), "%v: f(inverse(f)(v)) = %v for %v", name, r, v)
		}
	}
}

func TestInverseRoundTrip1D(t *testing.T) {
	fn := Compose(Translate(Vector1D{3}), mustUniform[Vector1D](t, 7))
	for _, x := range []float64{-4, 0, 0.5, 1e6} {
		v := Vector1D{x}
		r := MustInverse(fn).Apply(fn.Apply(v))
		assert.True(t, v.IsClose(r, 0, tol), "got %v for %v", r, v)
	}
}

func TestIdentityLaws(t *testing.T) {
	id := Compose[Vector3D]()
	zero := Translate(Vector3D{})
	one := mustUniform[Vector3D](t, 1)

	for _, v := range samples3D() {
		assert.Equal(t, v, id.Apply(v))
		assert.Equal(t, v, zero.Apply(v))
		assert.Equal(t, v, one.Apply(v))
		assert.Equal(t, v, MustInverse(id).Apply(v))
	}
}
