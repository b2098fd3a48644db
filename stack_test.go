package mvp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackNesting(t *testing.T) {
	f1 := Translate(Vector2D{1, 2})
	f2 := Rotate(Radians(90))

	s := NewStack[Vector2D]()
	assert.True(t, s.IsEmpty())

	s.Push(f1)
	s.Push(f2)
	assert.Equal(t, 2, s.Len())

	composed := Compose(f1, f2)
	current := s.Current()
	for _, v := range samples2D() {
		assert.Equal(t, composed.Apply(v), current.Apply(v))
	}

	f, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, f2, f)

	f, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, f1, f)

	assert.True(t, s.IsEmpty())

	_, err = s.Pop()
	require.Error(t, err)
	assert.True(t, IsEmptyStack(err))
}

func TestStackEmptyIsIdentity(t *testing.T) {
	s := NewStack[Vector3D]()
	v := Vector3D{1, 2, 3}
	assert.Equal(t, v, s.Current().Apply(v))
}

func TestStackCurrentIsSnapshot(t *testing.T) {
	s := NewStack[Vector1D]()
	s.Push(Translate(Vector1D{1}))
	s.Push(Translate(Vector1D{2}))
	current := s.Current()

	s.Pop()
	s.Push(Translate(Vector1D{100}))
	assert.Equal(t, Vector1D{3}, current.Apply(Vector1D{0}))
}

func TestStackClear(t *testing.T) {
	s := NewStack[Vector2D]()
	s.Push(Translate(Vector2D{1, 1}))
	s.Push(Rotate(1))
	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, Vector2D{5, 5}, s.Current().Apply(Vector2D{5, 5}))
}

func TestStackWith(t *testing.T) {
	s := NewStack[Vector2D]()
	outer := Translate(Vector2D{10, 0})
	inner := mustUniform[Vector2D](t, 2)

	err := s.With(outer, func(s *Stack[Vector2D]) error {
		assert.Equal(t, 1, s.Len())
		return s.With(inner, func(s *Stack[Vector2D]) error {
			assert.Equal(t, 2, s.Len())
			// scale in the inner frame, then move by the outer one
			assert.Equal(t, Vector2D{12, 2}, s.Current().Apply(Vector2D{1, 1}))
			return nil
		})
	})
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

func TestStackWithError(t *testing.T) {
	s := NewStack[Vector2D]()
	s.Push(Translate(Vector2D{1, 0}))

	boom := errors.New("boom")
	err := s.With(Rotate(1), func(s *Stack[Vector2D]) error {
		return boom
	})
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, s.Len())
}

func TestStackWithPanic(t *testing.T) {
	s := NewStack[Vector2D]()

	assert.Panics(t, func() {
		s.With(Rotate(1), func(s *Stack[Vector2D]) error {
			panic("boom")
		})
	})
	assert.True(t, s.IsEmpty(), "scope did not pop after panic")
}

func TestStackWithUnbalanced(t *testing.T) {
	s := NewStack[Vector2D]()

	// a body that forgets to pop does not leak into the caller
	err := s.With(Rotate(1), func(s *Stack[Vector2D]) error {
		s.Push(Translate(Vector2D{1, 1}))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

// The camera is placed in the world, so the view transform is its inverse.
func TestStackModelViewProjection(t *testing.T) {
	s := NewStack[Vector3D]()
	camera := Compose(Translate(Vector3D{0, 0, 40}), RotateY(0))
	view, err := camera.Inverse()
	require.NoError(t, err)

	s.Push(CameraSpaceToNDC())
	s.Push(view)
	s.Push(Translate(Vector3D{-9, 0, 0}))

	// the model origin sits left of the screen center, in front of the camera
	ndc := s.Current().Apply(Vector3D{0, 0, 0})
	assert.True(t, ndc.X < 0 && ndc.X > -1, "x out of range: %v", ndc.X)
	assert.InDelta(t, 0, ndc.Y, tol)
	assert.True(t, ndc.Z < 1 && ndc.Z > -1, "z out of range: %v", ndc.Z)
}
