// Package scene holds the demo scene: two paddles, a square that orbits
// the first paddle and a camera that looks at them.
//
// Each object is drawn through a transformation stack. The nesting of the
// stack scopes mirrors the nesting of the coordinate frames:
//
//  camera space -> NDC        (projection)
//    world space -> camera    (inverse of the camera placement)
//      paddle 1 -> world
//        square -> paddle 1
//      paddle 2 -> world
package scene

import (
	"image/color"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/akeil/mvp"
	"github.com/akeil/mvp/internal/logging"
)

// Shape is a flat polygon given in its own model space.
type Shape struct {
	ID       string
	Name     string
	Color    color.RGBA
	Vertices []mvp.Vector3D
}

func newShape(name string, c color.RGBA, vertices ...mvp.Vector3D) Shape {
	return Shape{
		ID:       uuid.New().String(),
		Name:     name,
		Color:    c,
		Vertices: vertices,
	}
}

// Paddle is a shape placed in world space.
type Paddle struct {
	Shape
	Position mvp.Vector3D

	// Rotation around the z-axis in radians.
	Rotation float64
}

// Transform maps paddle space to world space.
func (p Paddle) Transform() mvp.Function[mvp.Vector3D] {
	return mvp.Compose(mvp.Translate(p.Position), mvp.RotateZ(p.Rotation))
}

// Camera is placed in world space, looking down its negative z-axis.
type Camera struct {
	Position mvp.Vector3D

	// RotY turns left/right, RotX up/down (radians).
	RotY float64
	RotX float64
}

// Transform maps camera space to world space.
// The view transform is its inverse.
func (c Camera) Transform() mvp.Function[mvp.Vector3D] {
	return mvp.Compose(
		mvp.Translate(c.Position),
		mvp.RotateY(c.RotY),
		mvp.RotateX(c.RotX),
	)
}

// MoveForward moves the camera along its viewing direction,
// ignoring the up/down rotation. Negative distances move backwards.
func (c *Camera) MoveForward(distance float64) {
	forward := mvp.Vector3D{X: 0, Y: 0, Z: -distance}
	fn := mvp.Compose(mvp.Translate(c.Position), mvp.RotateY(c.RotY))
	c.Position = fn.Apply(forward)
}

// Outline is a shape mapped to NDC.
type Outline struct {
	ID       string
	Name     string
	Color    color.RGBA
	Vertices []mvp.Vector3D

	// Clipped is set if any vertex is outside the depth range,
	// e.g. behind the camera.
	Clipped bool
}

// Depth is the mean NDC z of the vertices.
// Larger values are closer to the camera.
func (o Outline) Depth() float64 {
	if len(o.Vertices) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range o.Vertices {
		sum += v.Z
	}
	return sum / float64(len(o.Vertices))
}

// Scene is the state of the demo for one frame.
type Scene struct {
	Camera     Camera
	Projection mvp.Function[mvp.Vector3D]
	Paddle1    Paddle
	Paddle2    Paddle
	Square     Shape

	// Orbit is the angle of the square around paddle 1,
	// Spin the rotation of the square around its own center.
	Orbit float64
	Spin  float64
}

func paddleVertices() []mvp.Vector3D {
	return []mvp.Vector3D{
		{X: -1, Y: -3, Z: 0},
		{X: 1, Y: -3, Z: 0},
		{X: 1, Y: 3, Z: 0},
		{X: -1, Y: 3, Z: 0},
	}
}

// New creates the scene with its initial placement.
func New() *Scene {
	return &Scene{
		Camera:     Camera{Position: mvp.Vector3D{X: 0, Y: 0, Z: 40}},
		Projection: mvp.CameraSpaceToNDC(),
		Paddle1: Paddle{
			Shape:    newShape("paddle1", color.RGBA{147, 0, 255, 255}, paddleVertices()...),
			Position: mvp.Vector3D{X: -9, Y: 0, Z: 0},
		},
		Paddle2: Paddle{
			Shape:    newShape("paddle2", color.RGBA{255, 255, 0, 255}, paddleVertices()...),
			Position: mvp.Vector3D{X: 9, Y: 0, Z: 0},
		},
		Square: newShape("square", color.RGBA{0, 0, 255, 255},
			mvp.Vector3D{X: -0.5, Y: -0.5, Z: 0},
			mvp.Vector3D{X: 0.5, Y: -0.5, Z: 0},
			mvp.Vector3D{X: 0.5, Y: 0.5, Z: 0},
			mvp.Vector3D{X: -0.5, Y: 0.5, Z: 0},
		),
	}
}

// squareTransform maps square space to paddle 1 space: spin the square,
// move it out by 2, orbit around the paddle and push it one unit back.
func (s *Scene) squareTransform() mvp.Function[mvp.Vector3D] {
	return mvp.Compose(
		mvp.Translate(mvp.Vector3D{X: 0, Y: 0, Z: -1}),
		mvp.RotateZ(s.Orbit),
		mvp.Translate(mvp.Vector3D{X: 2, Y: 0, Z: 0}),
		mvp.RotateZ(s.Spin),
	)
}

type body = func(*mvp.Stack[mvp.Vector3D]) error

// Draw maps all shapes to NDC using the given stack.
// The stack is left as it was found.
//
// Outlines are returned back to front.
func (s *Scene) Draw(stack *mvp.Stack[mvp.Vector3D]) ([]Outline, error) {
	view, err := s.Camera.Transform().Inverse()
	if err != nil {
		return nil, mvp.Wrap(err, "camera")
	}

	outlines := make([]Outline, 0, 3)
	collect := func(shape Shape) body {
		return func(st *mvp.Stack[mvp.Vector3D]) error {
			outlines = append(outlines, outline(st.Current(), shape))
			return nil
		}
	}

	err = stack.With(s.Projection, func(st *mvp.Stack[mvp.Vector3D]) error {
		return st.With(view, func(st *mvp.Stack[mvp.Vector3D]) error {
			err := st.With(s.Paddle1.Transform(), func(st *mvp.Stack[mvp.Vector3D]) error {
				err := collect(s.Paddle1.Shape)(st)
				if err != nil {
					return err
				}
				return st.With(s.squareTransform(), collect(s.Square))
			})
			if err != nil {
				return err
			}
			return st.With(s.Paddle2.Transform(), collect(s.Paddle2.Shape))
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(outlines, func(i, j int) bool {
		return outlines[i].Depth() < outlines[j].Depth()
	})
	return outlines, nil
}

// Frame draws the scene on a fresh stack.
func (s *Scene) Frame() ([]Outline, error) {
	stack := mvp.NewStack[mvp.Vector3D]()
	defer stack.Clear()
	return s.Draw(stack)
}

func outline(fn mvp.Function[mvp.Vector3D], shape Shape) Outline {
	o := Outline{
		ID:       shape.ID,
		Name:     shape.Name,
		Color:    shape.Color,
		Vertices: make([]mvp.Vector3D, len(shape.Vertices)),
	}
	for i, v := range shape.Vertices {
		ndc := fn.Apply(v)
		if !inDepthRange(ndc) {
			o.Clipped = true
		}
		o.Vertices[i] = ndc
	}
	if o.Clipped {
		logging.Info("shape %q is clipped", shape.Name)
	}
	return o
}

func inDepthRange(v mvp.Vector3D) bool {
	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
		return false
	}
	return v.Z >= -1 && v.Z <= 1
}
