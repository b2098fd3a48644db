// Package chain parses textual transformation chains like
//
//  translate(2, 3) rotate(90) scale(2)
//
// into a single composed function. Calls are composed left to right in the
// same way as mvp.Compose, so the rightmost call is applied first.
// Angles are given in degrees.
package chain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/akeil/mvp"
)

type call struct {
	name string
	args []float64
}

func (c call) String() string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = strconv.FormatFloat(a, 'g', -1, 64)
	}
	return c.name + "(" + strings.Join(parts, ", ") + ")"
}

func (c call) expect(counts ...int) error {
	for _, n := range counts {
		if len(c.args) == n {
			return nil
		}
	}
	return fmt.Errorf("%v: unexpected number of arguments %d", c, len(c.args))
}

var callPattern = regexp.MustCompile(`^\s*([a-z][a-z0-9_]*)\s*\(([^()]*)\)`)

func parseCalls(expr string) ([]call, error) {
	calls := make([]call, 0)
	rest := expr
	for strings.TrimSpace(rest) != "" {
		m := callPattern.FindStringSubmatchIndex(rest)
		if m == nil {
			return nil, fmt.Errorf("invalid chain expression near %q", strings.TrimSpace(rest))
		}
		name := rest[m[2]:m[3]]
		args, err := parseNumbers(rest[m[4]:m[5]])
		if err != nil {
			return nil, fmt.Errorf("%v(): %v", name, err)
		}
		calls = append(calls, call{name, args})
		rest = rest[m[1]:]
	}

	if len(calls) == 0 {
		return nil, fmt.Errorf("empty chain expression")
	}
	return calls, nil
}

func parseNumbers(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}
	fields := strings.Split(s, ",")
	nums := make([]float64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", strings.TrimSpace(f))
		}
		nums[i] = n
	}
	return nums, nil
}

// Parse2D parses a chain of 2D transformations.
//
// Supported calls: translate(x,y), scale(s), scale(sx,sy), rotate(deg),
// rotate90(), rotate_around(deg,cx,cy).
func Parse2D(expr string) (mvp.Function[mvp.Vector2D], error) {
	calls, err := parseCalls(expr)
	if err != nil {
		return mvp.Function[mvp.Vector2D]{}, err
	}

	fns := make([]mvp.Function[mvp.Vector2D], len(calls))
	for i, c := range calls {
		fns[i], err = build2D(c)
		if err != nil {
			return mvp.Function[mvp.Vector2D]{}, err
		}
	}
	return mvp.Compose(fns...), nil
}

func build2D(c call) (mvp.Function[mvp.Vector2D], error) {
	var fn mvp.Function[mvp.Vector2D]
	var err error
	a := c.args

	switch c.name {
	case "translate":
		err = c.expect(2)
		if err == nil {
			fn = mvp.Translate(mvp.Vector2D{X: a[0], Y: a[1]})
		}
	case "scale":
		err = c.expect(1, 2)
		if err == nil && len(a) == 1 {
			fn, err = mvp.UniformScale[mvp.Vector2D](a[0])
		} else if err == nil {
			fn, err = mvp.Scale(mvp.Vector2D{X: a[0], Y: a[1]})
		}
	case "rotate":
		err = c.expect(1)
		if err == nil {
			fn = mvp.Rotate(mvp.Radians(a[0]))
		}
	case "rotate90":
		err = c.expect(0)
		if err == nil {
			fn = mvp.Rotate90()
		}
	case "rotate_around":
		err = c.expect(3)
		if err == nil {
			fn = mvp.RotateAround(mvp.Radians(a[0]), mvp.Vector2D{X: a[1], Y: a[2]})
		}
	default:
		err = fmt.Errorf("unknown 2D transformation %q", c.name)
	}

	if err != nil {
		return fn, mvp.Wrap(err, "%v", c)
	}
	return fn, nil
}

// Parse3D parses a chain of 3D transformations.
//
// Supported calls: translate(x,y,z), scale(s), scale(sx,sy,sz),
// rotate_x(deg), rotate_y(deg), rotate_z(deg), ortho(l,r,b,t,n,f),
// perspective(fov,aspect,near,far).
func Parse3D(expr string) (mvp.Function[mvp.Vector3D], error) {
	calls, err := parseCalls(expr)
	if err != nil {
		return mvp.Function[mvp.Vector3D]{}, err
	}

	fns := make([]mvp.Function[mvp.Vector3D], len(calls))
	for i, c := range calls {
		fns[i], err = build3D(c)
		if err != nil {
			return mvp.Function[mvp.Vector3D]{}, err
		}
	}
	return mvp.Compose(fns...), nil
}

func build3D(c call) (mvp.Function[mvp.Vector3D], error) {
	var fn mvp.Function[mvp.Vector3D]
	var err error
	a := c.args

	switch c.name {
	case "translate":
		err = c.expect(3)
		if err == nil {
			fn = mvp.Translate(mvp.Vector3D{X: a[0], Y: a[1], Z: a[2]})
		}
	case "scale":
		err = c.expect(1, 3)
		if err == nil && len(a) == 1 {
			fn, err = mvp.UniformScale[mvp.Vector3D](a[0])
		} else if err == nil {
			fn, err = mvp.Scale(mvp.Vector3D{X: a[0], Y: a[1], Z: a[2]})
		}
	case "rotate_x":
		err = c.expect(1)
		if err == nil {
			fn = mvp.RotateX(mvp.Radians(a[0]))
		}
	case "rotate_y":
		err = c.expect(1)
		if err == nil {
			fn = mvp.RotateY(mvp.Radians(a[0]))
		}
	case "rotate_z":
		err = c.expect(1)
		if err == nil {
			fn = mvp.RotateZ(mvp.Radians(a[0]))
		}
	case "ortho":
		err = c.expect(6)
		if err == nil {
			fn, err = mvp.Ortho(a[0], a[1], a[2], a[3], a[4], a[5])
		}
	case "perspective":
		err = c.expect(4)
		if err == nil {
			fn, err = mvp.Perspective(a[0], a[1], a[2], a[3])
		}
	default:
		err = fmt.Errorf("unknown 3D transformation %q", c.name)
	}

	if err != nil {
		return fn, mvp.Wrap(err, "%v", c)
	}
	return fn, nil
}

// ParsePoint2D parses a point given as "x,y".
func ParsePoint2D(s string) (mvp.Vector2D, error) {
	n, err := parseNumbers(s)
	if err != nil {
		return mvp.Vector2D{}, err
	}
	if len(n) != 2 {
		return mvp.Vector2D{}, fmt.Errorf("expected x,y, got %q", s)
	}
	return mvp.Vector2D{X: n[0], Y: n[1]}, nil
}

// ParsePoint3D parses a point given as "x,y,z".
func ParsePoint3D(s string) (mvp.Vector3D, error) {
	n, err := parseNumbers(s)
	if err != nil {
		return mvp.Vector3D{}, err
	}
	if len(n) != 3 {
		return mvp.Vector3D{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	return mvp.Vector3D{X: n[0], Y: n[1], Z: n[2]}, nil
}
