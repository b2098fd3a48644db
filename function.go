package mvp

import (
	"strings"
)

// Function is a coordinate mapping paired with its exact inverse.
//
// A Function is built by one of the constructors (Translate, Rotate,
// Ortho, ...) or by Compose. It is an immutable value and can be shared
// freely. The zero value is the identity.
//
// The parameters of every constructor are stored explicitly in an operation
// value; Apply dispatches on it and evaluates either the forward or the
// backward form, depending on whether the Function was inverted.
type Function[V Vector[V]] struct {
	op       op[V]
	inverted bool
}

// op is one elementary mapping with explicit parameters.
type op[V Vector[V]] interface {
	forward(v V) V
	backward(v V) V
	// checkInverse returns an error if backward is not available.
	checkInverse() error
	String() string
}

// Identity returns the function that maps every vector to itself.
func Identity[V Vector[V]]() Function[V] {
	return Function[V]{}
}

// Apply evaluates the function for the given vector.
func (f Function[V]) Apply(v V) V {
	if f.op == nil {
		return v
	}
	if f.inverted {
		return f.op.backward(v)
	}
	return f.op.forward(v)
}

// Inverse returns a function with forward and backward swapped.
//
// Inverting twice returns a Function equal to f.
// An error is returned if the function is, or contains, a mapping without
// an inverse (perspective projection).
func (f Function[V]) Inverse() (Function[V], error) {
	if f.op != nil && !f.inverted {
		err := f.op.checkInverse()
		if err != nil {
			return Function[V]{}, err
		}
	}
	return Function[V]{op: f.op, inverted: !f.inverted}, nil
}

// Invertible tells whether Inverse would succeed.
func (f Function[V]) Invertible() bool {
	_, err := f.Inverse()
	return err == nil
}

func (f Function[V]) String() string {
	if f.op == nil {
		return "identity"
	}
	if f.inverted {
		return "inverse(" + f.op.String() + ")"
	}
	return f.op.String()
}

// Inverse is the function form of Function.Inverse.
func Inverse[V Vector[V]](f Function[V]) (Function[V], error) {
	return f.Inverse()
}

// MustInverse is like Inverse but panics if the function has no inverse.
// Use it for chains that are known to be invertible.
func MustInverse[V Vector[V]](f Function[V]) Function[V] {
	inv, err := f.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// Compose combines the given functions into one.
//
// The rightmost function is applied first:
//
//  Compose(f1, f2, f3).Apply(v) == f1.Apply(f2.Apply(f3.Apply(v)))
//
// The inverse applies the inverses in reverse order, f1's inverse last.
// Composing no functions yields the identity.
func Compose[V Vector[V]](fns ...Function[V]) Function[V] {
	switch len(fns) {
	case 0:
		return Identity[V]()
	case 1:
		return fns[0]
	}

	parts := make([]Function[V], len(fns))
	copy(parts, fns)
	return Function[V]{op: composition[V]{parts}}
}

type composition[V Vector[V]] struct {
	parts []Function[V]
}

func (c composition[V]) forward(v V) V {
	for i := len(c.parts) - 1; i >= 0; i-- {
		v = c.parts[i].Apply(v)
	}
	return v
}

func (c composition[V]) backward(v V) V {
	for _, f := range c.parts {
		// checkInverse has been called on all parts before
		// a composition can be inverted.
		inv, _ := f.Inverse()
		v = inv.Apply(v)
	}
	return v
}

func (c composition[V]) checkInverse() error {
	for _, f := range c.parts {
		_, err := f.Inverse()
		if err != nil {
			return err
		}
	}
	return nil
}

func (c composition[V]) String() string {
	names := make([]string, len(c.parts))
	for i, f := range c.parts {
		names[i] = f.String()
	}
	return "compose(" + strings.Join(names, ", ") + ")"
}
