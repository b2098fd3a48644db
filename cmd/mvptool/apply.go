package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akeil/mvp"
	"github.com/akeil/mvp/pkg/chain"
)

func doApply(dim, expr string, inverse bool, points []string) error {
	if dim == "3" {
		fn, err := chain.Parse3D(expr)
		if err != nil {
			return err
		}
		return applyAll(os.Stdout, fn, inverse, points, chain.ParsePoint3D)
	}

	fn, err := chain.Parse2D(expr)
	if err != nil {
		return err
	}
	return applyAll(os.Stdout, fn, inverse, points, chain.ParsePoint2D)
}

// applyAll parses all points before printing anything,
// so a bad point does not leave partial output.
func applyAll[V mvp.Vector[V]](w io.Writer, fn mvp.Function[V], inverse bool, points []string, parse func(string) (V, error)) error {
	if inverse {
		inv, err := fn.Inverse()
		if err != nil {
			return err
		}
		fn = inv
	}

	vs := make([]V, len(points))
	for i, p := range points {
		v, err := parse(p)
		if err != nil {
			return err
		}
		vs[i] = v
	}

	fmt.Fprintln(w, fn)
	for _, v := range vs {
		fmt.Fprintf(w, "  %v -> %v\n", v, fn.Apply(v))
	}
	return nil
}
