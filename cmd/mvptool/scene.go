package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akeil/mvp"
	"github.com/akeil/mvp/pkg/chain"
	"github.com/akeil/mvp/pkg/scene"
)

func buildScene(cam cameraFlags) (*scene.Scene, error) {
	pos, err := chain.ParsePoint3D(*cam.position)
	if err != nil {
		return nil, mvp.Wrap(err, "camera position")
	}

	s := scene.New()
	s.Camera.Position = pos
	s.Camera.RotX = mvp.Radians(*cam.rotX)
	s.Camera.RotY = mvp.Radians(*cam.rotY)
	s.Camera.MoveForward(*cam.forward)
	s.Orbit = mvp.Radians(*cam.orbit)
	s.Spin = mvp.Radians(*cam.spin)
	return s, nil
}

func doScene(cam cameraFlags) error {
	s, err := buildScene(cam)
	if err != nil {
		return err
	}

	outlines, err := s.Frame()
	if err != nil {
		return err
	}

	showOutlines(os.Stdout, s, outlines)
	return nil
}

func showOutlines(w io.Writer, s *scene.Scene, outlines []scene.Outline) {
	fmt.Fprintf(w, "camera %v, rot_x %.1f, rot_y %.1f\n",
		s.Camera.Position,
		mvp.Degrees(s.Camera.RotX),
		mvp.Degrees(s.Camera.RotY))
	fmt.Fprintln(w, "--------------------")

	for _, o := range outlines {
		mark := checkmark
		if o.Clipped {
			mark = crossmark
		}
		fmt.Fprintf(w, "%v %v (%v)\n", mark, o.Name, o.ID)
		for _, v := range o.Vertices {
			fmt.Fprintf(w, "    %v\n", v)
		}
	}
}
