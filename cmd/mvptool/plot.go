package main

import (
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/mvp"
	"github.com/akeil/mvp/internal/fs"
	"github.com/akeil/mvp/internal/logging"
	"github.com/akeil/mvp/pkg/plot"
	"github.com/akeil/mvp/pkg/scene"
)

func doPlot(s settings, cam cameraFlags, formats []string, frames int) error {
	if frames < 1 {
		return mvp.NewInvalidParameter("frames must be at least 1, got %d", frames)
	}

	var group errgroup.Group
	for _, format := range formats {
		format := format
		group.Go(func() error {
			// each output draws its own scene with its own stack
			sc, err := buildScene(cam)
			if err != nil {
				return err
			}
			path := filepath.Join(s.outDir, "scene."+format)
			return writePlot(s, sc, format, frames, path)
		})
	}
	return group.Wait()
}

func writePlot(s settings, sc *scene.Scene, format string, frames int, path string) error {
	fmt.Printf("%v plot %v\n", ellipsis, format)
	pc := plot.NewContext(s.size, "mvp demo scene")

	var render func(w io.Writer) error
	switch format {
	case "png":
		outlines, err := sc.Frame()
		if err != nil {
			return err
		}
		render = func(w io.Writer) error {
			return pc.PNG(outlines, w)
		}
	case "pdf":
		pages, err := orbitFrames(sc, frames)
		if err != nil {
			return err
		}
		render = func(w io.Writer) error {
			return pc.PDF(pages, w)
		}
	default:
		return fmt.Errorf("unsupported format %q, choose one of 'png', 'pdf'", format)
	}

	err := fs.WriteFile(path, render)
	if err != nil {
		fmt.Printf("%v Failed to plot %v: %v\n", crossmark, format, err)
		return err
	}

	logging.Info("wrote %v", path)
	fmt.Printf("%v %v saved as %q.\n", checkmark, format, path)
	return nil
}

// orbitFrames draws the scene n times, advancing the orbit of the square
// by a full turn divided by n on each frame.
func orbitFrames(sc *scene.Scene, n int) ([][]scene.Outline, error) {
	start := sc.Orbit
	step := mvp.Radians(360.0 / float64(n))

	pages := make([][]scene.Outline, n)
	for i := 0; i < n; i++ {
		sc.Orbit = start + float64(i)*step
		outlines, err := sc.Frame()
		if err != nil {
			return nil, err
		}
		pages[i] = outlines
	}
	sc.Orbit = start
	return pages, nil
}
