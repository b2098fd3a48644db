package plot

import (
	"image"
	"image/png"
	"io"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/akeil/mvp/internal/imaging"
	"github.com/akeil/mvp/internal/logging"
	"github.com/akeil/mvp/pkg/scene"
)

// supersample is the factor by which the canvas is larger than the result.
const supersample = 2

// PNG paints the given outlines and writes the PNG data to w.
func (c *Context) PNG(outlines []scene.Outline, w io.Writer) error {
	err := c.checkSize()
	if err != nil {
		return err
	}
	logging.Debug("plot %d outlines to PNG, size %d", len(outlines), c.Size)

	canvasSize := c.Size * supersample
	m, err := viewport(float64(canvasSize))
	if err != nil {
		return err
	}

	dst := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	imaging.Fill(dst, c.Background)

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetLineJoin(draw2d.RoundJoin)

	// axes
	mid := float64(canvasSize) / 2
	gc.SetStrokeColor(c.Grid)
	gc.SetLineWidth(supersample)
	gc.BeginPath()
	gc.MoveTo(0, mid)
	gc.LineTo(float64(canvasSize), mid)
	gc.MoveTo(mid, 0)
	gc.LineTo(mid, float64(canvasSize))
	gc.Stroke()

	gc.SetLineWidth(2 * supersample)
	for _, o := range outlines {
		pts, ok := project(m, o)
		if !ok {
			continue
		}

		gc.SetFillColor(o.Color)
		gc.SetStrokeColor(o.Color)
		gc.BeginPath()
		gc.MoveTo(pts[0].x, pts[0].y)
		for _, p := range pts[1:] {
			gc.LineTo(p.x, p.y)
		}
		gc.Close()
		gc.FillStroke()
	}

	result := imaging.Resize(dst, c.Size, c.Size)
	return png.Encode(w, result)
}
