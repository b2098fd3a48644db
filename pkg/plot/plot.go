// Package plot draws projected outlines for inspection.
//
// The plots show the NDC square [-1,1] x [-1,1] with x to the right and y
// up. Only x and y of each vertex are used; outlines are painted in the
// order given, so callers pass them back to front.
package plot

import (
	"image/color"
	"time"

	"golang.org/x/image/math/f64"

	"github.com/akeil/mvp"
	"github.com/akeil/mvp/internal/imaging"
	"github.com/akeil/mvp/internal/logging"
	"github.com/akeil/mvp/pkg/scene"
)

const tsFormat = "2006-01-02 15:04:05"

// Context holds the parameters for plotting.
type Context struct {
	// Size is the edge length of the square plot,
	// in pixels for PNG and in points for PDF.
	Size       int
	Title      string
	Background color.RGBA

	// Grid is the color of the NDC axes.
	Grid    color.RGBA
	Created time.Time
}

// NewContext sets up a plot context with default colors.
func NewContext(size int, title string) *Context {
	return &Context{
		Size:       size,
		Title:      title,
		Background: color.RGBA{0, 0, 0, 255},
		Grid:       color.RGBA{80, 80, 80, 255},
		Created:    time.Now(),
	}
}

func (c *Context) checkSize() error {
	if c.Size <= 0 {
		return mvp.NewInvalidParameter("plot size must be positive, got %d", c.Size)
	}
	return nil
}

// viewport maps NDC to a square canvas with the given edge length,
// origin at the top left corner and y pointing down.
func viewport(size float64) (f64.Aff3, error) {
	s, err := mvp.Scale(mvp.Vector2D{X: size / 2, Y: -size / 2})
	if err != nil {
		return f64.Aff3{}, err
	}
	fn := mvp.Compose(s, mvp.Translate(mvp.Vector2D{X: 1, Y: -1}))
	logging.Debug("viewport %v", fn)
	return mvp.Affine2(fn)
}

// point is a vertex in canvas coordinates.
type point struct {
	x, y float64
}

// project maps the outline to canvas coordinates.
// The second return value is false for clipped outlines.
func project(m f64.Aff3, o scene.Outline) ([]point, bool) {
	if o.Clipped {
		logging.Warning("skip clipped shape %q", o.Name)
		return nil, false
	}
	if len(o.Vertices) < 2 {
		return nil, false
	}

	pts := make([]point, len(o.Vertices))
	for i, v := range o.Vertices {
		x, y := imaging.Transform(m, v.X, v.Y)
		pts[i] = point{x, y}
	}
	return pts, true
}
