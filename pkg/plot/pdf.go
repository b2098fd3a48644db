package plot

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/mvp"
	"github.com/akeil/mvp/internal/logging"
	"github.com/akeil/mvp/pkg/scene"
)

// PDF writes one page per frame to w.
//
// Each page is a square of Size points with a footer showing the page
// number, the title and the creation time.
func (c *Context) PDF(frames [][]scene.Outline, w io.Writer) error {
	err := c.checkSize()
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return mvp.NewInvalidParameter("no frames to plot")
	}
	logging.Debug("plot %d frames to PDF, size %d", len(frames), c.Size)

	size := float64(c.Size)
	m, err := viewport(size)
	if err != nil {
		return err
	}

	pdf := c.setupPDF()
	for _, outlines := range frames {
		pdf.AddPage()

		r, g, b := rgb(c.Background)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(0, 0, size, size, "F")

		r, g, b = rgb(c.Grid)
		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(0.5)
		pdf.Line(0, size/2, size, size/2)
		pdf.Line(size/2, 0, size/2, size)

		pdf.SetLineWidth(1)
		for _, o := range outlines {
			pts, ok := project(m, o)
			if !ok {
				continue
			}

			polygon := make([]gofpdf.PointType, len(pts))
			for i, p := range pts {
				polygon[i] = gofpdf.PointType{X: p.x, Y: p.y}
			}
			r, g, b := rgb(o.Color)
			pdf.SetFillColor(r, g, b)
			pdf.SetDrawColor(r, g, b)
			pdf.Polygon(polygon, "DF")
		}
	}

	// keep the error that gofpdf collected while drawing
	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.Output(w)
}

func (c *Context) setupPDF() *gofpdf.Fpdf {
	size := float64(c.Size)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size, Ht: size},
	})

	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)
	pdf.SetProducer("mvptool", true)
	pdf.SetTitle(c.Title, true)

	created := c.Created.UTC()
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-16)
		pdf.SetX(8)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v (%v)",
			pdf.PageNo(),
			c.Title,
			c.Created.Local().Format(tsFormat))
	})

	return pdf
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
