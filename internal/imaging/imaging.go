package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Resize creates a copy of the given image, scaled to width x height.
func Resize(i image.Image, width, height int) *image.RGBA {
	size := image.Rect(0, 0, width, height)
	dst := image.NewRGBA(size)
	// Catmull-Rom keeps the outlines smooth when scaling down
	draw.CatmullRom.Scale(dst, size, i, i.Bounds(), draw.Over, nil)
	return dst
}

// Fill paints the complete destination image with the given color.
func Fill(dst draw.Image, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
