package compose

import (
	"image"
	"image/color"

	"github.com/league-infrastructure/flyer-template/internal/pix"
	"github.com/league-infrastructure/flyer-template/model"
)

// RenderTemplate returns a copy of img with every region's dilated
// footprint painted in its background color. Regions without a parsed
// background color paint black.
func (c *Compositor) RenderTemplate(img image.Image, regions []model.Region) *image.NRGBA {
	out := pix.Clone(img)

	k := c.config.EdgeDilation
	if k < 1 {
		k = 1
	}
	// Square kernel anchored at its center; even sizes grow one pixel
	// further up-left than down-right.
	grow := k / 2
	shrink := k - 1 - grow

	for _, r := range regions {
		fill := model.RGB{}
		if parsed, err := model.ParseHex(r.BackgroundColor); err == nil {
			fill = parsed
		}
		paintDilated(out, r, fill, grow, shrink)
	}
	return out
}

func paintDilated(out *image.NRGBA, r model.Region, fill model.RGB, grow, shrink int) {
	nc := color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: 255}

	// Solid rectangular footprints (the overwhelmingly common case)
	// dilate to a plain expanded rectangle.
	if r.Contour == nil || r.Contour.PixelCount() == r.Contour.Box.Area() {
		b := r.Box
		if r.Contour != nil {
			b = r.Contour.Box
		}
		fillRect(out, b.X-grow, b.Y-grow, b.X+b.Width+shrink, b.Y+b.Height+shrink, nc)
		return
	}

	for y := r.Contour.Box.Y; y < r.Contour.Box.Y+r.Contour.Box.Height; y++ {
		for x := r.Contour.Box.X; x < r.Contour.Box.X+r.Contour.Box.Width; x++ {
			if r.Contour.At(x, y) {
				fillRect(out, x-grow, y-grow, x+1+shrink, y+1+shrink, nc)
			}
		}
	}
}

// fillRect paints the half-open rectangle [x0,x1)x[y0,y1) clipped to
// the image.
func fillRect(out *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	b := out.Bounds()
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	if y1 > b.Max.Y {
		y1 = b.Max.Y
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			out.SetNRGBA(x, y, c)
		}
	}
}
