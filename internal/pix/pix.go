// Package pix provides shared pixel access helpers for the analysis
// pipeline. Fast paths cover the image types the pipeline actually
// produces (RGBA from the PDF renderer, NRGBA from PNG decoding); the
// generic fallback handles everything else.
package pix

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/league-infrastructure/flyer-template/model"
)

// At returns the RGB color of the pixel at (x, y), ignoring alpha.
func At(img image.Image, x, y int) model.RGB {
	switch im := img.(type) {
	case *image.RGBA:
		i := im.PixOffset(x, y)
		return model.RGB{R: im.Pix[i], G: im.Pix[i+1], B: im.Pix[i+2]}
	case *image.NRGBA:
		i := im.PixOffset(x, y)
		return model.RGB{R: im.Pix[i], G: im.Pix[i+1], B: im.Pix[i+2]}
	default:
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		return model.RGB{R: c.R, G: c.G, B: c.B}
	}
}

// Clone returns a deep copy of img as a zero-origin *image.NRGBA.
func Clone(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
