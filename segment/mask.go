package segment

import (
	"image"

	"github.com/league-infrastructure/flyer-template/internal/pix"
	"github.com/league-infrastructure/flyer-template/model"
)

// BuildMask builds a binary mask over img where a pixel is foreground
// (255) iff every channel lies within tolerance of the corresponding
// target channel. The mask bounds are normalized to a zero origin.
func BuildMask(img image.Image, target model.RGB, tolerance int) *image.Gray {
	b := img.Bounds()
	mask := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := pix.At(img, b.Min.X+x, b.Min.Y+y)
			if within(c.R, target.R, tolerance) &&
				within(c.G, target.G, tolerance) &&
				within(c.B, target.B, tolerance) {
				mask.Pix[y*mask.Stride+x] = 255
			}
		}
	}
	return mask
}

func within(v, target uint8, tolerance int) bool {
	d := int(v) - int(target)
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
