package compose

import (
	"fmt"
	"image"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/league-infrastructure/flyer-template/model"
)

const labelMarginFactor = 0.85

// RenderReference draws region outlines and centered labels over a
// copy of the template image. Outlines use the placeholder color so
// the reference reads as "what was where" next to the cleaned
// template.
func (c *Compositor) RenderReference(template image.Image, regions []model.Region, placeholder model.RGB) image.Image {
	dc := gg.NewContextForImage(template)

	dc.SetRGB255(int(placeholder.R), int(placeholder.G), int(placeholder.B))
	dc.SetLineWidth(2)
	for _, r := range regions {
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width-1), float64(r.Height-1))
		dc.Stroke()
	}

	for _, r := range regions {
		c.drawLabel(dc, r)
	}
	return dc.Image()
}

func (c *Compositor) drawLabel(dc *gg.Context, r model.Region) {
	label := strconv.Itoa(r.ID)
	if r.Name != "" {
		label = fmt.Sprintf("%d: %s", r.ID, r.Name)
	}

	size, bounds := c.fitLabel(label, r.Width, r.Height)
	dc.SetFontFace(newFace(c.font, size))

	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	th := (bounds.Max.Y - bounds.Min.Y).Ceil()

	// Center the glyph bounding box in the region, then shift to the
	// baseline origin DrawString expects.
	tx := float64(r.X) + float64(r.Width-tw)/2
	ty := float64(r.Y) + float64(r.Height-th)/2
	baseX := tx - toFloat(bounds.Min.X)
	baseY := ty - toFloat(bounds.Min.Y)

	outline := (tw + th) / 90
	if outline < 4 {
		outline = 4
	}
	if outline > 18 {
		outline = 18
	}

	dc.SetRGB255(255, 255, 255)
	for dy := -outline; dy <= outline; dy++ {
		for dx := -outline; dx <= outline; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			dc.DrawString(label, baseX+float64(dx), baseY+float64(dy))
		}
	}
	dc.SetRGB255(0, 0, 0)
	dc.DrawString(label, baseX, baseY)
}

// fitLabel binary-searches for the largest font size whose rendered
// label fits within the margin of both region dimensions. The lower
// bound survives even when it does not fit, so tiny regions still get
// a readable label.
func (c *Compositor) fitLabel(label string, w, h int) (int, fixed.Rectangle26_6) {
	targetW := int(float64(w) * labelMarginFactor)
	targetH := int(float64(h) * labelMarginFactor)

	minDim := w
	if h < minDim {
		minDim = h
	}
	lo := minDim / 20
	if lo < 12 {
		lo = 12
	}
	hi := minDim * 2
	if hi < lo+10 {
		hi = lo + 10
	}

	best := lo
	bestBounds := c.measure(label, lo)
	for lo <= hi {
		mid := (lo + hi) / 2
		bb := c.measure(label, mid)
		tw := (bb.Max.X - bb.Min.X).Ceil()
		th := (bb.Max.Y - bb.Min.Y).Ceil()
		if tw <= targetW && th <= targetH {
			best, bestBounds = mid, bb
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best, bestBounds
}

func (c *Compositor) measure(label string, size int) fixed.Rectangle26_6 {
	face := newFace(c.font, size)
	bounds, _ := font.BoundString(face, label)
	return bounds
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
