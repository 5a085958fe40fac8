package model

// Contour is the exact pixel footprint of one connected component,
// stored as a bitmask over its bounding box. The footprint is used for
// dilation and fill during template compositing and is never shared
// between regions.
type Contour struct {
	Box  Box
	mask []bool // row-major within Box
}

// NewContour allocates an empty footprint covering box.
func NewContour(box Box) *Contour {
	return &Contour{
		Box:  box,
		mask: make([]bool, box.Width*box.Height),
	}
}

// Set marks the pixel at absolute image coordinates (x, y) as part of
// the footprint. Coordinates outside the bounding box are ignored.
func (c *Contour) Set(x, y int) {
	dx, dy := x-c.Box.X, y-c.Box.Y
	if dx < 0 || dy < 0 || dx >= c.Box.Width || dy >= c.Box.Height {
		return
	}
	c.mask[dy*c.Box.Width+dx] = true
}

// At reports whether the pixel at absolute image coordinates (x, y)
// belongs to the footprint.
func (c *Contour) At(x, y int) bool {
	dx, dy := x-c.Box.X, y-c.Box.Y
	if dx < 0 || dy < 0 || dx >= c.Box.Width || dy >= c.Box.Height {
		return false
	}
	return c.mask[dy*c.Box.Width+dx]
}

// PixelCount returns the number of pixels in the footprint.
func (c *Contour) PixelCount() int {
	n := 0
	for _, on := range c.mask {
		if on {
			n++
		}
	}
	return n
}
