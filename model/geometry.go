package model

import "image"

// Box represents an axis-aligned bounding box in source-image pixel
// space with a top-left origin.
type Box struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NewBox creates a box from position and size.
func NewBox(x, y, width, height int) Box {
	return Box{X: x, Y: y, Width: width, Height: height}
}

// BoxFromRect converts an image.Rectangle to a Box.
func BoxFromRect(r image.Rectangle) Box {
	return Box{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Rect returns the box as an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Area returns the box area in pixels.
func (b Box) Area() int {
	return b.Width * b.Height
}

// Aspect returns the width/height ratio. A zero height counts as one
// pixel so the ratio stays finite.
func (b Box) Aspect() float64 {
	h := b.Height
	if h < 1 {
		h = 1
	}
	return float64(b.Width) / float64(h)
}

// IsValid reports whether the box has positive dimensions.
func (b Box) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// Less orders boxes by ascending (y, x): topmost rows first,
// left-to-right within a row. Detection order, region ids, and the
// persisted region list all follow this ordering.
func (b Box) Less(other Box) bool {
	if b.Y != other.Y {
		return b.Y < other.Y
	}
	return b.X < other.X
}

// Rect represents a rectangle in PDF point space (72 DPI), top-left
// origin, as used by font attribution.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Intersects reports whether two rectangles overlap. Touching edges do
// not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 <= other.X0 || r.X0 >= other.X1 ||
		r.Y1 <= other.Y0 || r.Y0 >= other.Y1)
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return (r.X0 + r.X1) * 0.5
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return (r.Y0 + r.Y1) * 0.5
}
