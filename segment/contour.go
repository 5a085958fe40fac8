package segment

import (
	"image"

	"github.com/league-infrastructure/flyer-template/model"
)

// ContourFinder extracts the connected foreground components of a
// binary mask, each with its exact pixel footprint and axis-aligned
// bounding box. Holes inside a component are not reported.
type ContourFinder interface {
	FindContours(mask *image.Gray) ([]*model.Contour, error)
}

// FloodFinder is the default ContourFinder: an iterative 8-connected
// flood-fill component scan over the mask.
type FloodFinder struct{}

// NewFloodFinder creates a FloodFinder.
func NewFloodFinder() *FloodFinder {
	return &FloodFinder{}
}

// FindContours scans the mask row by row and flood-fills each
// unvisited foreground pixel into a component. Components are returned
// in discovery order; callers are responsible for sorting.
func (f *FloodFinder) FindContours(mask *image.Gray) ([]*model.Contour, error) {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	visited := make([]bool, w*h)

	var contours []*model.Contour
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] || mask.Pix[y*mask.Stride+x] <= 128 {
				continue
			}
			contours = append(contours, floodFill(mask, visited, x, y))
		}
	}
	return contours, nil
}

// floodFill grows one component from (startX, startY) and returns its
// footprint. Coordinates are packed into uint32s while filling to keep
// the working set small for large regions.
func floodFill(mask *image.Gray, visited []bool, startX, startY int) *model.Contour {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	minX, minY := startX, startY
	maxX, maxY := startX, startY

	pack := func(x, y int) uint32 { return uint32(x)<<16 | uint32(y) }

	var points []uint32
	stack := []uint32{pack(startX, startY)}
	visited[startY*w+startX] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := int(p>>16), int(p&0xffff)

		points = append(points, p)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				if visited[ny*w+nx] || mask.Pix[ny*mask.Stride+nx] <= 128 {
					continue
				}
				visited[ny*w+nx] = true
				stack = append(stack, pack(nx, ny))
			}
		}
	}

	contour := model.NewContour(model.NewBox(minX, minY, maxX-minX+1, maxY-minY+1))
	for _, p := range points {
		contour.Set(int(p>>16), int(p&0xffff))
	}
	return contour
}
