package segment

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/league-infrastructure/flyer-template/model"
)

// ErrNoRegions is returned when the mask contains no foreground pixels
// at the given tolerance. It usually signals a misconfigured
// placeholder color.
var ErrNoRegions = errors.New("no placeholder regions found")

// Config holds segmentation settings.
type Config struct {
	// Tolerance is the per-channel allowed deviation from the
	// placeholder color, 0-255.
	Tolerance int
}

// DefaultConfig returns segmentation settings matching the standard
// mockup workflow.
func DefaultConfig() Config {
	return Config{Tolerance: 20}
}

// Segmenter detects placeholder regions by color.
type Segmenter struct {
	config Config
	finder ContourFinder
}

// New creates a Segmenter with default settings and the flood-fill
// contour finder.
func New() *Segmenter {
	return NewWithConfig(DefaultConfig(), NewFloodFinder())
}

// NewWithConfig creates a Segmenter with explicit settings and contour
// finder. A nil finder falls back to the flood-fill default.
func NewWithConfig(config Config, finder ContourFinder) *Segmenter {
	if finder == nil {
		finder = NewFloodFinder()
	}
	return &Segmenter{config: config, finder: finder}
}

// Detect finds all placeholder regions in img. The returned regions
// carry geometry only (box and contour footprint); ids run 1..N in
// ascending (y, x) order of the bounding boxes.
func (s *Segmenter) Detect(img image.Image, placeholder model.RGB) ([]model.Region, error) {
	mask := BuildMask(img, placeholder, s.config.Tolerance)

	contours, err := s.finder.FindContours(mask)
	if err != nil {
		return nil, fmt.Errorf("contour extraction failed: %w", err)
	}
	if len(contours) == 0 {
		return nil, fmt.Errorf("%w for placeholder color %s (tolerance=%d)",
			ErrNoRegions, placeholder.Hex(), s.config.Tolerance)
	}

	sort.SliceStable(contours, func(i, j int) bool {
		return contours[i].Box.Less(contours[j].Box)
	})

	regions := make([]model.Region, len(contours))
	for i, c := range contours {
		regions[i] = model.Region{
			ID:      i + 1,
			Box:     c.Box,
			Contour: c,
		}
	}
	return regions, nil
}
