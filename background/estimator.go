package background

import (
	"image"
	"math"

	"github.com/league-infrastructure/flyer-template/internal/pix"
	"github.com/league-infrastructure/flyer-template/model"
)

// Config holds background estimation settings.
type Config struct {
	// Offset is the gap in pixels between the region edge and the
	// sample strip.
	Offset int

	// StripWidth is the sampled strip thickness in pixels.
	StripWidth int

	// QuantStep is the per-channel quantization step applied to the
	// pooled samples before taking the mode.
	QuantStep int
}

// DefaultConfig returns estimation settings tuned for anti-aliased
// mockup exports.
func DefaultConfig() Config {
	return Config{Offset: 5, StripWidth: 2, QuantStep: 8}
}

// Estimator infers the background color behind a region.
type Estimator struct {
	config Config
}

// New creates an Estimator with default settings.
func New() *Estimator {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an Estimator with explicit settings.
func NewWithConfig(config Config) *Estimator {
	if config.QuantStep < 1 {
		config.QuantStep = 1
	}
	return &Estimator{config: config}
}

// Estimate returns the inferred background color for box as a
// lowercase hex string. The result is always resolvable: with zero
// available samples it is exactly "#000000".
func (e *Estimator) Estimate(img image.Image, box model.Box) string {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	offset, strip := e.config.Offset, e.config.StripWidth

	// Vertical band covering the middle 60% of the region height.
	y0 := clamp(int(math.Round(float64(box.Y)+float64(box.Height)*0.2)), 0, height-1)
	y1 := clamp(int(math.Round(float64(box.Y)+float64(box.Height)*0.8)), 0, height)
	if y1 <= y0 {
		y0 = clamp(box.Y, 0, height-1)
		y1 = clamp(box.Y+box.Height, 0, height)
	}

	var samples []model.RGB
	collect := func(x0, x1, sy0, sy1 int) {
		for y := sy0; y < sy1; y++ {
			for x := x0; x < x1; x++ {
				samples = append(samples, pix.At(img, b.Min.X+x, b.Min.Y+y))
			}
		}
	}

	leftX := box.X - offset
	if leftX >= 0 {
		collect(max(0, leftX-strip), min(width, leftX+1), y0, y1)
	}

	rightX := box.X + box.Width + offset
	if rightX < width {
		collect(max(0, rightX), min(width, rightX+strip+1), y0, y1)
	}

	// Image boundary on both sides: fall back to strips above and
	// below the region with the same offset logic.
	if len(samples) == 0 {
		topY := box.Y - offset
		if topY >= 0 {
			collect(max(0, box.X), min(width, box.X+box.Width), max(0, topY-strip), min(height, topY+1))
		}
		bottomY := box.Y + box.Height + offset
		if bottomY < height {
			collect(max(0, box.X), min(width, box.X+box.Width), max(0, bottomY), min(height, bottomY+strip+1))
		}
	}

	if len(samples) == 0 {
		return "#000000"
	}

	return e.mode(samples).Hex()
}

// mode quantizes the samples and returns the most frequent color.
// When two quantized colors are equally frequent the one with the
// lowest packed value wins, keeping the estimate deterministic.
func (e *Estimator) mode(samples []model.RGB) model.RGB {
	step := e.config.QuantStep
	counts := make(map[model.RGB]int)
	for _, s := range samples {
		counts[quantize(s, step)]++
	}

	var best model.RGB
	bestCount := -1
	for c, n := range counts {
		if n > bestCount || (n == bestCount && c.Packed() < best.Packed()) {
			best, bestCount = c, n
		}
	}
	return best
}

// quantize snaps each channel to the nearest multiple of step with a
// +step/2 bias, clamped to [0, 255].
func quantize(c model.RGB, step int) model.RGB {
	q := func(v uint8) uint8 {
		n := ((int(v) + step/2) / step) * step
		return uint8(clamp(n, 0, 255))
	}
	return model.RGB{R: q(c.R), G: q(c.G), B: q(c.B)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
