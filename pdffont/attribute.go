package pdffont

import (
	"math"

	"github.com/league-infrastructure/flyer-template/model"
)

// Config holds attribution settings.
type Config struct {
	// DPI is the raster resolution region pixels were measured at.
	DPI int

	// MarginPx pads each region rectangle before converting it to
	// point space, so spans clipped at the placeholder edge still
	// intersect.
	MarginPx int

	// MinRadius and RadiusFrac shape the proximity fallback: spans
	// within max(MinRadius, pageDiagonal*RadiusFrac) points of the
	// region center may vote.
	MinRadius  float64
	RadiusFrac float64
}

// DefaultConfig returns attribution settings for the standard 600 DPI
// render.
func DefaultConfig() Config {
	return Config{DPI: 600, MarginPx: 8, MinRadius: 36, RadiusFrac: 0.10}
}

// Attribution is the recovered font for one region.
type Attribution struct {
	Font string
	Size float64
}

// Attributor matches text spans to regions.
type Attributor struct {
	config Config
}

// New creates an Attributor with default settings.
func New() *Attributor {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an Attributor with explicit settings.
func NewWithConfig(config Config) *Attributor {
	if config.DPI < 1 {
		config.DPI = 600
	}
	return &Attributor{config: config}
}

// fontKey identifies one styled run for the primary vote.
type fontKey struct {
	font string
	size float64
}

// tally counts votes with first-seen tie-breaking, so attribution is
// deterministic regardless of map iteration order.
type tally struct {
	counts map[fontKey]int
	order  []fontKey
}

func newTally() *tally {
	return &tally{counts: make(map[fontKey]int)}
}

func (t *tally) add(k fontKey, n int) {
	if _, seen := t.counts[k]; !seen {
		t.order = append(t.order, k)
	}
	t.counts[k] += n
}

func (t *tally) best() (fontKey, bool) {
	var bestKey fontKey
	bestCount := 0
	for _, k := range t.order {
		if t.counts[k] > bestCount {
			bestKey, bestCount = k, t.counts[k]
		}
	}
	return bestKey, bestCount > 0
}

// Attribute resolves the dominant font and size for each region from
// the page's text spans. Regions that cannot be resolved (an empty
// text layer, or no spans anywhere near them) are absent from the
// result.
func (a *Attributor) Attribute(page *Page, regions []model.Region) map[int]Attribution {
	result := make(map[int]Attribution)
	if page == nil || len(regions) == 0 {
		return result
	}

	rects := make(map[int]model.Rect, len(regions))
	for _, r := range regions {
		rects[r.ID] = a.regionRect(r.Box)
	}

	// Primary pass: spans vote into every region they intersect,
	// weighted by character count.
	tallies := make(map[int]*tally, len(regions))
	for _, r := range regions {
		tallies[r.ID] = newTally()
	}
	for _, s := range page.Spans {
		if s.Chars == 0 {
			continue
		}
		for _, r := range regions {
			if s.Rect.Intersects(rects[r.ID]) {
				tallies[r.ID].add(fontKey{font: s.Font, size: s.Size}, s.Chars)
			}
		}
	}

	for _, r := range regions {
		if k, ok := tallies[r.ID].best(); ok {
			result[r.ID] = Attribution{Font: NormalizeFontName(k.font), Size: k.size}
			continue
		}
		if attr, ok := a.nearbyVote(page, rects[r.ID]); ok {
			result[r.ID] = attr
		}
	}

	// Final pass: unresolved regions inherit the page-dominant font.
	if len(result) < len(regions) && len(page.Spans) > 0 {
		if attr, ok := pageDominant(page.Spans); ok {
			for _, r := range regions {
				if _, done := result[r.ID]; !done {
					result[r.ID] = attr
				}
			}
		}
	}
	return result
}

// Apply runs Attribute and writes the result into each region's Font
// and FontSize fields. It reports how many regions were resolved.
func (a *Attributor) Apply(page *Page, regions []model.Region) int {
	attrs := a.Attribute(page, regions)
	for i := range regions {
		if attr, ok := attrs[regions[i].ID]; ok {
			regions[i].Font = attr.Font
			regions[i].FontSize = attr.Size
		}
	}
	return len(attrs)
}

// regionRect converts a pixel-space box to padded point space.
func (a *Attributor) regionRect(b model.Box) model.Rect {
	scale := 72.0 / float64(a.config.DPI)
	m := a.config.MarginPx
	return model.Rect{
		X0: float64(b.X-m) * scale,
		Y0: float64(b.Y-m) * scale,
		X1: float64(b.X+b.Width+m) * scale,
		Y1: float64(b.Y+b.Height+m) * scale,
	}
}

// nearbyVote weighs spans around the region center by character count
// and inverse distance, then weight-averages the winning font's sizes.
func (a *Attributor) nearbyVote(page *Page, rect model.Rect) (Attribution, bool) {
	cx, cy := rect.CenterX(), rect.CenterY()
	diag := math.Hypot(page.Width, page.Height)
	radius := math.Max(a.config.MinRadius, diag*a.config.RadiusFrac)

	weights := make(map[string]float64)
	var order []string
	type accum struct{ sum, weight float64 }
	sizes := make(map[string]accum)

	for _, s := range page.Spans {
		if s.Chars == 0 {
			continue
		}
		dist := math.Hypot(s.Rect.CenterX()-cx, s.Rect.CenterY()-cy)
		if dist > radius {
			continue
		}
		w := float64(s.Chars) / (1.0 + dist)
		if _, seen := weights[s.Font]; !seen {
			order = append(order, s.Font)
		}
		weights[s.Font] += w
		if s.Size > 0 {
			acc := sizes[s.Font]
			sizes[s.Font] = accum{sum: acc.sum + s.Size*w, weight: acc.weight + w}
		}
	}
	if len(weights) == 0 {
		return Attribution{}, false
	}

	var top string
	bestWeight := math.Inf(-1)
	for _, f := range order {
		if weights[f] > bestWeight {
			top, bestWeight = f, weights[f]
		}
	}
	var size float64
	if acc := sizes[top]; acc.weight > 0 {
		size = acc.sum / acc.weight
	}
	return Attribution{Font: NormalizeFontName(top), Size: size}, true
}

// pageDominant returns the most used font on the page with its
// character-weighted average size.
func pageDominant(spans []Span) (Attribution, bool) {
	counts := make(map[string]int)
	var order []string
	type accum struct {
		sum   float64
		chars int
	}
	sizes := make(map[string]accum)

	for _, s := range spans {
		if s.Chars == 0 {
			continue
		}
		if _, seen := counts[s.Font]; !seen {
			order = append(order, s.Font)
		}
		counts[s.Font] += s.Chars
		if s.Size > 0 {
			acc := sizes[s.Font]
			sizes[s.Font] = accum{sum: acc.sum + s.Size*float64(s.Chars), chars: acc.chars + s.Chars}
		}
	}
	if len(counts) == 0 {
		return Attribution{}, false
	}

	var top string
	best := 0
	for _, f := range order {
		if counts[f] > best {
			top, best = f, counts[f]
		}
	}
	var size float64
	if acc := sizes[top]; acc.chars > 0 {
		size = acc.sum / float64(acc.chars)
	}
	return Attribution{Font: NormalizeFontName(top), Size: size}, true
}

// EstimateSize approximates a single-line font size in points from a
// region height in pixels, for sources without a text layer. The
// result is clamped to [8, 72] points and rounded to a tenth.
func EstimateSize(heightPx, dpi int) float64 {
	if dpi < 1 {
		dpi = 600
	}
	pt := float64(heightPx) * 0.5 * 72.0 / float64(dpi)
	if pt < 8 {
		pt = 8
	}
	if pt > 72 {
		pt = 72
	}
	return math.Round(pt*10) / 10
}
