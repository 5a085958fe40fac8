package pdffont

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/league-infrastructure/flyer-template/model"
)

// Fallback page size when no MediaBox can be resolved (US Letter).
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// FileSpanSource reads the text layer of a PDF file.
type FileSpanSource struct {
	path string
}

// NewFileSpanSource creates a span source for the PDF at path.
func NewFileSpanSource(path string) *FileSpanSource {
	return &FileSpanSource{path: path}
}

// FirstPage extracts the spans of page one, flipped into top-left
// origin point space. A document with no text layer yields a page
// with an empty span list. The pdf parser panics on some malformed
// files; those are reported as errors instead.
func (s *FileSpanSource) FirstPage() (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse %s: %v", s.path, r)
		}
	}()

	f, reader, err := pdf.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	if reader.NumPage() == 0 {
		return nil, fmt.Errorf("%s has no pages", s.path)
	}
	p := reader.Page(1)
	if p.V.IsNull() {
		return nil, fmt.Errorf("%s: first page unreadable", s.path)
	}

	width, height := mediaBoxSize(p)
	page = &Page{Width: width, Height: height}
	page.Spans = groupSpans(p.Content().Text, height)
	return page, nil
}

// mediaBoxSize resolves the page dimensions, following Parent links
// when the MediaBox is inherited.
func mediaBoxSize(p pdf.Page) (float64, float64) {
	node := p.V
	for !node.IsNull() {
		mb := node.Key("MediaBox")
		if !mb.IsNull() && mb.Len() == 4 {
			w := mb.Index(2).Float64() - mb.Index(0).Float64()
			h := mb.Index(3).Float64() - mb.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h
			}
		}
		node = node.Key("Parent")
	}
	return defaultPageWidth, defaultPageHeight
}

// groupSpans coalesces the per-glyph text stream into styled runs.
// Glyphs continue the current run while font, size, and baseline match
// and the horizontal gap stays small; anything else starts a new run.
func groupSpans(texts []pdf.Text, pageHeight float64) []Span {
	var spans []Span

	var (
		open   bool
		font   string
		size   float64
		y      float64
		x0, x1 float64
		chars  int
	)

	flush := func() {
		if !open || chars == 0 {
			return
		}
		spans = append(spans, Span{
			// Glyphs sit on the baseline at y and extend one em up;
			// flip into top-left origin.
			Rect: model.Rect{
				X0: x0,
				Y0: pageHeight - (y + size),
				X1: x1,
				Y1: pageHeight - y,
			},
			Font:  font,
			Size:  size,
			Chars: chars,
		})
		open = false
	}

	for _, t := range texts {
		n := utf8.RuneCountInString(t.S)
		if n == 0 {
			continue
		}
		gap := math.Max(1.0, t.FontSize*0.5)
		continues := open &&
			t.Font == font &&
			t.FontSize == size &&
			math.Abs(t.Y-y) < 0.1 &&
			t.X >= x1-0.1 && t.X-x1 <= gap
		if !continues {
			flush()
			open = true
			font, size, y = t.Font, t.FontSize, t.Y
			x0, x1 = t.X, t.X
			chars = 0
		}
		if end := t.X + t.W; end > x1 {
			x1 = end
		}
		chars += n
	}
	flush()
	return spans
}
