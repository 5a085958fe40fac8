package pdffont

import (
	"strings"

	"github.com/league-infrastructure/flyer-template/model"
)

// Span is one run of same-styled text on a page, in point space with a
// top-left origin.
type Span struct {
	Rect  model.Rect
	Font  string
	Size  float64
	Chars int
}

// Page holds the text layer of a single page. Width and Height are in
// points. A page with no text layer has an empty span list.
type Page struct {
	Width  float64
	Height float64
	Spans  []Span
}

// SpanSource extracts the text layer of a document's first page.
type SpanSource interface {
	FirstPage() (*Page, error)
}

// NormalizeFontName strips the subset prefix from an embedded font
// name ("ABCDEF+Helvetica-Bold" becomes "Helvetica-Bold") and trims
// whitespace. Style suffixes stay intact.
func NormalizeFontName(name string) string {
	s := strings.TrimSpace(name)
	if i := strings.Index(s, "+"); i >= 0 {
		s = s[i+1:]
	}
	return s
}
