package model

// Region is one detected placeholder area. Regions are created by the
// segmenter with geometry only, then progressively decorated by the
// later pipeline stages (background color, OCR text, role, font), and
// become immutable once serialized into a TemplateMetadata document.
type Region struct {
	// ID is assigned from detection order (ascending y, then x),
	// starting at 1. Ids are contiguous and never reused.
	ID int `yaml:"id"`

	// Name carries the OCR text recognized inside the placeholder,
	// empty if OCR is unavailable or found nothing.
	Name string `yaml:"name"`

	// Role is the semantic tag assigned by the classifier (or curated
	// by a human and preserved across re-analysis). Empty means
	// unclassified.
	Role string `yaml:"role"`

	Box `yaml:",inline"`

	// BackgroundColor is the inferred fill behind the placeholder as a
	// lowercase hex string. Always resolvable; "#000000" when nothing
	// could be sampled.
	BackgroundColor string `yaml:"background_color"`

	// Font and FontSize are populated for vector (PDF) sources only.
	Font     string  `yaml:"font,omitempty"`
	FontSize float64 `yaml:"font_size,omitempty"`

	// Contour is the exact pixel footprint of the placeholder,
	// owned exclusively by this Region. Not serialized.
	Contour *Contour `yaml:"-"`
}

// TemplateMetadata is the persisted analysis result for one template:
// the placeholder color, template pixel dimensions, stylesheet
// references, and the ordered region list. Region order equals
// detection order.
type TemplateMetadata struct {
	Source       string   `yaml:"source"`
	ContentColor string   `yaml:"content_color"`
	Width        int      `yaml:"width"`
	Height       int      `yaml:"height"`
	CSS          []string `yaml:"css"`
	Regions      []Region `yaml:"regions"`
}

// NewTemplateMetadata creates a metadata document with an empty (but
// present) stylesheet list.
func NewTemplateMetadata(source, contentColor string, width, height int) *TemplateMetadata {
	return &TemplateMetadata{
		Source:       source,
		ContentColor: contentColor,
		Width:        width,
		Height:       height,
		CSS:          []string{},
	}
}
