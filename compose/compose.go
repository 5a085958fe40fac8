package compose

import (
	"github.com/golang/freetype/truetype"
)

// Config holds rendering settings.
type Config struct {
	// EdgeDilation is the side length in pixels of the square kernel
	// used to grow each region's footprint before repainting.
	EdgeDilation int

	// LabelFontPath, when set, names the TrueType font used for
	// reference labels. It must load or rendering fails.
	LabelFontPath string

	// FontSearchPaths are tried in order when LabelFontPath is empty.
	// An embedded face is the final fallback.
	FontSearchPaths []string
}

// DefaultConfig returns rendering settings matching the standard
// workflow.
func DefaultConfig() Config {
	return Config{
		EdgeDilation:    5,
		FontSearchPaths: DefaultFontSearchPaths,
	}
}

// Compositor renders template and reference images.
type Compositor struct {
	config Config
	font   *truetype.Font
}

// New creates a Compositor with default settings.
func New() (*Compositor, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Compositor with explicit settings. The label
// font is resolved eagerly so rendering cannot fail halfway through.
func NewWithConfig(config Config) (*Compositor, error) {
	if config.FontSearchPaths == nil {
		config.FontSearchPaths = DefaultFontSearchPaths
	}
	f, err := loadLabelFont(config.LabelFontPath, config.FontSearchPaths)
	if err != nil {
		return nil, err
	}
	return &Compositor{config: config, font: f}, nil
}
