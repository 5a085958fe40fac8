package compose

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// DefaultFontSearchPaths lists common system locations for a label
// font, tried in order when no explicit font path is configured.
var DefaultFontSearchPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	"/Library/Fonts/Arial.ttf",
}

// loadLabelFont resolves the label font. An explicit path must load;
// search paths are best effort and fall through to the embedded Go
// Bold face, so a usable font always comes back.
func loadLabelFont(path string, searchPaths []string) (*truetype.Font, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("label font %s: %w", path, err)
		}
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("label font %s: %w", path, err)
		}
		return f, nil
	}

	for _, p := range searchPaths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if f, err := truetype.Parse(data); err == nil {
			return f, nil
		}
	}

	return truetype.Parse(gobold.TTF)
}

func newFace(f *truetype.Font, size int) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: float64(size)})
}
