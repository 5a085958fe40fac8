package source

import (
	"path/filepath"
	"strings"
)

// Kind represents a supported source kind.
type Kind int

const (
	// Unknown indicates an unrecognized source kind.
	Unknown Kind = iota
	// PDF indicates a vector PDF document.
	PDF
	// Raster indicates a bitmap image file.
	Raster
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case PDF:
		return "PDF"
	case Raster:
		return "Raster"
	default:
		return "Unknown"
	}
}

var rasterExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// Detect determines the source kind from the file extension.
func Detect(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return PDF
	case rasterExts[ext]:
		return Raster
	default:
		return Unknown
	}
}
