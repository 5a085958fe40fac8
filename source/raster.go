package source

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// RasterSource decodes a bitmap image file.
type RasterSource struct {
	path string
}

// OpenRaster opens a raster image file. The image is not decoded until
// Render is called.
func OpenRaster(path string) (*RasterSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &RasterSource{path: path}, nil
}

// Render decodes the image.
func (s *RasterSource) Render() (image.Image, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", s.path, err)
	}
	return img, nil
}

// Vector always reports false for raster sources.
func (s *RasterSource) Vector() bool { return false }

// Close is a no-op for raster sources.
func (s *RasterSource) Close() error { return nil }
