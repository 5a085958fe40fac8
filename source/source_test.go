package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"poster.pdf", PDF},
		{"poster.PDF", PDF},
		{"mockup.png", Raster},
		{"mockup.JPG", Raster},
		{"mockup.jpeg", Raster},
		{"mockup.gif", Raster},
		{"mockup.bmp", Raster},
		{"mockup.tiff", Raster},
		{"mockup.tif", Raster},
		{"mockup.webp", Raster},
		{"notes.txt", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Detect(tt.path); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestOpenRaster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mockup.png")

	img := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	src, err := Open(path, 600)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	if src.Vector() {
		t.Error("raster source should not report a vector text layer")
	}

	decoded, err := src.Render()
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 40 || decoded.Bounds().Dy() != 30 {
		t.Errorf("decoded bounds = %v, want 40x30", decoded.Bounds())
	}
}

func TestOpenUnsupported(t *testing.T) {
	if _, err := Open("layout.svg", 600); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestOpenRasterMissingFile(t *testing.T) {
	if _, err := OpenRaster(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
