//go:build ocr

package ocr

import (
	"image"
	"image/color"
	"testing"

	"github.com/league-infrastructure/flyer-template/model"
)

// textlessImage builds a white image with a black rectangle. OCR finds
// nothing legible in it, which is exactly what the tests need.
func textlessImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	for y := 10; y < 30; y++ {
		for x := 10; x < 50; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	return img
}

func TestNew(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if client == nil {
		t.Error("Expected non-nil client")
	}
}

func TestRecognizeRegion(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	// The crop holds only a featureless rectangle; the call must
	// succeed even when nothing is recognized.
	_, err = client.RecognizeRegion(textlessImage(200, 100), model.NewBox(0, 0, 100, 50))
	if err != nil {
		t.Errorf("RecognizeRegion failed: %v", err)
	}
}

func TestSetLanguage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		t.Errorf("SetLanguage failed: %v", err)
	}
}

func TestCropRegion(t *testing.T) {
	img := textlessImage(200, 100)
	crop := cropRegion(img, model.NewBox(10, 10, 40, 20))
	if crop.Bounds().Dx() != 40 || crop.Bounds().Dy() != 20 {
		t.Fatalf("crop bounds = %v", crop.Bounds())
	}
	if crop.NRGBAAt(0, 0) != (color.NRGBA{A: 255}) {
		t.Error("crop origin should land on the black rectangle")
	}
}
