//go:build !ocr

package ocr

import (
	"errors"
	"image"
	"testing"

	"github.com/league-infrastructure/flyer-template/model"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if err == nil {
		t.Error("Expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when OCR is disabled")
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestRecognizeRegionReturnsError(t *testing.T) {
	client := &Client{}
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	_, err := client.RecognizeRegion(img, model.NewBox(0, 0, 5, 5))
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
}
