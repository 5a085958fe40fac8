//go:build ocr

// Package ocr recognizes the text printed inside placeholder regions,
// so persisted regions carry human-readable names.
//
// This package wraps the Tesseract engine via gosseract and requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Builds without the "ocr" build tag get a stub whose constructor
// returns ErrOCRNotEnabled; region names are then left empty.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/league-infrastructure/flyer-template/internal/pix"
	"github.com/league-infrastructure/flyer-template/model"
)

// Client wraps Tesseract for region text recognition.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client configured for single-block recognition,
// which suits the short runs of text found in placeholder regions.
// Close the client when done to release Tesseract resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("configure page segmentation: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources. Safe on a nil client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// SetLanguage sets the recognition language(s). Multiple languages are
// "+" separated (e.g. "eng+fra"); the default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeRegion crops box out of img and recognizes its text. The
// result has interior whitespace collapsed to single spaces and may be
// empty when nothing legible is found.
func (c *Client) RecognizeRegion(img image.Image, box model.Box) (string, error) {
	crop := cropRegion(img, box)

	var buf bytes.Buffer
	if err := png.Encode(&buf, crop); err != nil {
		return "", fmt.Errorf("encode region crop: %w", err)
	}
	if err := c.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("set region image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize region: %w", err)
	}
	return Normalize(text), nil
}

func cropRegion(img image.Image, box model.Box) *image.NRGBA {
	b := img.Bounds()
	crop := image.NewNRGBA(image.Rect(0, 0, box.Width, box.Height))
	for y := 0; y < box.Height; y++ {
		for x := 0; x < box.Width; x++ {
			c := pix.At(img, b.Min.X+box.X+x, b.Min.Y+box.Y+y)
			crop.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return crop
}
