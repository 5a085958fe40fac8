package source

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Source is a loaded flyer mockup ready for analysis.
type Source interface {
	// Render produces the source raster. For PDFs this is the first
	// page rendered at the configured DPI; for raster files it is the
	// decoded image.
	Render() (image.Image, error)

	// Vector reports whether the source carries a vector text layer
	// usable for font attribution.
	Vector() bool

	// Close releases resources held by the source.
	Close() error
}

// Open loads the file at path as a Source. PDF sources render at the
// given DPI; dpi is ignored for raster files.
func Open(path string, dpi int) (Source, error) {
	switch Detect(path) {
	case PDF:
		return OpenPDF(path, dpi)
	case Raster:
		return OpenRaster(path)
	default:
		return nil, fmt.Errorf("unsupported source file: %s", path)
	}
}

// PDFSource renders the first page of a PDF document via MuPDF.
type PDFSource struct {
	doc *fitz.Document
	dpi int
}

// OpenPDF opens a PDF document for rendering at the given DPI.
func OpenPDF(path string, dpi int) (*PDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	if doc.NumPage() == 0 {
		doc.Close()
		return nil, fmt.Errorf("PDF has no pages: %s", path)
	}
	return &PDFSource{doc: doc, dpi: dpi}, nil
}

// Render renders the first page to an RGBA raster.
func (s *PDFSource) Render() (image.Image, error) {
	img, err := s.doc.ImageDPI(0, float64(s.dpi))
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF page: %w", err)
	}
	return img, nil
}

// Vector always reports true for PDF sources.
func (s *PDFSource) Vector() bool { return true }

// Close releases the underlying document.
func (s *PDFSource) Close() error {
	if s.doc != nil {
		err := s.doc.Close()
		s.doc = nil
		return err
	}
	return nil
}
