// Package source loads flyer mockup sources into rasters for analysis.
//
// Two kinds of source are supported: raster images (PNG, JPEG, GIF,
// BMP, TIFF, WebP) decoded directly, and vector PDF documents whose
// first page is rendered at a fixed DPI via MuPDF (go-fitz). Vector
// sources additionally participate in font attribution downstream.
//
// [Detect] chooses the kind from the file extension; [Open] returns the
// matching [Source] implementation.
package source
