// Package pdffont recovers the font name and size used inside each
// region of a vector (PDF) source.
//
// Text spans from the first page are matched to regions in three
// passes. Spans that intersect a region's rectangle vote directly,
// weighted by character count, and the dominant (font, size) pair
// wins. Regions with no intersecting span fall back to a proximity
// vote over nearby spans, weighted by character count and inverse
// distance. Regions still unresolved inherit the page-dominant font
// with its character-weighted average size.
//
// PDFs without a text layer carry no spans at all; for those the
// caller estimates sizes from region heights and takes a font name
// from the file's embedded FontDescriptor objects.
//
// All span geometry is in point space with a top-left origin; sources
// are responsible for flipping out of PDF's native bottom-left
// coordinates.
package pdffont
