// Package segment finds placeholder regions in a flyer mockup by
// color.
//
// A binary mask marks every pixel whose color lies within a
// per-channel tolerance of the placeholder color. The tolerance test
// is an axis-aligned box in color space, applied independently per
// channel; it is not a Euclidean distance, and the distinction matters
// for which near-colors qualify. The mask is handed to a
// [ContourFinder] that reports the connected foreground components;
// the resulting boxes are sorted into reading order (ascending y, then
// x) and assigned region ids 1..N in that order.
//
// The ContourFinder is an injected capability so segmentation logic
// (masking, ordering, id assignment) stays testable with synthetic
// component lists. The default [FloodFinder] is a pure-Go 8-connected
// flood-fill component scan.
package segment
