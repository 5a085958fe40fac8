// Package compose renders the two output images of an analysis: the
// blank template and the annotated reference.
//
// The template is the source image with every placeholder painted over
// in its estimated background color. The repaint covers the exact
// contour footprint dilated by a small square kernel, so anti-aliased
// fringe pixels around the placeholder edges disappear with it.
//
// The reference starts from the template and adds, per region, a thin
// placeholder-colored outline of the bounding box and a centered label
// carrying the region id and recognized text. Label size adapts to the
// region: a binary search finds the largest font whose rendered text
// fits within 85% of both region dimensions. Labels are drawn black
// over a white outline so they stay legible on any background.
package compose
