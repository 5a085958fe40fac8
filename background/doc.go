// Package background infers the fill color behind each placeholder
// region.
//
// Pixels are sampled from thin strips just outside the region's left
// and right edges, restricted to the middle 60% of the region's
// height. Sampling outside the region avoids the placeholder fill and
// its anti-aliased fringe; the offset dodges corner artifacts. When
// neither side strip fits inside the image, horizontal strips above
// and below the region are used instead. With no samples at all the
// estimate is exactly "#000000".
//
// Pooled samples are quantized per channel to suppress anti-aliasing
// and sensor noise, and the most frequent quantized color wins. Ties
// break deterministically toward the lowest packed RGB value.
package background
