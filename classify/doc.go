// Package classify assigns semantic roles to detected regions from
// their geometry alone.
//
// Flyer layouts produced from the standard mockup template place a
// square QR code near the bottom, a wide URL strip, a trio of
// similarly sized time/date/place lines, and one or two large content
// blocks. The classifier encodes those conventions as aspect-ratio and
// size heuristics, applied in a fixed order so a region claimed by an
// earlier rule is never reconsidered:
//
//  1. qr_code: the last square-ish region (aspect within [0.85, 1.15]),
//     unless it is also the first region in reading order.
//  2. url: the last remaining region with aspect >= 2.0.
//  3. time, date, place: three or more remaining regions with aspect
//     >= 1.6 whose rounded dimensions agree; the three earliest in
//     reading order take the roles, or none do.
//  4. content, content2: the largest and second largest remaining
//     regions by area.
//
// Regions left over keep an empty role. Classification is a pure
// function of the region list and never inspects pixels.
package classify
