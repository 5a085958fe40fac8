// Package merge carries hand-curated roles forward across re-imports.
//
// A template is often re-imported after cosmetic edits to the mockup.
// Region roles may have been corrected by hand in the existing
// regions.yaml, and re-running the geometric classifier would throw
// that work away. When the new detection produces the same regions in
// the same places, merge copies the curated roles onto them; any
// change in region count or position abandons the prior file wholesale
// rather than guessing at a partial correspondence.
//
// Only roles are preserved. Names carry freshly recognized text and
// are always taken from the new analysis.
package merge
