// Package model provides the intermediate representation for analyzed
// flyer templates.
//
// This package defines the user-facing data structures produced by the
// analysis pipeline. The central entity is the [Region]: one detected
// placeholder area with its geometry, inferred background color, and
// classified role. Regions are aggregated into a [TemplateMetadata]
// document, which is what gets persisted as regions.yaml and handed off
// to content-compositing consumers.
//
// # Geometry
//
// All region geometry is expressed in source-image pixel space with a
// top-left origin:
//
//   - [Box] - integer bounding box with aspect, area, and ordering helpers
//   - [Rect] - float64 rectangle in PDF point space, used only by font
//     attribution
//
// # Colors
//
// Colors cross the API as lowercase hex strings ("#6fe600"). [ParseHex]
// validates and decodes them; [RGB] is the decoded triple.
package model
