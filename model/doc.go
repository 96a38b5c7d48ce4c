// Package model provides the serialisable layout model produced by slide
// extraction.
//
// This package defines the user-facing data structures that a downstream
// renderer consumes. Every extraction run ultimately produces these types,
// and their JSON field names are a compatibility surface: they must stay
// stable across releases.
//
// # Deck Structure
//
// A [Deck] is an ordered sequence of [Slide] values with no shared state:
//
//	deck := model.Deck{}
//	deck = append(deck, slide)
//
// Each [Slide] records its resolved render box, its own document offset and
// style, and a flat, z-ordered list of [Element] values.
//
// # Elements
//
// An [Element] carries slide-relative geometry, a [StyleRecord] snapshot and
// at most one content mode:
//
//   - Text - plain text
//   - [InlineGroup] - mixed inline formatting as an ordered run list
//   - [ListInfo] - ordered or unordered list, with nesting
//   - [TableInfo] - rows and cells with row/column spans
//
// [MediaInfo] is independent of the content mode and is attached to images
// and other embedded media.
//
// # Vocabulary
//
// Recognised markup tags map onto the closed [Kind] enumeration. Tags outside
// the vocabulary are never emitted:
//
//	kind, ok := model.LookupKind("strong") // KindInlineFormat, true
//
// # Geometry
//
//   - [BBox] - top-left anchored box with containment and union helpers
//   - [Matrix] - 2D affine transformation matrix as reported by CSS
package model
