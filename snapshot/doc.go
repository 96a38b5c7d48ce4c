// Package snapshot provides the read-only rendered tree the layout engine
// extracts from.
//
// A snapshot is a frozen copy of a rendered document: every element node
// carries its bounding box in document coordinates and its resolved
// (computed) style, keyed by CSS property name. Nothing in this package
// performs layout; geometry and style are whatever the renderer reported.
//
// # Sources
//
// Snapshots are obtained through the [Source] interface. Two encodings are
// supported:
//
//   - JSON or YAML snapshot files, as written by a browser-side capture
//     script (see [Decode])
//   - HTML fixtures whose elements carry data-rect geometry annotations and
//     inline styles (see [ParseHTML])
//
// Example:
//
//	src := snapshot.FileSource{Path: "deck.json"}
//	doc, err := src.Snapshot(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	roots, fallback := doc.SlideRoots("slide")
//
// # Style Keys
//
// Node.Style is keyed by kebab-case property names ("background-color",
// "border-top-width"). Custom properties keep their "--" prefix.
package snapshot
