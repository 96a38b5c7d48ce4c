// Package layout extracts positioned, styled slide elements from a
// rendered snapshot.
//
// The engine decides which nodes of each slide are meaningful elements,
// computes their slide-relative geometry, resolves their effective style,
// groups inline-formatted text into runs and flattens lists, tables and
// logo/footer clusters into structured records.
//
// # Extraction
//
// The [Engine] converts a whole document:
//
//	engine := layout.NewEngine()
//	result, err := engine.Extract(doc)
//	for _, slide := range result.Deck {
//		fmt.Println(slide.SlideID, len(slide.Elements))
//	}
//
// Non-fatal conditions (a document without slide containers, a table
// without rows, list nesting cut at the depth limit) are reported in
// [Result.Warnings].
//
// # Components
//
// Each stage is usable on its own:
//
//   - [RelevanceFilter] - selects the nodes worth emitting
//   - [GeometryResolver] - slide-relative boxes with range, flex and transform corrections
//   - [StyleResolver] - StyleRecord snapshots with inherited background colour
//   - [InlineGrouper] - ordered text/bold/italic/... runs of a block container
//   - [ListExtractor], [TableExtractor] - structured list and table records
//   - [ClusterExtractor] - image and label members of logo/footer clusters
//   - [SlideAssembler] - deduplication, row-banded ordering and z-order
//
// # Ordering
//
// Elements are first ordered by row bands: two boxes whose top edges
// differ by less than [Config.RowTolerance] share a row and are ordered by
// their left edge. The final list is then stable-sorted by z-index, so
// elements painted at the same level keep their reading order.
//
// # Configuration
//
//	config := layout.DefaultConfig()
//	config.Precision = 0        // whole pixels
//	config.SlideClass = "page"
//	engine := layout.NewEngineWithConfig(config)
package layout
