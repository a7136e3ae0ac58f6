// Package layout reconstructs the structure of a document from positioned
// text fragments: the column layout of each page, the reading order across
// columns and pages, a heading hierarchy and a nested outline.
//
// All coordinates use the top-left page origin with Y increasing downward,
// in points. See [model.BBox].
//
// # Layout Analysis
//
// The [Analyzer] runs every stage over a whole document:
//
//	report := layout.NewAnalyzer().Analyze(pages, layout.DefaultConfig())
//
// or with a logger and bounded page concurrency:
//
//	analyzer := layout.NewAnalyzer(
//	    layout.WithLogger(logger),
//	    layout.WithWorkers(4),
//	)
//	report := analyzer.Analyze(pages, cfg)
//
// Analysis never fails. Fragments with a missing bounding box or a
// non-positive font size are left out of clustering and classification,
// ordered after the rest of their page and listed in [Report.Diagnostics].
//
// # Stages
//
// The stages are exported for callers that need only part of the pipeline:
//
//   - [ClusterPositions] - groups nearby X positions into column starts
//   - [ColumnDetector] - turns column starts into a page's column ranges
//   - [AssignColumns] - places each fragment in a column, or marks it spanning
//   - [OrderPage] and [ReadingOrderSequencer] - document-wide reading order
//   - [BodyBaseline] and [HeadingClassifier] - heading levels from font metrics
//   - [BuildOutline] - folds headings into an outline tree
//
// # Reading Order
//
// Within a page, fragments wider than the column they start in come first,
// then each column left to right, each read top to bottom. Reading order
// values run from 0 to N-1 across the whole document.
//
// # Configuration
//
// Thresholds travel with each call in a [Config] value:
//
//	cfg := layout.DefaultConfig()
//	cfg.ColumnGapThreshold = 24
//	cfg.HeadingSizeRatio = 1.15
//	report := layout.Analyze(pages, cfg)
//
// Zero or invalid thresholds fall back to their defaults.
package layout
