// Package export renders layout reports for people and downstream tools.
//
// [Markdown] writes page content in reading order with headings as #, ##
// and ### lines. [HTML] converts that Markdown with goldmark, giving each
// heading an anchor id. [OutlineMarkdown] and [OutlineHTML] render only the
// heading hierarchy, and [JSON] writes the full report.
//
//	report := layout.Analyze(pages, layout.DefaultConfig())
//	fmt.Print(export.OutlineMarkdown(report.Structure))
//
// Anchors are derived with [AnchorID]; repeated titles get numeric
// suffixes in document order.
package export
