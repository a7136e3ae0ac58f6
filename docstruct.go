// Package docstruct provides a fluent API for analyzing the layout and
// heading structure of documents.
//
// Basic usage:
//
//	report, err := docstruct.Open("paper.pdf").Report()
//	if err != nil {
//	    // handle error
//	}
//	for _, h := range report.Headings {
//	    fmt.Println(h.Level, h.Text)
//	}
//
// With options:
//
//	report, err := docstruct.Open("paper.pdf").
//	    Pages(1, 2, 3).
//	    ColumnGap(20).
//	    HeadingRatio(1.3).
//	    Report()
//
// Fragments from another source can be analyzed with [FromPages]. The
// layout, reader and export packages are available for lower-level use.
package docstruct

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/tsawler/docstruct/export"
	"github.com/tsawler/docstruct/layout"
	"github.com/tsawler/docstruct/model"
	"github.com/tsawler/docstruct/reader"
)

// Analysis is a fluent, immutable description of one layout analysis.
// Each configuration method returns a new Analysis, so a base Analysis can
// be shared and specialized safely.
type Analysis struct {
	// Source: a PDF file name, or pages supplied by the caller
	filename  string
	input     []layout.PageInput
	fromPages bool

	options Options
}

// Open returns an Analysis of a PDF file. The file is read when a terminal
// method such as Report is called.
//
// Example:
//
//	report, err := docstruct.Open("document.pdf").Report()
func Open(filename string) *Analysis {
	return &Analysis{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromPages returns an Analysis of pages produced by another fragment
// source. The pages are not modified.
func FromPages(pages []layout.PageInput) *Analysis {
	return &Analysis{
		input:     pages,
		fromPages: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	report := docstruct.Must(docstruct.Open("document.pdf").Report())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// clone creates a copy of the Analysis with a deep copy of options.
func (a *Analysis) clone() *Analysis {
	return &Analysis{
		filename:  a.filename,
		input:     a.input,
		fromPages: a.fromPages,
		options:   a.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Analysis instance)
// ============================================================================

// Pages restricts the analysis to the given 1-indexed pages. Multiple calls
// are cumulative.
//
// Example:
//
//	report, err := docstruct.Open("doc.pdf").Pages(1, 3, 5).Report()
func (a *Analysis) Pages(pages ...int) *Analysis {
	newA := a.clone()
	newA.options.pages = append(newA.options.pages, pages...)
	return newA
}

// PageRange restricts the analysis to pages start through end, inclusive.
func (a *Analysis) PageRange(start, end int) *Analysis {
	var pages []int
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return a.Pages(pages...)
}

// ColumnGap sets the minimum horizontal gap, in points, between column
// start positions.
func (a *Analysis) ColumnGap(points float64) *Analysis {
	newA := a.clone()
	newA.options.config.ColumnGapThreshold = points
	return newA
}

// MinColumnWidth sets the narrowest span, in points, kept as its own column.
func (a *Analysis) MinColumnWidth(points float64) *Analysis {
	newA := a.clone()
	newA.options.config.MinColumnWidth = points
	return newA
}

// HeadingRatio sets the size ratio over the body baseline at which text
// becomes a heading.
func (a *Analysis) HeadingRatio(ratio float64) *Analysis {
	newA := a.clone()
	newA.options.config.HeadingSizeRatio = ratio
	return newA
}

// MinHeadingSize sets the smallest font size, in points, that can be a
// size-based heading.
func (a *Analysis) MinHeadingSize(points float64) *Analysis {
	newA := a.clone()
	newA.options.config.MinHeadingSize = points
	return newA
}

// Config replaces all four thresholds at once.
func (a *Analysis) Config(cfg layout.Config) *Analysis {
	newA := a.clone()
	newA.options.config = cfg
	return newA
}

// Workers bounds the number of pages laid out concurrently.
func (a *Analysis) Workers(n int) *Analysis {
	newA := a.clone()
	newA.options.workers = n
	return newA
}

// Logger sets the logger reader warnings and analysis diagnostics are
// written to.
func (a *Analysis) Logger(l *slog.Logger) *Analysis {
	newA := a.clone()
	newA.options.logger = l
	return newA
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Report runs the analysis. Errors come only from opening the source or
// from an invalid page selection; pages that cannot be read are analyzed
// as empty and listed in the report's diagnostics.
func (a *Analysis) Report() (*layout.Report, error) {
	pages, warnings, err := a.collectPages()
	if err != nil {
		return nil, err
	}

	report := layout.NewAnalyzer(a.options.analyzerOptions()...).Analyze(pages, a.options.config)

	if len(warnings) > 0 {
		diags := make([]layout.Diagnostic, 0, len(warnings)+len(report.Diagnostics))
		for _, w := range warnings {
			diags = append(diags, layout.Diagnostic{Page: w.Page, Index: -1, Reason: w.Err.Error()})
		}
		report.Diagnostics = append(diags, report.Diagnostics...)
	}
	return report, nil
}

// Outline runs the analysis and returns only the heading hierarchy.
func (a *Analysis) Outline() ([]*model.OutlineNode, error) {
	report, err := a.Report()
	if err != nil {
		return nil, err
	}
	return report.Structure, nil
}

// ToMarkdown runs the analysis and renders the content as Markdown in
// reading order.
func (a *Analysis) ToMarkdown() (string, error) {
	return a.ToMarkdownWithOptions(export.MarkdownOptions{})
}

// ToMarkdownWithOptions is ToMarkdown with rendering options.
func (a *Analysis) ToMarkdownWithOptions(opts export.MarkdownOptions) (string, error) {
	report, err := a.Report()
	if err != nil {
		return "", err
	}
	return export.Markdown(report, opts), nil
}

func (a *Analysis) logger() *slog.Logger {
	if a.options.logger != nil {
		return a.options.logger
	}
	return slog.Default()
}

// collectPages returns the selected pages of the source, along with the
// pages the reader could not decode.
func (a *Analysis) collectPages() ([]layout.PageInput, []reader.Warning, error) {
	if a.fromPages {
		pages, err := selectPages(a.input, a.options.pages)
		return pages, nil, err
	}

	if a.filename == "" {
		return nil, nil, fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(a.filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer r.Close()
	r.WithLogger(a.logger())

	if len(a.options.pages) == 0 {
		pages, warnings := r.Pages()
		return pages, warnings, nil
	}

	nums, err := resolvePages(a.options.pages, r.NumPages())
	if err != nil {
		return nil, nil, err
	}

	pages := make([]layout.PageInput, 0, len(nums))
	var warnings []reader.Warning
	for _, n := range nums {
		p, err := r.Page(n)
		if err != nil {
			a.logger().Warn("could not read page", "page", n, "error", err)
			warnings = append(warnings, reader.Warning{Page: n, Err: err})
		}
		pages = append(pages, p)
	}
	return pages, warnings, nil
}

// resolvePages validates a 1-indexed page selection against the page
// count and returns it sorted and deduplicated.
func resolvePages(selection []int, pageCount int) ([]int, error) {
	seen := make(map[int]bool)
	var pages []int
	for _, p := range selection {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}
	sort.Ints(pages)
	return pages, nil
}

// selectPages keeps the caller-supplied pages whose numbers are selected.
func selectPages(input []layout.PageInput, selection []int) ([]layout.PageInput, error) {
	if len(selection) == 0 {
		return input, nil
	}

	byNumber := make(map[int]bool, len(input))
	for _, p := range input {
		byNumber[p.Number] = true
	}
	want := make(map[int]bool, len(selection))
	for _, n := range selection {
		if !byNumber[n] {
			return nil, fmt.Errorf("page %d not in input", n)
		}
		want[n] = true
	}

	var out []layout.PageInput
	for _, p := range input {
		if want[p.Number] {
			out = append(out, p)
		}
	}
	return out, nil
}
