package layout

import (
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/tsawler/docstruct/model"
	"github.com/tsawler/docstruct/text"
)

// reportNamespace scopes report IDs so equal inputs map to equal IDs.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/tsawler/docstruct/report"))

// PageInput is one page handed to the analyzer by a fragment source.
type PageInput struct {
	// Number is the 1-indexed page number. It overrides the Page field of
	// the page's fragments.
	Number int `json:"page"`

	// Width and Height are the page size in points. Width bounds the last
	// column; zero means unknown.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Fragments are the page's text runs in extraction order
	Fragments []text.TextFragment `json:"fragments"`
}

// HeadingEntry is one heading in the flattened heading list
type HeadingEntry struct {
	Text         string             `json:"text"`
	Level        model.HeadingLevel `json:"level"`
	Page         int                `json:"page"`
	ReadingOrder int                `json:"reading_order"`
}

// Diagnostic records a recoverable problem found during analysis
type Diagnostic struct {
	// Page is the page number the problem belongs to
	Page int `json:"page"`

	// Index is the fragment's position in the page input, or -1 for
	// page-level problems.
	Index int `json:"index"`

	// Reason describes the problem
	Reason string `json:"reason"`
}

// PageReport holds the analysis of one page
type PageReport struct {
	Page        int                 `json:"page"`
	LayoutType  model.LayoutType    `json:"layout_type"`
	ColumnCount int                 `json:"column_count"`
	Columns     []model.ColumnRange `json:"columns"`

	// Fragments are in reading order with Column, HeadingLevel and
	// ReadingOrder set.
	Fragments []text.TextFragment `json:"fragments"`

	// Headings are this page's headings in reading order
	Headings []HeadingEntry `json:"headings"`
}

// Report is the result of analyzing a whole document.
type Report struct {
	// ID is derived from the input and configuration; identical analyses
	// share an ID.
	ID string `json:"id"`

	// LayoutType is the common layout of every page, or LayoutMixed
	LayoutType model.LayoutType `json:"layout_type"`

	Pages     []PageReport         `json:"pages"`
	Headings  []HeadingEntry       `json:"headings"`
	Structure []*model.OutlineNode `json:"structure"`

	TotalPages    int `json:"total_pages"`
	TotalHeadings int `json:"total_headings"`

	// BodyFontSize is the baseline used for heading classification, and
	// BaselineMeasured is false when DefaultBodyFontSize was assumed.
	BodyFontSize     float64 `json:"body_font_size"`
	BaselineMeasured bool    `json:"baseline_measured"`

	// Config is the normalized configuration the report was produced with
	Config Config `json:"config"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Fragments returns every fragment of the report in reading order
func (r *Report) Fragments() []text.TextFragment {
	var out []text.TextFragment
	for _, p := range r.Pages {
		out = append(out, p.Fragments...)
	}
	return out
}

// Analyzer runs layout analysis over whole documents. It holds no
// per-analysis state, so one Analyzer may serve concurrent calls.
type Analyzer struct {
	log     *slog.Logger
	workers int
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger diagnostics are written to
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithWorkers bounds the number of pages laid out concurrently. Values
// below 1 mean one worker.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n < 1 {
			n = 1
		}
		a.workers = n
	}
}

// NewAnalyzer creates an analyzer that logs to slog.Default and lays out up
// to GOMAXPROCS pages at once.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		log:     slog.Default(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs Analyze on a default Analyzer.
func Analyze(pages []PageInput, cfg Config) *Report {
	return NewAnalyzer().Analyze(pages, cfg)
}

// pageLayout is the per-page result of the concurrent phase.
type pageLayout struct {
	idx     int
	columns *ColumnLayout
	ordered []text.TextFragment
}

// Analyze detects columns, reading order, headings and the outline of a
// document. It never fails: malformed fragments are excluded from
// clustering and classification, recorded as diagnostics and placed after
// the rest of their page. The caller's pages and fragments are not
// modified.
//
// Pages are processed in ascending page number. Column work runs
// concurrently per page; numbering, classification and the outline run
// once over the whole document.
func (a *Analyzer) Analyze(pages []PageInput, cfg Config) *Report {
	cfg = cfg.Normalized()
	log := a.log
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "layout")

	var diags []Diagnostic
	addDiag := func(page, index int, reason string) {
		diags = append(diags, Diagnostic{Page: page, Index: index, Reason: reason})
	}

	inputs := a.preparePages(pages, log, addDiag)

	var all []text.TextFragment
	for _, p := range inputs {
		all = append(all, p.Fragments...)
	}
	baseline, measured := BodyBaseline(all)
	if !measured {
		log.Debug("too little text for a body baseline, using default", "font_size", baseline)
	}

	layouts := a.layoutPages(inputs, cfg)

	classifier := NewHeadingClassifierWithConfig(cfg)
	seq := NewReadingOrderSequencer()

	report := &Report{
		LayoutType:       model.LayoutSingleColumn,
		Pages:            make([]PageReport, 0, len(inputs)),
		Headings:         []HeadingEntry{},
		BodyFontSize:     baseline,
		BaselineMeasured: measured,
		Config:           cfg,
	}

	var headings []text.TextFragment
	for i, p := range inputs {
		pl := layouts[i]
		if pl.columns.Reduced {
			log.Debug("merged narrow columns", "page", p.Number, "candidates", pl.columns.Candidates, "columns", pl.columns.ColumnCount())
		}

		seq.Number(pl.ordered)
		classifier.Classify(pl.ordered, baseline)

		pr := PageReport{
			Page:        p.Number,
			LayoutType:  pl.columns.Type,
			ColumnCount: pl.columns.ColumnCount(),
			Columns:     pl.columns.Columns,
			Fragments:   pl.ordered,
			Headings:    []HeadingEntry{},
		}
		if pr.Columns == nil {
			pr.Columns = []model.ColumnRange{}
		}
		for _, f := range pl.ordered {
			if !f.IsHeading {
				continue
			}
			entry := HeadingEntry{
				Text:         text.CleanText(f.Text),
				Level:        f.HeadingLevel,
				Page:         f.Page,
				ReadingOrder: f.ReadingOrder,
			}
			pr.Headings = append(pr.Headings, entry)
			report.Headings = append(report.Headings, entry)
			headings = append(headings, f)
		}
		report.Pages = append(report.Pages, pr)
	}

	report.Structure = BuildOutline(headings)
	report.LayoutType = documentLayout(report.Pages)
	report.TotalPages = len(report.Pages)
	report.TotalHeadings = len(report.Headings)
	report.Diagnostics = diags
	report.ID = reportID(inputs, cfg).String()

	log.Debug("analysis complete",
		"pages", report.TotalPages,
		"fragments", seq.Count(),
		"headings", report.TotalHeadings,
		"outline_nodes", model.CountOutline(report.Structure),
		"layout", report.LayoutType,
		"diagnostics", len(diags))

	return report
}

// preparePages copies the input, fixes page numbers, derives font weights,
// clears analysis fields and records malformed fragments. The result is
// sorted by page number; pages sharing a number keep their input order.
func (a *Analyzer) preparePages(pages []PageInput, log *slog.Logger, addDiag func(page, index int, reason string)) []PageInput {
	inputs := make([]PageInput, len(pages))
	for i, p := range pages {
		if p.Number < 1 {
			reason := fmt.Errorf("page %d at position %d: %w", p.Number, i, text.ErrInvalidPage).Error()
			p.Number = i + 1
			addDiag(p.Number, -1, reason)
			log.Warn("invalid page number, using position", "page", p.Number, "position", i)
		}
		frags := make([]text.TextFragment, len(p.Fragments))
		copy(frags, p.Fragments)
		for j := range frags {
			f := &frags[j]
			if f.Page != 0 && f.Page != p.Number {
				log.Warn("fragment page does not match its page", "page", p.Number, "index", j, "fragment_page", f.Page)
			}
			f.Page = p.Number
			f.FontWeight = text.DetectWeight(f.FontName)
			f.ResetAnalysis()
			if err := f.Validate(); err != nil {
				addDiag(p.Number, j, err.Error())
				log.Warn("excluding malformed fragment", "page", p.Number, "index", j, "error", err)
			}
		}
		p.Fragments = frags
		inputs[i] = p
	}

	sort.SliceStable(inputs, func(i, j int) bool {
		return inputs[i].Number < inputs[j].Number
	})
	return inputs
}

// layoutPages runs column detection, assignment and page ordering for every
// page with bounded concurrency. Results are indexed like inputs.
func (a *Analyzer) layoutPages(inputs []PageInput, cfg Config) []pageLayout {
	detector := NewColumnDetectorWithConfig(cfg)
	out := make([]pageLayout, len(inputs))
	results := make(chan pageLayout, len(inputs))
	sem := make(chan struct{}, max(a.workers, 1))

	for i, p := range inputs {
		sem <- struct{}{}
		go func(i int, p PageInput) {
			defer func() { <-sem }()
			cols := detector.Detect(p.Fragments, p.Width)
			AssignColumns(p.Fragments, cols)
			results <- pageLayout{idx: i, columns: cols, ordered: OrderPage(p.Fragments)}
		}(i, p)
	}

	for range inputs {
		r := <-results
		out[r.idx] = r
	}
	return out
}

// documentLayout returns the layout shared by every page, or LayoutMixed.
// A document without pages is single column.
func documentLayout(pages []PageReport) model.LayoutType {
	if len(pages) == 0 {
		return model.LayoutSingleColumn
	}
	first := pages[0].LayoutType
	for _, p := range pages[1:] {
		if p.LayoutType != first {
			return model.LayoutMixed
		}
	}
	return first
}

// reportID hashes the prepared input and configuration into a name-based
// UUID.
func reportID(inputs []PageInput, cfg Config) uuid.UUID {
	buf := make([]byte, 0, 1024)
	appendFloat := func(v float64) {
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		buf = append(buf, ',')
	}
	appendFloat(cfg.ColumnGapThreshold)
	appendFloat(cfg.MinColumnWidth)
	appendFloat(cfg.HeadingSizeRatio)
	appendFloat(cfg.MinHeadingSize)
	for _, p := range inputs {
		buf = append(buf, 'P')
		buf = strconv.AppendInt(buf, int64(p.Number), 10)
		buf = append(buf, ',')
		appendFloat(p.Width)
		appendFloat(p.Height)
		for _, f := range p.Fragments {
			buf = strconv.AppendQuote(buf, f.Text)
			buf = strconv.AppendQuote(buf, f.FontName)
			appendFloat(f.FontSize)
			appendFloat(f.BBox.X0)
			appendFloat(f.BBox.Y0)
			appendFloat(f.BBox.X1)
			appendFloat(f.BBox.Y1)
			buf = strconv.AppendInt(buf, int64(f.FontWeight), 10)
			buf = append(buf, ';')
		}
	}
	return uuid.NewSHA1(reportNamespace, buf)
}
