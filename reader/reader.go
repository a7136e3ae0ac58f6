package reader

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/docstruct/layout"
	"github.com/tsawler/docstruct/model"
	"github.com/tsawler/docstruct/text"
)

// ErrPageMissing is returned for a page number the document does not have.
var ErrPageMissing = errors.New("page not found")

// Glyph run thresholds, as multiples of the font size.
const (
	// wordGapRatio is the horizontal gap beyond which a space is inserted
	// between glyphs of the same run.
	wordGapRatio = 0.3

	// runBreakRatio is the horizontal gap beyond which a new run starts,
	// such as the gutter between two columns.
	runBreakRatio = 1.5

	// baselineRatio is the vertical shift beyond which a new run starts.
	baselineRatio = 0.2

	// maxInheritDepth bounds the walk up the page tree for inherited
	// attributes.
	maxInheritDepth = 32
)

// defaultMediaBox is US Letter, used when a page tree carries no MediaBox.
var defaultMediaBox = pageBox{x0: 0, y0: 0, x1: 612, y1: 792}

// Warning records a page that could not be read. The page is still returned,
// without fragments.
type Warning struct {
	Page int
	Err  error
}

// Error implements error
func (w Warning) Error() string {
	return fmt.Sprintf("page %d: %v", w.Page, w.Err)
}

// Unwrap returns the underlying error
func (w Warning) Unwrap() error {
	return w.Err
}

// Reader turns the text of a PDF file into layout input.
type Reader struct {
	file *os.File
	pdf  *pdf.Reader
	log  *slog.Logger
}

// Open opens a PDF file and returns a Reader
func Open(filename string) (*Reader, error) {
	f, r, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	return &Reader{file: f, pdf: r, log: slog.Default()}, nil
}

// WithLogger sets the logger page warnings are written to and returns r.
func (r *Reader) WithLogger(l *slog.Logger) *Reader {
	if l != nil {
		r.log = l
	}
	return r
}

// Close closes the PDF file
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// NumPages returns the number of pages in the document
func (r *Reader) NumPages() int {
	return r.pdf.NumPage()
}

// Pages reads every page. Pages that fail are returned without fragments
// and reported as warnings.
func (r *Reader) Pages() ([]layout.PageInput, []Warning) {
	n := r.NumPages()
	out := make([]layout.PageInput, 0, n)
	var warnings []Warning
	for i := 1; i <= n; i++ {
		p, err := r.Page(i)
		if err != nil {
			r.log.Warn("could not read page", "page", i, "error", err)
			warnings = append(warnings, Warning{Page: i, Err: err})
		}
		out = append(out, p)
	}
	return out, warnings
}

// Page reads one 1-indexed page. On error the returned page carries its
// number and whatever size could be determined.
func (r *Reader) Page(n int) (p layout.PageInput, err error) {
	p.Number = n
	if n < 1 || n > r.NumPages() {
		return p, fmt.Errorf("page %d: %w", n, ErrPageMissing)
	}

	// The pdf package panics on malformed objects and content streams.
	defer func() {
		if rec := recover(); rec != nil {
			p.Fragments = nil
			err = fmt.Errorf("page %d: malformed content: %v", n, rec)
		}
	}()

	page := r.pdf.Page(n)
	if page.V.IsNull() {
		return p, fmt.Errorf("page %d: %w", n, ErrPageMissing)
	}

	box := mediaBox(page.V)
	p.Width = box.width()
	p.Height = box.height()
	p.Fragments = assemble(page.Content().Text, n, box)
	return p, nil
}

// pageBox is a rectangle in PDF user space, origin bottom-left.
type pageBox struct {
	x0, y0, x1, y1 float64
}

func (b pageBox) width() float64 {
	return b.x1 - b.x0
}

func (b pageBox) height() float64 {
	return b.y1 - b.y0
}

// mediaBox returns the page's MediaBox, inherited from the page tree when
// the page itself has none.
func mediaBox(v pdf.Value) pageBox {
	for depth := 0; depth < maxInheritDepth && !v.IsNull(); depth++ {
		if box, ok := parseBox(v.Key("MediaBox")); ok {
			return box
		}
		v = v.Key("Parent")
	}
	return defaultMediaBox
}

func parseBox(v pdf.Value) (pageBox, bool) {
	if v.Kind() != pdf.Array || v.Len() != 4 {
		return pageBox{}, false
	}
	var c [4]float64
	for i := range c {
		e := v.Index(i)
		switch e.Kind() {
		case pdf.Integer:
			c[i] = float64(e.Int64())
		case pdf.Real:
			c[i] = e.Float64()
		default:
			return pageBox{}, false
		}
	}
	box := pageBox{
		x0: math.Min(c[0], c[2]),
		y0: math.Min(c[1], c[3]),
		x1: math.Max(c[0], c[2]),
		y1: math.Max(c[1], c[3]),
	}
	if box.width() <= 0 || box.height() <= 0 {
		return pageBox{}, false
	}
	return box, true
}

// run is a sequence of glyphs sharing font, size and baseline. bbox is the
// union of its glyph boxes in top-left page space.
type run struct {
	font     string
	size     float64
	baseline float64
	bbox     model.BBox
	sb       strings.Builder
}

// glyphBox returns the box of g in top-left page space. The glyph spans one
// font size above its baseline.
func glyphBox(g pdf.Text, box pageBox) model.BBox {
	return model.NewBBox(g.X-box.x0, box.y1-(g.Y+g.FontSize), g.X+g.W-box.x0, box.y1-g.Y)
}

// assemble merges positioned glyphs into text fragments in the top-left
// page convention. Glyphs are taken in content stream order.
func assemble(glyphs []pdf.Text, page int, box pageBox) []text.TextFragment {
	var out []text.TextFragment
	var cur *run

	flush := func() {
		if cur == nil {
			return
		}
		if s := text.CleanText(cur.sb.String()); s != "" {
			out = append(out, text.NewFragment(s, page, cur.bbox, cur.size, cur.font))
		}
		cur = nil
	}

	for _, g := range glyphs {
		if g.S == "" || g.FontSize <= 0 {
			continue
		}
		gb := glyphBox(g, box)
		if cur != nil && !continues(cur, g, gb) {
			flush()
		}
		if cur == nil {
			if strings.TrimSpace(g.S) == "" {
				continue
			}
			cur = &run{font: g.Font, size: g.FontSize, baseline: g.Y, bbox: gb}
			cur.sb.WriteString(g.S)
			continue
		}
		gap := gb.Left() - cur.bbox.Right()
		if gap > wordGapRatio*cur.size && !strings.HasSuffix(cur.sb.String(), " ") && !strings.HasPrefix(g.S, " ") {
			cur.sb.WriteByte(' ')
		}
		cur.sb.WriteString(g.S)
		cur.bbox = cur.bbox.Union(gb)
	}
	flush()
	return out
}

// continues reports whether glyph g, with page box gb, extends run r.
func continues(r *run, g pdf.Text, gb model.BBox) bool {
	if g.Font != r.font || math.Abs(g.FontSize-r.size) > 0.01 {
		return false
	}
	if math.Abs(g.Y-r.baseline) > baselineRatio*r.size {
		return false
	}
	gap := gb.Left() - r.bbox.Right()
	return gap <= runBreakRatio*r.size && gap >= -r.size
}
