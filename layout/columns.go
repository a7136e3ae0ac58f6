package layout

import (
	"math"

	"github.com/tsawler/docstruct/model"
	"github.com/tsawler/docstruct/text"
)

// maxColumns is the largest column count a page resolves to.
const maxColumns = 3

// ColumnLayout represents the detected column structure of a page
type ColumnLayout struct {
	// Type is the page's layout. Never LayoutMixed.
	Type model.LayoutType

	// Columns are the column ranges, left to right. Empty when the page has
	// no usable text.
	Columns []model.ColumnRange

	// Candidates is the number of column starts found by clustering, before
	// narrow spans were merged.
	Candidates int

	// Reduced is set when more than three spans met the minimum width and
	// the narrowest were merged away.
	Reduced bool
}

// ColumnCount returns the number of detected columns
func (l *ColumnLayout) ColumnCount() int {
	return len(l.Columns)
}

// IsMultiColumn returns true if more than one column was detected
func (l *ColumnLayout) IsMultiColumn() bool {
	return len(l.Columns) > 1
}

// span is a candidate column measured from one column start to the next.
type span struct {
	left, right float64
}

func (s span) width() float64 {
	return s.right - s.left
}

// ColumnDetector decides a page's column layout from fragment left edges
type ColumnDetector struct {
	gapThreshold   float64
	minColumnWidth float64
}

// NewColumnDetector creates a new column detector with default configuration
func NewColumnDetector() *ColumnDetector {
	return NewColumnDetectorWithConfig(DefaultConfig())
}

// NewColumnDetectorWithConfig creates a column detector with custom configuration.
// Only the column thresholds of cfg are used.
func NewColumnDetectorWithConfig(cfg Config) *ColumnDetector {
	cfg = cfg.Normalized()
	return &ColumnDetector{
		gapThreshold:   cfg.ColumnGapThreshold,
		minColumnWidth: cfg.MinColumnWidth,
	}
}

// Detect clusters the left edges of the valid fragments into column starts,
// merges spans narrower than the minimum column width and maps what remains
// to a layout type.
//
// A non-positive pageWidth is replaced by the rightmost fragment edge. The
// first column range starts at the page's left edge and the last ends at
// pageWidth; ranges between meet halfway across the column gap.
func (d *ColumnDetector) Detect(fragments []text.TextFragment, pageWidth float64) *ColumnLayout {
	lefts := make([]float64, 0, len(fragments))
	maxRight := 0.0
	for i := range fragments {
		if fragments[i].Validate() != nil {
			continue
		}
		lefts = append(lefts, fragments[i].Left())
		maxRight = math.Max(maxRight, fragments[i].BBox.Right())
	}
	if len(lefts) == 0 {
		return &ColumnLayout{Type: model.LayoutSingleColumn}
	}

	right := pageWidth
	if !isFinite(right) || right <= 0 {
		right = maxRight
	}

	candidates := ClusterPositions(lefts, d.gapThreshold)
	result := &ColumnLayout{Candidates: len(candidates)}

	// A start at or beyond the right edge cannot open a column; fragments
	// there are clamped into the last column during assignment.
	starts := make([]float64, 0, len(candidates))
	for _, c := range candidates {
		if c < right {
			starts = append(starts, c)
		}
	}
	if len(starts) == 0 {
		starts = append(starts, candidates[0])
		right = math.Max(maxRight, candidates[0])
	}

	spans := make([]span, len(starts))
	for i, s := range starts {
		spans[i].left = s
		if i+1 < len(starts) {
			spans[i].right = starts[i+1]
		} else {
			spans[i].right = right
		}
	}

	spans = mergeNarrowSpans(spans, d.minColumnWidth)
	for len(spans) > maxColumns {
		spans = mergeNarrowestSpan(spans)
		result.Reduced = true
	}

	result.Columns = d.ranges(spans, right)
	result.Type = model.LayoutTypeForColumns(len(result.Columns))
	return result
}

// mergeNarrowSpans folds every span narrower than minWidth into its left
// neighbour, or into its right neighbour when it is the first span, until
// all spans are wide enough or only one remains.
func mergeNarrowSpans(spans []span, minWidth float64) []span {
	for len(spans) > 1 {
		i := -1
		for j, s := range spans {
			if s.width() < minWidth {
				i = j
				break
			}
		}
		if i < 0 {
			break
		}
		spans = mergeSpan(spans, i)
	}
	return spans
}

// mergeNarrowestSpan folds the narrowest span into a neighbour. Ties go to
// the leftmost span.
func mergeNarrowestSpan(spans []span) []span {
	narrowest := 0
	for i := 1; i < len(spans); i++ {
		if spans[i].width() < spans[narrowest].width() {
			narrowest = i
		}
	}
	return mergeSpan(spans, narrowest)
}

// mergeSpan removes spans[i], extending its left neighbour over it, or its
// right neighbour when i is 0.
func mergeSpan(spans []span, i int) []span {
	if i == 0 {
		spans[1].left = spans[0].left
		return spans[1:]
	}
	spans[i-1].right = spans[i].right
	return append(spans[:i], spans[i+1:]...)
}

// ranges converts surviving spans into column ranges covering the page from
// its left edge to right.
func (d *ColumnDetector) ranges(spans []span, right float64) []model.ColumnRange {
	cols := make([]model.ColumnRange, len(spans))
	for i, s := range spans {
		if i == 0 {
			cols[i].Left = math.Min(0, s.left)
		} else {
			boundary := s.left - d.gapThreshold/2
			if boundary < spans[i-1].left {
				boundary = spans[i-1].left
			}
			cols[i].Left = boundary
			cols[i-1].Right = boundary
		}
	}
	cols[len(cols)-1].Right = math.Max(right, spans[len(spans)-1].right)
	return cols
}
