package layout

import (
	"math"

	"github.com/tsawler/docstruct/model"
	"github.com/tsawler/docstruct/text"
)

// ColumnFor returns the index of the column range containing x. An x outside
// every range is clamped to the nearest one, ties going to the left. It
// returns text.ColumnUnassigned when there are no columns.
func (l *ColumnLayout) ColumnFor(x float64) int {
	if len(l.Columns) == 0 {
		return text.ColumnUnassigned
	}
	best, bestDist := 0, math.Inf(1)
	for i, c := range l.Columns {
		if c.Contains(x) {
			return i
		}
		if d := c.Distance(x); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// AssignColumns sets Column on every fragment of one page.
//
// A valid fragment goes to the column containing its left edge. On a
// multi-column page a fragment wider than that column is marked
// text.ColumnSpanning instead. Fragments that fail validation are set to
// text.ColumnUnassigned. When the layout has no columns, every fragment is
// unassigned.
func AssignColumns(fragments []text.TextFragment, layout *ColumnLayout) {
	for i := range fragments {
		f := &fragments[i]
		if f.Validate() != nil || layout == nil || len(layout.Columns) == 0 {
			f.Column = text.ColumnUnassigned
			continue
		}
		col := layout.ColumnFor(f.Left())
		if layout.IsMultiColumn() && isSpanning(f, layout.Columns[col]) {
			f.Column = text.ColumnSpanning
			continue
		}
		f.Column = col
	}
}

// isSpanning reports whether a fragment is wider than the column it starts in.
func isSpanning(f *text.TextFragment, col model.ColumnRange) bool {
	return f.Width() > col.Width()
}
