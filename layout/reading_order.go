package layout

import (
	"math"
	"sort"

	"github.com/tsawler/docstruct/text"
)

// unassignedRank places unassigned fragments after every column.
const unassignedRank = math.MaxInt

// sectionRank returns the position of a fragment's section on its page:
// spanning content first, then columns left to right, then fragments that
// could not be placed.
func sectionRank(f *text.TextFragment) int {
	switch {
	case f.Column == text.ColumnSpanning:
		return 0
	case f.Column >= 0:
		return f.Column + 1
	default:
		return unassignedRank
	}
}

// OrderPage returns a copy of one page's column-assigned fragments in
// reading order. Spanning fragments come first, then each column in
// ascending index, each section sorted top to bottom with ties broken left
// to right and then by input position. Unassigned fragments come last in
// input order. ReadingOrder is not touched.
func OrderPage(fragments []text.TextFragment) []text.TextFragment {
	idx := make([]int, len(fragments))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		fa, fb := &fragments[idx[a]], &fragments[idx[b]]
		ra, rb := sectionRank(fa), sectionRank(fb)
		if ra != rb {
			return ra < rb
		}
		if ra == unassignedRank {
			return false
		}
		if fa.Top() != fb.Top() {
			return fa.Top() < fb.Top()
		}
		return fa.Left() < fb.Left()
	})

	ordered := make([]text.TextFragment, len(idx))
	for i, j := range idx {
		ordered[i] = fragments[j]
	}
	return ordered
}

// ReadingOrderSequencer hands out the document-wide reading order. One
// sequencer serves one analysis; pages must be numbered in page order.
type ReadingOrderSequencer struct {
	next int
}

// NewReadingOrderSequencer creates a sequencer starting at 0
func NewReadingOrderSequencer() *ReadingOrderSequencer {
	return &ReadingOrderSequencer{}
}

// Number assigns consecutive reading order values to already ordered
// fragments, continuing from the previous call.
func (s *ReadingOrderSequencer) Number(ordered []text.TextFragment) {
	for i := range ordered {
		ordered[i].ReadingOrder = s.next
		s.next++
	}
}

// SequencePage orders one page's fragments and numbers them.
func (s *ReadingOrderSequencer) SequencePage(fragments []text.TextFragment) []text.TextFragment {
	ordered := OrderPage(fragments)
	s.Number(ordered)
	return ordered
}

// Count returns the number of reading order values handed out so far
func (s *ReadingOrderSequencer) Count() int {
	return s.next
}
