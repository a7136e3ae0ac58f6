package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/docstruct/text"
)

func texts(fragments []text.TextFragment) []string {
	out := make([]string, len(fragments))
	for i, f := range fragments {
		out[i] = f.Text
	}
	return out
}

func TestOrderPage_TwoColumnsWithSpanningTitle(t *testing.T) {
	fragments := []text.TextFragment{
		makeFragment(350, 114, 200, 10, "R2"),
		makeFragment(52, 114, 200, 10, "L2"),
		makeFragment(350, 100, 200, 10, "R1"),
		makeFragment(50, 60, 500, 18, "Title"),
		makeFragment(52, 100, 200, 10, "L1"),
	}
	AssignColumns(fragments, twoColumnLayout())

	ordered := OrderPage(fragments)

	want := []string{"Title", "L1", "L2", "R1", "R2"}
	if diff := cmp.Diff(want, texts(ordered)); diff != "" {
		t.Errorf("reading order mismatch (-want +got):\n%s", diff)
	}

	// The input keeps its order.
	if fragments[0].Text != "R2" {
		t.Error("OrderPage reordered its input")
	}
}

func TestOrderPage_TieBreaks(t *testing.T) {
	fragments := []text.TextFragment{
		makeFragment(200, 100, 50, 10, "second on line"),
		makeFragment(100, 100, 50, 10, "first on line"),
		makeFragment(100, 120, 50, 10, "dup A"),
		makeFragment(100, 120, 50, 10, "dup B"),
	}
	for i := range fragments {
		fragments[i].Column = 0
	}

	ordered := OrderPage(fragments)

	want := []string{"first on line", "second on line", "dup A", "dup B"}
	if diff := cmp.Diff(want, texts(ordered)); diff != "" {
		t.Errorf("tie-break mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderPage_UnassignedLast(t *testing.T) {
	fragments := []text.TextFragment{
		{Text: "broken 1", Column: text.ColumnUnassigned},
		makeFragment(100, 300, 50, 10, "body low"),
		{Text: "broken 2", Column: text.ColumnUnassigned},
		makeFragment(100, 100, 50, 10, "body high"),
	}
	fragments[1].Column = 0
	fragments[3].Column = 0

	ordered := OrderPage(fragments)

	want := []string{"body high", "body low", "broken 1", "broken 2"}
	if diff := cmp.Diff(want, texts(ordered)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadingOrderSequencer_ContinuesAcrossPages(t *testing.T) {
	seq := NewReadingOrderSequencer()

	page1 := []text.TextFragment{
		makeFragment(72, 120, 100, 10, "p1 b"),
		makeFragment(72, 100, 100, 10, "p1 a"),
	}
	page2 := []text.TextFragment{
		makeFragment(72, 140, 100, 10, "p2 c"),
		makeFragment(72, 100, 100, 10, "p2 a"),
		makeFragment(72, 120, 100, 10, "p2 b"),
	}
	for _, page := range [][]text.TextFragment{page1, page2} {
		for i := range page {
			page[i].Column = 0
		}
	}

	out1 := seq.SequencePage(page1)
	out2 := seq.SequencePage(page2)

	var orders []int
	var names []string
	for _, f := range append(out1, out2...) {
		orders = append(orders, f.ReadingOrder)
		names = append(names, f.Text)
	}

	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, orders); diff != "" {
		t.Errorf("reading order values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"p1 a", "p1 b", "p2 a", "p2 b", "p2 c"}, names); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
	if seq.Count() != 5 {
		t.Errorf("Count() = %d, want 5", seq.Count())
	}
}
