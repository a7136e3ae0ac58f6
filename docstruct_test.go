package docstruct

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/docstruct/layout"
	"github.com/tsawler/docstruct/model"
	"github.com/tsawler/docstruct/text"
)

// writePDF writes a single-page US Letter PDF with a bold heading and
// three lines of body text.
func writePDF(t *testing.T) string {
	t.Helper()

	content := strings.Join([]string{
		"BT /F1 18 Tf 72 700 Td (Overview) Tj ET",
		"BT /F2 10 Tf 72 670 Td (The first line of body text) Tj ET",
		"BT /F2 10 Tf 72 655 Td (The second line of body text) Tj ET",
		"BT /F2 10 Tf 72 640 Td (The third line of body text) Tj ET",
	}, "\n")

	// Every printable ASCII glyph, the space included, advances half an em.
	widths := "/FirstChar 32 /LastChar 126 /Widths [" + strings.Repeat("500 ", 95) + "]"
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R /F2 5 0 R >> >> /Contents 6 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding " + widths + " >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Times-Roman /Encoding /WinAnsiEncoding " + widths + " >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	return path
}

func frag(s string, page int, x, y, size float64, font string) text.TextFragment {
	return text.NewFragment(s, page, model.NewBBox(x, y, x+150, y+size), size, font)
}

// twoPages returns a single-column page with a heading followed by a plain
// page of body text.
func twoPages() []layout.PageInput {
	return []layout.PageInput{
		{
			Number: 1, Width: 612, Height: 792,
			Fragments: []text.TextFragment{
				frag("Introduction", 1, 72, 60, 20, "Helvetica-Bold"),
				frag("Body line one", 1, 72, 100, 10, "Times-Roman"),
				frag("Body line two", 1, 72, 115, 10, "Times-Roman"),
			},
		},
		{
			Number: 2, Width: 612, Height: 792,
			Fragments: []text.TextFragment{
				frag("Body line three", 2, 72, 100, 10, "Times-Roman"),
				frag("Body line four", 2, 72, 115, 10, "Times-Roman"),
			},
		},
	}
}

func TestOpen_NonExistent(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nonexistent.pdf")).Report()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestOpen_NoFilename(t *testing.T) {
	if _, err := Open("").Report(); err == nil {
		t.Error("expected error for empty filename")
	}
}

func TestOpen_PDF(t *testing.T) {
	report, err := Open(writePDF(t)).Report()
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if report.TotalPages != 1 || report.LayoutType != model.LayoutSingleColumn {
		t.Errorf("got %d pages, layout %v", report.TotalPages, report.LayoutType)
	}
	if !report.BaselineMeasured || math.Abs(report.BodyFontSize-10) > 0.01 {
		t.Errorf("body font size = %v (measured %v), want 10", report.BodyFontSize, report.BaselineMeasured)
	}

	want := []layout.HeadingEntry{{Text: "Overview", Level: model.HeadingH1, Page: 1, ReadingOrder: 0}}
	if diff := cmp.Diff(want, report.Headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	if len(report.Pages[0].Fragments) != 4 {
		t.Errorf("got %d fragments, want 4", len(report.Pages[0].Fragments))
	}
}

func TestOpen_PageOutOfRange(t *testing.T) {
	_, err := Open(writePDF(t)).Pages(2).Report()
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("expected out of range error, got %v", err)
	}
}

func TestToMarkdown(t *testing.T) {
	md, err := Open(writePDF(t)).ToMarkdown()
	if err != nil {
		t.Fatalf("ToMarkdown: %v", err)
	}
	if !strings.HasPrefix(md, "# Overview\n\nThe first line of body text\n") {
		t.Errorf("unexpected markdown:\n%s", md)
	}
}

func TestFromPages_Report(t *testing.T) {
	report, err := FromPages(twoPages()).Report()
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if report.TotalPages != 2 || report.TotalHeadings != 1 {
		t.Errorf("got %d pages, %d headings", report.TotalPages, report.TotalHeadings)
	}

	outline, err := FromPages(twoPages()).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	want := []*model.OutlineNode{{Title: "Introduction", Level: 1, Page: 1}}
	if diff := cmp.Diff(want, outline); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
}

func TestChainReturnsCopy(t *testing.T) {
	base := FromPages(twoPages())
	tuned := base.ColumnGap(50).MinColumnWidth(80).HeadingRatio(1.4).MinHeadingSize(9).Workers(2)

	if base.options.config != layout.DefaultConfig() {
		t.Errorf("base options changed: %+v", base.options.config)
	}
	if base.options.workers != 0 {
		t.Errorf("base workers changed: %d", base.options.workers)
	}

	want := layout.Config{ColumnGapThreshold: 50, MinColumnWidth: 80, HeadingSizeRatio: 1.4, MinHeadingSize: 9}
	if tuned.options.config != want {
		t.Errorf("tuned config = %+v, want %+v", tuned.options.config, want)
	}

	report, err := tuned.Report()
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if report.Config != want {
		t.Errorf("report config = %+v, want %+v", report.Config, want)
	}
}

func TestPagesDoNotAlias(t *testing.T) {
	base := FromPages(twoPages()).Pages(1)
	a := base.Pages(2)
	b := base.Pages(3)

	if diff := cmp.Diff([]int{1, 2}, a.options.pages); diff != "" {
		t.Errorf("a pages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 3}, b.options.pages); diff != "" {
		t.Errorf("b pages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, base.options.pages); diff != "" {
		t.Errorf("base pages mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPages_PageSelection(t *testing.T) {
	report, err := FromPages(twoPages()).Pages(2).Report()
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if report.TotalPages != 1 || report.Pages[0].Page != 2 {
		t.Errorf("expected only page 2, got %d pages", report.TotalPages)
	}
	if report.TotalHeadings != 0 {
		t.Errorf("page 2 has no headings, got %d", report.TotalHeadings)
	}

	if _, err := FromPages(twoPages()).Pages(5).Report(); err == nil {
		t.Error("expected error selecting a page not in the input")
	}
}

func TestPageRange(t *testing.T) {
	a := FromPages(nil).PageRange(2, 4)
	if diff := cmp.Diff([]int{2, 3, 4}, a.options.pages); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePages(t *testing.T) {
	tests := []struct {
		name      string
		selection []int
		count     int
		want      []int
		wantErr   bool
	}{
		{name: "sorted and deduplicated", selection: []int{3, 1, 3}, count: 3, want: []int{1, 3}},
		{name: "zero", selection: []int{0}, count: 3, wantErr: true},
		{name: "past the end", selection: []int{1, 4}, count: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePages(tt.selection, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolvePages() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("resolvePages() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	pages := twoPages()
	pages[0].Fragments = append(pages[0].Fragments, frag("broken", 1, 72, 130, 0, "Times-Roman"))

	report, err := FromPages(pages).Logger(logger).Report()
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if len(report.Diagnostics) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(report.Diagnostics))
	}
	if !strings.Contains(buf.String(), "malformed fragment") {
		t.Errorf("expected a log line about the malformed fragment, got:\n%s", buf.String())
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(Open("").Report())
}
