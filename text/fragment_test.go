package text

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/tsawler/docstruct/model"
)

func TestDetectWeight(t *testing.T) {
	tests := []struct {
		fontName string
		expected FontWeight
	}{
		{"Helvetica-Bold", WeightBold},
		{"ABCDEF+TimesNewRomanPS-BoldMT", WeightBold},
		{"MinionPro-Semibold", WeightBold},
		{"Futura-Heavy", WeightBold},
		{"Arial Black", WeightBold},
		{"SourceSans-DemiBold", WeightBold},
		{"HELVETICA-BOLD", WeightBold},
		{"Times-Roman", WeightNormal},
		{"Helvetica-Oblique", WeightNormal},
		{"", WeightNormal},
	}

	for _, tt := range tests {
		if got := DetectWeight(tt.fontName); got != tt.expected {
			t.Errorf("DetectWeight(%q) = %v, want %v", tt.fontName, got, tt.expected)
		}
	}
}

func TestNewFragment(t *testing.T) {
	f := NewFragment("Introduction", 1, model.NewBBox(72, 72, 300, 90), 18, "Helvetica-Bold")

	if f.FontWeight != WeightBold {
		t.Errorf("expected bold weight, got %v", f.FontWeight)
	}
	if f.HeadingLevel != model.HeadingBody {
		t.Errorf("expected body level before classification, got %v", f.HeadingLevel)
	}
	if f.Column != ColumnUnassigned {
		t.Errorf("expected unassigned column, got %d", f.Column)
	}
	if f.ReadingOrder != ReadingOrderUnassigned {
		t.Errorf("expected unassigned reading order, got %d", f.ReadingOrder)
	}
	if f.IsHeading {
		t.Error("new fragment should not be a heading")
	}
}

func TestValidate(t *testing.T) {
	valid := NewFragment("ok", 1, model.NewBBox(10, 10, 50, 22), 12, "Times-Roman")

	tests := []struct {
		name    string
		mutate  func(f *TextFragment)
		wantErr error
	}{
		{"valid", func(f *TextFragment) {}, nil},
		{"missing bbox", func(f *TextFragment) { f.BBox = model.BBox{} }, ErrInvalidBBox},
		{"inverted bbox", func(f *TextFragment) { f.BBox = model.NewBBox(50, 10, 10, 22) }, ErrInvalidBBox},
		{"nan bbox", func(f *TextFragment) { f.BBox.X1 = math.NaN() }, ErrInvalidBBox},
		{"zero font size", func(f *TextFragment) { f.FontSize = 0 }, ErrInvalidFontSize},
		{"negative font size", func(f *TextFragment) { f.FontSize = -3 }, ErrInvalidFontSize},
		{"nan font size", func(f *TextFragment) { f.FontSize = math.NaN() }, ErrInvalidFontSize},
		{"page zero is not checked", func(f *TextFragment) { f.Page = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := f.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCharCount(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"hello", 5},
		{"  padded  ", 6},
		{"naïve", 5},
		{"", 0},
		{"   ", 0},
	}

	for _, tt := range tests {
		f := TextFragment{Text: tt.text}
		if got := f.CharCount(); got != tt.expected {
			t.Errorf("CharCount(%q) = %d, want %d", tt.text, got, tt.expected)
		}
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Intro  ", "Intro"},
		{"Related\n   Work", "Related Work"},
		{"Café", "Café"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanText(tt.input); got != tt.expected {
			t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestResetAnalysis(t *testing.T) {
	f := NewFragment("Title", 1, model.NewBBox(0, 0, 10, 10), 20, "Arial")
	f.IsHeading = true
	f.HeadingLevel = model.HeadingH1
	f.Column = 1
	f.ReadingOrder = 7

	f.ResetAnalysis()

	if f.IsHeading || f.HeadingLevel != model.HeadingBody || f.Column != ColumnUnassigned || f.ReadingOrder != ReadingOrderUnassigned {
		t.Errorf("ResetAnalysis left analysis fields set: %+v", f)
	}
}

func TestFragmentJSON(t *testing.T) {
	input := `{
		"text": "Methods",
		"page": 2,
		"bbox": {"x0": 72, "y0": 100, "x1": 200, "y1": 118},
		"font_size": 16,
		"font_name": "Helvetica-Bold",
		"font_weight": "bold",
		"heading_level": "h2"
	}`

	var f TextFragment
	if err := json.Unmarshal([]byte(input), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if f.Text != "Methods" || f.Page != 2 || f.FontSize != 16 {
		t.Errorf("unexpected fragment: %+v", f)
	}
	if f.BBox != model.NewBBox(72, 100, 200, 118) {
		t.Errorf("unexpected bbox: %+v", f.BBox)
	}
	if !f.IsBold() {
		t.Error("expected bold weight from JSON")
	}
	if f.HeadingLevel != model.HeadingH2 {
		t.Errorf("expected h2, got %v", f.HeadingLevel)
	}

	out, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back TextFragment
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal round trip: %v", err)
	}
	if back != f {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, f)
	}
}

func TestFontWeightUnmarshalUnknown(t *testing.T) {
	var w FontWeight
	if err := w.UnmarshalText([]byte("ultra")); err == nil {
		t.Error("expected error for unknown weight")
	}
}
