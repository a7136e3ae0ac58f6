package text

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/docstruct/model"
)

// Column sentinels. Real column indexes are 0-based and non-negative.
const (
	// ColumnSpanning marks a fragment wider than the column it starts in,
	// such as a full-width title over a two-column body.
	ColumnSpanning = -1

	// ColumnUnassigned marks a fragment that has not been placed, or was
	// excluded from placement because it is malformed.
	ColumnUnassigned = -2
)

// ReadingOrderUnassigned is the ReadingOrder of a fragment before sequencing.
const ReadingOrderUnassigned = -1

// Validation errors. ErrInvalidPage is reported for page containers with a
// number below 1.
var (
	ErrInvalidBBox     = errors.New("invalid bounding box")
	ErrInvalidFontSize = errors.New("non-positive font size")
	ErrInvalidPage     = errors.New("invalid page number")
)

// FontWeight is the derived weight of a fragment's font.
type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// String returns a string representation of the font weight
func (w FontWeight) String() string {
	if w == WeightBold {
		return "bold"
	}
	return "normal"
}

// MarshalText implements encoding.TextMarshaler
func (w FontWeight) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (w *FontWeight) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "bold":
		*w = WeightBold
	case "normal", "":
		*w = WeightNormal
	default:
		return fmt.Errorf("unknown font weight %q", string(b))
	}
	return nil
}

// boldKeywords are font-name substrings that indicate a bold face.
var boldKeywords = []string{"bold", "heavy", "black", "semibold", "demibold"}

var fold = cases.Fold()

// DetectWeight derives the font weight from a font name such as
// "ABCDEF+Helvetica-Bold" or "MinionPro-Semibold". Matching is
// case-insensitive.
func DetectWeight(fontName string) FontWeight {
	folded := fold.String(fontName)
	for _, kw := range boldKeywords {
		if strings.Contains(folded, kw) {
			return WeightBold
		}
	}
	return WeightNormal
}

// TextFragment is one positioned run of text on a page.
//
// Fragment sources fill Text, Page, BBox, FontSize and FontName. The layout
// analyzer fills the remaining fields.
type TextFragment struct {
	Text       string     `json:"text"`
	Page       int        `json:"page"`
	BBox       model.BBox `json:"bbox"`
	FontSize   float64    `json:"font_size"`
	FontName   string     `json:"font_name"`
	FontWeight FontWeight `json:"font_weight"`

	IsHeading    bool               `json:"is_heading"`
	HeadingLevel model.HeadingLevel `json:"heading_level"`
	Column       int                `json:"column"`
	ReadingOrder int                `json:"reading_order"`
}

// NewFragment creates an unanalyzed fragment with its font weight derived
// from the font name.
func NewFragment(s string, page int, bbox model.BBox, fontSize float64, fontName string) TextFragment {
	return TextFragment{
		Text:         s,
		Page:         page,
		BBox:         bbox,
		FontSize:     fontSize,
		FontName:     fontName,
		FontWeight:   DetectWeight(fontName),
		HeadingLevel: model.HeadingBody,
		Column:       ColumnUnassigned,
		ReadingOrder: ReadingOrderUnassigned,
	}
}

// Validate reports why a fragment cannot take part in clustering or
// classification. The returned error wraps ErrInvalidBBox or
// ErrInvalidFontSize. The page number is not checked here; the analyzer
// takes it from the page container.
func (f *TextFragment) Validate() error {
	if !f.BBox.IsValid() {
		return fmt.Errorf("bbox (%g, %g, %g, %g): %w",
			f.BBox.X0, f.BBox.Y0, f.BBox.X1, f.BBox.Y1, ErrInvalidBBox)
	}
	if math.IsNaN(f.FontSize) || math.IsInf(f.FontSize, 0) || f.FontSize <= 0 {
		return fmt.Errorf("font size %g: %w", f.FontSize, ErrInvalidFontSize)
	}
	return nil
}

// IsBold reports whether the fragment uses a bold face.
func (f *TextFragment) IsBold() bool {
	return f.FontWeight == WeightBold
}

// Left returns the fragment's left edge.
func (f *TextFragment) Left() float64 {
	return f.BBox.X0
}

// Top returns the fragment's top edge.
func (f *TextFragment) Top() float64 {
	return f.BBox.Y0
}

// Width returns the fragment's width.
func (f *TextFragment) Width() float64 {
	return f.BBox.Width()
}

// CharCount returns the number of runes in the trimmed text; it weights the
// fragment in the body font size baseline.
func (f *TextFragment) CharCount() int {
	return utf8.RuneCountInString(strings.TrimSpace(f.Text))
}

// ResetAnalysis clears every field the analyzer sets, so a fragment can be
// analyzed again.
func (f *TextFragment) ResetAnalysis() {
	f.IsHeading = false
	f.HeadingLevel = model.HeadingBody
	f.Column = ColumnUnassigned
	f.ReadingOrder = ReadingOrderUnassigned
}

// CleanText collapses runs of whitespace to single spaces, trims the ends
// and returns the NFC normal form.
func CleanText(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}
