package model

import (
	"fmt"
	"strings"
)

// LayoutType is the column arrangement of a page or a whole document.
type LayoutType int

const (
	LayoutSingleColumn LayoutType = iota // One reading column
	LayoutTwoColumn                      // Two side-by-side columns
	LayoutThreeColumn                    // Three side-by-side columns
	LayoutMixed                          // Pages disagree (document level only)
)

// String returns a string representation of the layout type
func (t LayoutType) String() string {
	switch t {
	case LayoutSingleColumn:
		return "single_column"
	case LayoutTwoColumn:
		return "two_column"
	case LayoutThreeColumn:
		return "three_column"
	case LayoutMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// LayoutTypeForColumns maps a surviving column count to a layout type.
// Counts outside 1..3 are not produced by the column detector; they map to
// LayoutSingleColumn.
func LayoutTypeForColumns(n int) LayoutType {
	switch n {
	case 2:
		return LayoutTwoColumn
	case 3:
		return LayoutThreeColumn
	default:
		return LayoutSingleColumn
	}
}

// MarshalText implements encoding.TextMarshaler
func (t LayoutType) MarshalText() ([]byte, error) {
	if t < LayoutSingleColumn || t > LayoutMixed {
		return nil, fmt.Errorf("invalid layout type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *LayoutType) UnmarshalText(b []byte) error {
	parsed, err := ParseLayoutType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseLayoutType parses the String form of a layout type.
func ParseLayoutType(s string) (LayoutType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single_column":
		return LayoutSingleColumn, nil
	case "two_column":
		return LayoutTwoColumn, nil
	case "three_column":
		return LayoutThreeColumn, nil
	case "mixed":
		return LayoutMixed, nil
	}
	return LayoutSingleColumn, fmt.Errorf("unknown layout type %q", s)
}

// HeadingLevel is the hierarchy level of a fragment. HeadingBody marks
// ordinary text.
type HeadingLevel int

const (
	HeadingBody HeadingLevel = iota // Body text
	HeadingH1                       // Main title
	HeadingH2                       // Section heading
	HeadingH3                       // Subsection heading
)

// String returns a string representation of the heading level
func (l HeadingLevel) String() string {
	switch l {
	case HeadingBody:
		return "body"
	case HeadingH1:
		return "h1"
	case HeadingH2:
		return "h2"
	case HeadingH3:
		return "h3"
	default:
		return "unknown"
	}
}

// IsHeading reports whether the level is H1, H2 or H3.
func (l HeadingLevel) IsHeading() bool {
	return l >= HeadingH1 && l <= HeadingH3
}

// Depth returns the numeric outline level (1-3), or 0 for body text.
func (l HeadingLevel) Depth() int {
	if l.IsHeading() {
		return int(l)
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler
func (l HeadingLevel) MarshalText() ([]byte, error) {
	if l < HeadingBody || l > HeadingH3 {
		return nil, fmt.Errorf("invalid heading level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *HeadingLevel) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "body", "":
		*l = HeadingBody
	case "h1":
		*l = HeadingH1
	case "h2":
		*l = HeadingH2
	case "h3":
		*l = HeadingH3
	default:
		return fmt.Errorf("unknown heading level %q", string(b))
	}
	return nil
}
