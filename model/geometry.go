package model

import "math"

// BBox is an axis-aligned rectangle in page space.
//
// The origin is the top-left corner of the page, X increases to the right and
// Y increases downward. Units are page points (1/72 inch). Every vertical
// ordering decision in this module depends on this convention, so fragment
// sources must convert into it before analysis.
type BBox struct {
	X0 float64 `json:"x0"` // Left
	Y0 float64 `json:"y0"` // Top
	X1 float64 `json:"x1"` // Right
	Y1 float64 `json:"y1"` // Bottom
}

// NewBBox creates a bounding box from its left, top, right and bottom edges.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X0
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X1
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y0
}

// Width returns the horizontal extent of the box
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// IsZero reports whether all four edges are zero, which is how a missing
// bounding box arrives from most fragment sources.
func (b BBox) IsZero() bool {
	return b.X0 == 0 && b.Y0 == 0 && b.X1 == 0 && b.Y1 == 0
}

// IsValid reports whether the box is present, has finite coordinates and its
// right/bottom edges are not before its left/top edges. A zero-width box
// (a single glyph run collapsed by the extractor) is still valid.
func (b BBox) IsValid() bool {
	for _, v := range [...]float64{b.X0, b.Y0, b.X1, b.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if b.IsZero() {
		return false
	}
	return b.X1 >= b.X0 && b.Y1 >= b.Y0
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// ColumnRange is the horizontal extent [Left, Right) assigned to one reading
// column on a page.
type ColumnRange struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// Width returns the width of the column range
func (c ColumnRange) Width() float64 {
	return c.Right - c.Left
}

// Contains reports whether x falls inside the half-open range [Left, Right).
func (c ColumnRange) Contains(x float64) bool {
	return x >= c.Left && x < c.Right
}

// Distance returns how far x lies outside the range, or 0 if it is inside.
func (c ColumnRange) Distance(x float64) float64 {
	switch {
	case x < c.Left:
		return c.Left - x
	case x >= c.Right:
		return x - c.Right
	default:
		return 0
	}
}
