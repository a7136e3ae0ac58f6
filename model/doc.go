// Package model provides the shared value types for layout analysis.
//
// These types describe page geometry and the document structure that the
// layout package reconstructs. They carry no behaviour beyond small helpers,
// so every other package can depend on them.
//
// # Coordinates
//
// A [BBox] uses a top-left origin with Y increasing downward, in page points:
//
//	box := model.NewBBox(72, 90, 540, 104) // left, top, right, bottom
//	box.Width() // 468
//
// Fragment sources working in PDF user space (bottom-left origin) must flip
// Y before building boxes.
//
// # Layout and heading types
//
// [LayoutType] and [HeadingLevel] are closed enumerations. Both implement
// encoding.TextMarshaler so reports serialise as "two_column" or "h2".
//
// # Outline
//
// An [OutlineNode] forest is the nested table of contents of a document.
// [WalkOutline] visits it without recursion.
package model
