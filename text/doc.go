// Package text defines the positioned text fragment that layout analysis
// consumes.
//
// A [TextFragment] is one run of text as laid out on a page: its string, the
// 1-indexed page number, a bounding box in top-left page points and the font
// it was drawn with. Fragment sources create fragments with [NewFragment];
// the layout package then fills in the heading, column and reading-order
// fields.
//
// # Font Weight
//
// Weight is derived from the font name. [DetectWeight] treats "bold",
// "heavy", "black", "semibold" and "demibold" as bold, ignoring case:
//
//	text.DetectWeight("ABCDEF+Helvetica-Bold") // text.WeightBold
//	text.DetectWeight("Times-Roman")           // text.WeightNormal
//
// # Validation
//
// [TextFragment.Validate] rejects fragments with a missing or inverted
// bounding box or a non-positive font size. The error wraps [ErrInvalidBBox]
// or [ErrInvalidFontSize] for use with errors.Is.
package text
