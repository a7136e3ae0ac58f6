// Package reader turns the text of PDF files into layout input.
//
// It is the reference fragment source for the layout package: each page's
// glyphs are merged into runs sharing font, size and baseline, and each run
// becomes a [text.TextFragment] in top-left page coordinates.
//
// # Opening PDF Files
//
// Use [Open] to open a PDF file for reading:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	pages, warnings := r.Pages()
//	report := layout.Analyze(pages, layout.DefaultConfig())
//
// # Coordinates
//
// PDF user space has its origin at the bottom-left of the MediaBox. Fragments
// are converted so the origin is the top-left corner and Y grows downward;
// a glyph with baseline y and size s spans from (top - y - s) to (top - y).
// A MediaBox missing on the page is inherited from the page tree, falling
// back to US Letter.
//
// # Damaged Pages
//
// A page whose objects or content stream cannot be decoded is returned
// without fragments, and [Reader.Pages] reports it as a [Warning]. Other
// pages are unaffected.
package reader
