package export

import (
	"fmt"
	"strings"

	"github.com/tsawler/docstruct/layout"
	"github.com/tsawler/docstruct/model"
	"github.com/tsawler/docstruct/text"
)

// MarkdownOptions controls Markdown rendering.
type MarkdownOptions struct {
	// PageHeadings writes a "## Page N" line before each page's content.
	PageHeadings bool
}

// Markdown renders a report as Markdown. Each page's fragments are written
// in reading order, one paragraph per fragment; headings become #, ## or
// ### lines. Fragment text is collapsed onto one line, so a fragment never
// yields more than one block.
func Markdown(r *layout.Report, opts MarkdownOptions) string {
	if r == nil {
		return ""
	}

	var blocks []string
	for _, p := range r.Pages {
		if opts.PageHeadings {
			blocks = append(blocks, fmt.Sprintf("## Page %d", p.Page))
		}
		for _, f := range p.Fragments {
			s := text.CleanText(f.Text)
			if s == "" {
				continue
			}
			if f.HeadingLevel.IsHeading() {
				blocks = append(blocks, headingLine(f.HeadingLevel, s))
				continue
			}
			blocks = append(blocks, escapeBlock(s))
		}
	}

	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func headingLine(level model.HeadingLevel, s string) string {
	return strings.Repeat("#", level.Depth()) + " " + s
}

// escapeBlock keeps body text from being read as a Markdown block
// construct such as a heading, quote, list item or rule.
func escapeBlock(s string) string {
	switch s[0] {
	case '#', '>', '-', '+', '*', '=', '`', '~', '|':
		return `\` + s
	}

	i := 0
	for i < len(s) && i < 9 && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		return s[:i] + `\` + s[i:]
	}
	return s
}

// OutlineMarkdown renders an outline as a nested bullet list, indented two
// spaces per level of nesting.
func OutlineMarkdown(structure []*model.OutlineNode) string {
	var sb strings.Builder
	model.WalkOutline(structure, func(n *model.OutlineNode, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString("- ")
		sb.WriteString(n.Title)
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}
