package layout

import (
	"github.com/tsawler/docstruct/model"
	"github.com/tsawler/docstruct/text"
)

// BuildOutline folds headings, given in reading order, into an outline
// forest. Each heading closes every open node at its own level or deeper and
// becomes a child of the node left open, or a new root. A level jump such
// as H1 followed by H3 attaches the H3 directly under the H1.
//
// Fragments that are not headings, or whose cleaned title is empty, are
// skipped. The result is never nil.
func BuildOutline(headings []text.TextFragment) []*model.OutlineNode {
	roots := []*model.OutlineNode{}
	var stack []*model.OutlineNode

	for i := range headings {
		h := &headings[i]
		if !h.HeadingLevel.IsHeading() {
			continue
		}
		title := text.CleanText(h.Text)
		if title == "" {
			continue
		}

		node := &model.OutlineNode{
			Title: title,
			Level: h.HeadingLevel.Depth(),
			Page:  h.Page,
		}

		for len(stack) > 0 && stack[len(stack)-1].Level >= node.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}
	return roots
}
