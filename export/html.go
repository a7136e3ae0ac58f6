package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/docstruct/layout"
	"github.com/tsawler/docstruct/model"
)

// HTML renders a report as an HTML fragment by converting its Markdown
// rendering. Headings carry id attributes; without page headings they are
// the same anchors OutlineHTML links to.
func HTML(r *layout.Report, opts MarkdownOptions) (string, error) {
	md := goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	ctx := parser.NewContext(parser.WithIDs(newAnchorIDs()))

	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(r, opts)), &buf, parser.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}

// OutlineHTML renders an outline as a <nav class="outline"> element holding
// nested ordered lists. Each item carries its page in a data-page attribute
// and links to the heading's anchor.
func OutlineHTML(structure []*model.OutlineNode) (string, error) {
	nav := element(atom.Nav, html.Attribute{Key: "class", Val: "outline"})
	if len(structure) > 0 {
		nav.AppendChild(outlineList(structure, newAnchorIDs()))
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, nav); err != nil {
		return "", fmt.Errorf("failed to render outline: %w", err)
	}
	return buf.String(), nil
}

// outlineList builds the <ol> for one level. Anchors are handed out in
// document order, matching the order headings appear in HTML output.
func outlineList(nodes []*model.OutlineNode, ids *anchorIDs) *html.Node {
	ol := element(atom.Ol)
	for _, n := range nodes {
		if n == nil {
			continue
		}
		li := element(atom.Li, html.Attribute{Key: "data-page", Val: strconv.Itoa(n.Page)})

		a := element(atom.A, html.Attribute{Key: "href", Val: "#" + ids.next(n.Title)})
		a.AppendChild(&html.Node{Type: html.TextNode, Data: n.Title})
		li.AppendChild(a)

		if len(n.Children) > 0 {
			li.AppendChild(outlineList(n.Children, ids))
		}
		ol.AppendChild(li)
	}
	return ol
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
