package export

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// AnchorID returns a URL-safe anchor for a heading title: lower case,
// spaces as hyphens, everything but [a-z0-9-] removed.
func AnchorID(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")

	var sb strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			sb.WriteRune(r)
		}
	}

	id := sb.String()
	for strings.Contains(id, "--") {
		id = strings.ReplaceAll(id, "--", "-")
	}
	id = strings.Trim(id, "-")
	if id == "" {
		id = "section"
	}
	return id
}

// anchorIDs hands out unique anchors in document order. Repeated titles
// get "-1", "-2", ... suffixes. It implements goldmark's parser.IDs so the
// HTML export and the outline agree on anchors.
type anchorIDs struct {
	seen map[string]bool
}

func newAnchorIDs() *anchorIDs {
	return &anchorIDs{seen: make(map[string]bool)}
}

func (a *anchorIDs) next(title string) string {
	base := AnchorID(title)
	id := base
	for i := 1; a.seen[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	a.seen[id] = true
	return id
}

// Generate implements parser.IDs
func (a *anchorIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	return []byte(a.next(string(value)))
}

// Put implements parser.IDs
func (a *anchorIDs) Put(value []byte) {
	a.seen[string(value)] = true
}
