package model

// OutlineNode is one entry of the document outline.
//
// Children are owned by their parent only; nodes carry no parent pointer.
// For every child, child.Level > parent.Level.
type OutlineNode struct {
	Title    string         `json:"title"`
	Level    int            `json:"level"`
	Page     int            `json:"page"`
	Children []*OutlineNode `json:"children,omitempty"`
}

// WalkOutline visits every node of the forest in document (pre-)order,
// passing the nesting depth (0 for roots). Returning false from fn skips the
// node's children. The walk uses an explicit stack.
func WalkOutline(roots []*OutlineNode, fn func(n *OutlineNode, depth int) bool) {
	type frame struct {
		node  *OutlineNode
		depth int
	}

	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: roots[i]})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node == nil {
			continue
		}
		if !fn(top.node, top.depth) {
			continue
		}
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: top.node.Children[i], depth: top.depth + 1})
		}
	}
}

// CountOutline returns the total number of nodes in the forest.
func CountOutline(roots []*OutlineNode) int {
	n := 0
	WalkOutline(roots, func(*OutlineNode, int) bool {
		n++
		return true
	})
	return n
}
