package org

// FirstDescendantOfKind walks n's subtree pre-order, returning the first
// node (including n itself) whose kind equals kind, grounded on orgize's
// `first_descendant` (original_source/src/org.rs), which climbs a typed
// AST cast instead of a bare kind match — Go has no generics-free
// equivalent of that cast, so this returns the *SyntaxNode and leaves the
// ast.go overlay's typed `cast` helpers to narrow it further.
func (n *SyntaxNode) FirstDescendantOfKind(kind SyntaxKind) *SyntaxNode {
	var found *SyntaxNode
	n.Descendants(func(c *SyntaxNode) bool {
		if c.Kind() == kind {
			found = c
			return false
		}
		return true
	})
	return found
}

// DescendantsOfKind collects every node in n's subtree (including n) whose
// kind equals kind, pre-order.
func (n *SyntaxNode) DescendantsOfKind(kind SyntaxKind) []*SyntaxNode {
	var out []*SyntaxNode
	n.Descendants(func(c *SyntaxNode) bool {
		if c.Kind() == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}

// ReplaceWith returns a new document root with n's subtree replaced by
// replacement, reusing every untouched ancestor sibling and every
// unaffected subtree elsewhere in the document by reference (spec §4.2's
// "structural sharing" requirement on replace_with). It climbs from n to
// the root, rebuilding each ancestor's child list with the one substituted
// child, grounded on orgize's `SyntaxNode::replace_with`
// (original_source/src/replace.rs).
//
// n must not be the root itself; replacing the whole document is done by
// calling Configuration.Parse again.
func (n *SyntaxNode) ReplaceWith(replacement GreenElement) *GreenNode {
	if n.parent == nil {
		if node, ok := replacement.(*GreenNode); ok {
			return node
		}
		return NewNode(n.root.Kind(), []GreenElement{replacement})
	}
	return spliceUp(n.parent, n.green, replacement)
}

// spliceUp rebuilds cur's green node with child replaced by replacement,
// then recurses up through cur's parent (if any), returning the new root.
// Every sibling of child, and every ancestor's other children, are reused
// by reference — only the path from the edited node to the root is
// rebuilt.
func spliceUp(cur *SyntaxNode, child GreenElement, replacement GreenElement) *GreenNode {
	children := cur.green.Children()
	next := make([]GreenElement, len(children))
	copy(next, children)
	for i, c := range children {
		if c == GreenElement(child) {
			next[i] = replacement
			break
		}
	}
	newGreen := cur.green.WithChildren(next)
	if cur.parent == nil {
		return newGreen
	}
	return spliceUp(cur.parent, cur.green, newGreen)
}
