package org

// SyntaxNode is a "red" node: a lazy, parent-aware, absolute-offset view
// over a shared *GreenNode (spec §3.3). Red nodes are cheap and ephemeral —
// they are reconstructed on demand from the green root and must not be
// held across an edit (spec §4.4 invariants: "Typed AST objects obtained
// before the edit must be considered invalidated").
type SyntaxNode struct {
	green  *GreenNode
	parent *SyntaxNode
	offset int // absolute start offset of this node's text in the root
	root   *GreenNode
}

// SyntaxToken is the leaf counterpart of SyntaxNode: a *GreenToken plus its
// absolute offset and parent.
type SyntaxToken struct {
	green  *GreenToken
	parent *SyntaxNode
	offset int
}

// NewRoot wraps a green tree root in a fresh, parentless red node.
func NewRoot(green *GreenNode) *SyntaxNode {
	return &SyntaxNode{green: green, offset: 0, root: green}
}

func (n *SyntaxNode) Kind() SyntaxKind { return n.green.Kind() }
func (n *SyntaxNode) Green() *GreenNode { return n.green }
func (n *SyntaxNode) Parent() *SyntaxNode { return n.parent }
func (n *SyntaxNode) Text() string      { return n.green.Text() }

// TextRange returns the node's [start, end) byte range in the document.
func (n *SyntaxNode) TextRange() (start, end int) {
	return n.offset, n.offset + n.green.Len()
}

func (n *SyntaxNode) Start() int { return n.offset }
func (n *SyntaxNode) End() int   { return n.offset + n.green.Len() }

// Contains reports whether offset lies within [start, end) of this node.
func (n *SyntaxNode) Contains(offset int) bool {
	return n.offset <= offset && offset < n.offset+n.green.Len()
}

// ChildElement is either a *SyntaxNode or a *SyntaxToken, mirroring
// GreenElement at the red layer.
type ChildElement struct {
	Node  *SyntaxNode
	Token *SyntaxToken
}

func (c ChildElement) Kind() SyntaxKind {
	if c.Node != nil {
		return c.Node.Kind()
	}
	return c.Token.Kind()
}

func (c ChildElement) TextRange() (int, int) {
	if c.Node != nil {
		return c.Node.TextRange()
	}
	return c.Token.TextRange()
}

func (t *SyntaxToken) Kind() SyntaxKind { return t.green.Kind() }
func (t *SyntaxToken) Text() string     { return t.green.text }
func (t *SyntaxToken) TextRange() (start, end int) {
	return t.offset, t.offset + t.green.Len()
}
func (t *SyntaxToken) Parent() *SyntaxNode { return t.parent }

// ChildrenWithTokens lazily materializes the red children of n: nodes get
// their own parent-aware *SyntaxNode, tokens get a *SyntaxToken, all at
// their correct absolute offsets (spec §3.3).
func (n *SyntaxNode) ChildrenWithTokens() []ChildElement {
	children := n.green.Children()
	out := make([]ChildElement, len(children))
	off := n.offset
	for i, c := range children {
		switch v := c.(type) {
		case *GreenNode:
			out[i] = ChildElement{Node: &SyntaxNode{green: v, parent: n, offset: off, root: n.root}}
		case *GreenToken:
			out[i] = ChildElement{Token: &SyntaxToken{green: v, parent: n, offset: off}}
		}
		off += c.Len()
	}
	return out
}

// Children returns only the node children of n, skipping tokens, in
// source order (spec §4.2 "children_of_kind" / "first_descendant").
func (n *SyntaxNode) Children() []*SyntaxNode {
	var out []*SyntaxNode
	for _, c := range n.ChildrenWithTokens() {
		if c.Node != nil {
			out = append(out, c.Node)
		}
	}
	return out
}

// Tokens returns only the token children of n, in source order.
func (n *SyntaxNode) Tokens() []*SyntaxToken {
	var out []*SyntaxToken
	for _, c := range n.ChildrenWithTokens() {
		if c.Token != nil {
			out = append(out, c.Token)
		}
	}
	return out
}

// ChildrenOfKind returns n's direct node children whose kind equals kind.
func (n *SyntaxNode) ChildrenOfKind(kind SyntaxKind) []*SyntaxNode {
	var out []*SyntaxNode
	for _, c := range n.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildOfKind returns n's first direct node child of the given kind,
// or nil.
func (n *SyntaxNode) FirstChildOfKind(kind SyntaxKind) *SyntaxNode {
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// FirstTokenOfKind returns n's first direct token child of the given kind,
// or nil.
func (n *SyntaxNode) FirstTokenOfKind(kind SyntaxKind) *SyntaxToken {
	for _, t := range n.Tokens() {
		if t.Kind() == kind {
			return t
		}
	}
	return nil
}

// LastTokenOfKind returns n's last direct token child of the given kind,
// or nil (ast/mod.rs's last_token, used by dual-keyword value gathering).
func (n *SyntaxNode) LastTokenOfKind(kind SyntaxKind) *SyntaxToken {
	var out *SyntaxToken
	for _, t := range n.Tokens() {
		if t.Kind() == kind {
			out = t
		}
	}
	return out
}

// TokensOfKind returns every direct token child of n with the given kind.
func (n *SyntaxNode) TokensOfKind(kind SyntaxKind) []*SyntaxToken {
	var out []*SyntaxToken
	for _, t := range n.Tokens() {
		if t.Kind() == kind {
			out = append(out, t)
		}
	}
	return out
}

// Descendants walks n and every node below it, pre-order DFS, calling f
// for each. Stops early if f returns false.
func (n *SyntaxNode) Descendants(f func(*SyntaxNode) bool) {
	var walk func(*SyntaxNode) bool
	walk = func(c *SyntaxNode) bool {
		if !f(c) {
			return false
		}
		for _, child := range c.Children() {
			if !walk(child) {
				return false
			}
		}
		return true
	}
	walk(n)
}

// NodeAtOffset returns the innermost descendant of n (including n) whose
// text range contains offset, or nil if offset falls outside n entirely
// (spec §4.2 "node_at_offset").
func (n *SyntaxNode) NodeAtOffset(offset int) *SyntaxNode {
	if !n.Contains(offset) {
		return nil
	}
	best := n
	for _, c := range n.Children() {
		if inner := c.NodeAtOffset(offset); inner != nil {
			best = inner
			break
		}
	}
	return best
}

// TokenAtOffset returns the leaf token whose range contains offset. If
// offset sits exactly on the boundary between two adjacent tokens, both
// `before` and `after` are set; otherwise only `after` (== before) is set
// (mirrors orgize's TokenAtOffset semantics, used by the incremental
// reparser's follows_newline check).
func (n *SyntaxNode) TokenAtOffset(offset int) (before, after *SyntaxToken) {
	var all []*SyntaxToken
	n.walkTokens(func(t *SyntaxToken) bool { all = append(all, t); return true })
	for i, t := range all {
		s, e := t.TextRange()
		if offset == s && i > 0 {
			return all[i-1], t
		}
		if offset >= s && offset < e {
			return t, t
		}
	}
	if len(all) > 0 {
		last := all[len(all)-1]
		if _, e := last.TextRange(); offset == e {
			return last, last
		}
	}
	return nil, nil
}

func (n *SyntaxNode) walkTokens(f func(*SyntaxToken) bool) {
	for _, c := range n.ChildrenWithTokens() {
		if c.Token != nil {
			if !f(c.Token) {
				return
			}
		} else if c.Node != nil {
			c.Node.walkTokens(f)
		}
	}
}

// RootNode rebuilds a fresh parentless red root from n's stored root green
// node.
func (n *SyntaxNode) RootNode() *SyntaxNode { return NewRoot(n.root) }
