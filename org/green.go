package org

import "strings"

// GreenElement is either a *GreenNode or a *GreenToken. Both satisfy it.
// Go has no sum types, so we use a small closed interface the way the
// teacher closes its Node interface over concrete element types
// (document.go's Node interface).
type GreenElement interface {
	Kind() SyntaxKind
	Len() int
	writeTo(*strings.Builder)
}

// GreenToken is an immutable leaf: a kind paired with its exact source
// text. Two tokens are structurally identical iff both fields match.
type GreenToken struct {
	kind SyntaxKind
	text string
}

// NewToken builds a green token. Tokens are small value-ish objects; the
// builder never mutates one after construction (spec §3.2: green nodes are
// immutable).
func NewToken(kind SyntaxKind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() SyntaxKind { return t.kind }
func (t *GreenToken) Len() int         { return len(t.text) }
func (t *GreenToken) Text() string     { return t.text }

func (t *GreenToken) writeTo(b *strings.Builder) { b.WriteString(t.text) }

// GreenNode is an immutable, structurally shared inner node: a kind plus an
// ordered list of children (each a node or a token), plus the
// precomputed total text length of the subtree (spec §3.2).
//
// Green nodes are never mutated after construction. A "modification" is
// always "build a new GreenNode reusing as many existing children as
// possible" (spec §3.2, §9 "Persistent tree with structural sharing").
type GreenNode struct {
	kind     SyntaxKind
	children []GreenElement
	len      int
}

// NewNode builds an immutable green node from kind and children. The total
// length is the sum of every child's length, so building a node is O(len(children)),
// never O(subtree size).
func NewNode(kind SyntaxKind, children []GreenElement) *GreenNode {
	n := &GreenNode{kind: kind, children: children}
	for _, c := range children {
		n.len += c.Len()
	}
	return n
}

func (n *GreenNode) Kind() SyntaxKind       { return n.kind }
func (n *GreenNode) Len() int               { return n.len }
func (n *GreenNode) Children() []GreenElement { return n.children }

func (n *GreenNode) writeTo(b *strings.Builder) {
	for _, c := range n.children {
		c.writeTo(b)
	}
}

// Text reconstructs the node's full source text by concatenating every
// leaf token in DFS order (spec §3.2 full-fidelity invariant, and the
// Testable Property "lossless round-trip").
func (n *GreenNode) Text() string {
	var b strings.Builder
	b.Grow(n.len)
	n.writeTo(&b)
	return b.String()
}

// WithChildren returns a new green node of the same kind with a different
// child slice. The original node (and any unaffected children) are left
// untouched and may still be referenced by other trees — this is the
// "structural sharing" half of the green tree invariant.
func (n *GreenNode) WithChildren(children []GreenElement) *GreenNode {
	return NewNode(n.kind, children)
}
