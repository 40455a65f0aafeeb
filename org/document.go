// Package org is a lossless Org mode syntax processor.
//
// It parses plain text into a concrete syntax tree that preserves every
// byte of the input, with a typed AST overlay for ergonomic access and
// support for cheap incremental reparsing after small edits.
//
// You probably want to start with something like this:
//
//	doc := org.New().Parse("* a headline\n  some text\n")
//	fmt.Print(doc.Root().Text())
package org

import (
	"io"
)

// Document holds the result of a single parse: the immutable green tree,
// the configuration it was parsed under, the original source text (kept
// so the red tree can be recreated cheaply and so incremental reparse has
// something to diff against), and any diagnostics recorded along the way.
// It generalizes the teacher's Document struct (document.go:44-57), which
// instead kept a flat []Node and an Outline table-of-contents built during
// parsing; here, both the flattened element list and outline would be
// derived views over the tree rather than fields, so neither is stored.
type Document struct {
	*Configuration

	text string
	root *GreenNode

	diagnostics []Diagnostic
}

// Parse tokenizes and parses the given source text into a Document,
// mirroring the teacher's Configuration.Parse chaining style
// (document.go:166-190) but over a byte-cursor recursive-descent parser
// instead of a line-tokenizer.
func (c *Configuration) Parse(text string) *Document {
	d := &Document{Configuration: c, text: text}
	sink := &diagnosticSink{log: c}
	children := parseElements(text, c, sink, 0)
	d.root = NewNode(DOCUMENT, children)
	d.diagnostics = sink.items
	return d
}

// ParseReader reads r fully and parses it, mirroring the teacher's
// Configuration.Parse(io.Reader, string) signature.
func (c *Configuration) ParseReader(r io.Reader) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return c.Parse(string(b)), nil
}

// Root returns the document's root red node, the entry point for every
// CST façade and AST overlay query (cst.go, ast.go).
func (d *Document) Root() *SyntaxNode {
	return NewRoot(d.root)
}

// Green returns the document's immutable root green node, mostly useful
// to the incremental reparser (reparse.go) and tests.
func (d *Document) Green() *GreenNode {
	return d.root
}

// Source returns the exact original input text this Document was parsed
// from.
func (d *Document) Source() string {
	return d.text
}

// ToSource reconstructs the source text from the green tree. It must
// always equal Source() for a freshly parsed Document — this is the
// lossless round-trip invariant (spec §3.2, §8's "round-trip" property) —
// but after ReplaceRange it reflects the edited text instead.
func (d *Document) ToSource() string {
	return d.root.Text()
}
