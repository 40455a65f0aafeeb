package org

// org.go is the top-level façade tying Configuration and Document
// together, grounded on orgize's Org struct (original_source/src/org.rs:
// parse, document, to_org, first_node, node_at_offset) and the teacher's
// Configuration.Parse (org/document.go:166-190) for the error-on-reparse
// style — there is none here, since parsing is total (spec §4.1.6) and
// ReplaceRange returns a new *Document rather than mutating in place or
// panicking.

// Parse parses input using the package's default Configuration, mirroring
// orgize's Org::parse (original_source/src/org.rs's "Parse input string
// to Org element tree using default parse config").
func Parse(input string) *Document {
	return New().Parse(input)
}

// ToOrg reconstructs the original Org-mode source from d's tree, byte for
// byte, following the full-fidelity invariant (spec §3.2).
func (d *Document) ToOrg() string { return d.root.Text() }

// FirstNodeOfKind returns the first node in the document, depth-first
// pre-order, whose kind equals kind, grounded on Org::first_node.
func (d *Document) FirstNodeOfKind(kind SyntaxKind) *SyntaxNode {
	return d.Root().FirstDescendantOfKind(kind)
}

// NodeAtOffset returns the innermost node in the document containing
// offset, grounded on Org::node_at_offset (generalized here to return the
// raw *SyntaxNode rather than a single typed-kind match; callers narrow
// further with the Cast* functions in ast.go as needed).
func (d *Document) NodeAtOffset(offset int) *SyntaxNode {
	return d.Root().NodeAtOffset(offset)
}

// NodeAtOffsetOfKind returns the innermost node of the given kind whose
// range contains offset: the first ancestor-or-self of the innermost
// containing node that matches. Offsets outside the document return nil.
func (d *Document) NodeAtOffsetOfKind(offset int, kind SyntaxKind) *SyntaxNode {
	n := d.Root().NodeAtOffset(offset)
	for n != nil && n.Kind() != kind {
		n = n.Parent()
	}
	return n
}

// Traverse walks d's tree depth-first, emitting Enter/Leave/Token events
// to v (spec §4.5), grounded on Org::traverse.
func (d *Document) Traverse(v Visitor) {
	Traverse(d.Root(), v)
}
