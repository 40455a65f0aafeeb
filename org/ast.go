package org

import "strings"

// ast.go provides the typed AST overlay (spec §4.3): thin, zero-cost
// wrappers over a *SyntaxNode that expose named, semantic accessors.
// Construction is fallible — each cast() returns (view, false) when the
// underlying node's kind doesn't match — grounded on orgize's
// `ast::Document`/`ast::Headline`/etc. accessor pattern
// (original_source/src/ast/document.rs, src/ast/block.rs). No wrapper
// mutates its underlying node.

// tokenOfKind wraps a node's first direct token of the given kind as a
// Token (zero Token when absent), the accessor return convention of spec
// §3.5.
func tokenOfKind(n *SyntaxNode, kind SyntaxKind) Token {
	return NewToken2(n.FirstTokenOfKind(kind))
}

// Headline is a typed view over a HEADLINE node.
type Headline struct{ n *SyntaxNode }

// CastHeadline wraps n as a Headline iff n's kind is HEADLINE.
func CastHeadline(n *SyntaxNode) (Headline, bool) {
	if n == nil || n.Kind() != HEADLINE {
		return Headline{}, false
	}
	return Headline{n: n}, true
}

func (h Headline) Syntax() *SyntaxNode { return h.n }

// Level returns the headline's star count (spec §4.3's "Headline::level()
// = count of leading *").
func (h Headline) Level() int {
	if t := h.n.FirstTokenOfKind(STARS); t != nil {
		return len(t.Text())
	}
	return 0
}

// Todo returns the headline's TODO_KEYWORD token text, or "".
func (h Headline) Todo() string {
	return tokenOfKind(h.n, TODO_KEYWORD).String()
}

// Priority returns the headline's PRIORITY token text (e.g. "[#A]"), or
// "".
func (h Headline) Priority() string {
	return tokenOfKind(h.n, PRIORITY).String()
}

// Title returns the raw text of the headline's title objects — the
// header line minus stars, todo keyword, priority cookie, and tags.
func (h Headline) Title() string {
	var b strings.Builder
	for _, c := range h.n.ChildrenWithTokens() {
		switch c.Kind() {
		case NEW_LINE, SECTION, HEADLINE, PLANNING, PROPERTY_DRAWER:
			return b.String()
		case STARS, WHITESPACE, TODO_KEYWORD, PRIORITY, TAGS:
			continue
		}
		if c.Node != nil {
			b.WriteString(c.Node.Text())
		} else {
			b.WriteString(c.Token.Text())
		}
	}
	return b.String()
}

// Tags returns the headline's trailing tag list, split on ':', empty
// entries dropped.
func (h Headline) Tags() []string {
	t := h.n.FirstTokenOfKind(TAGS)
	if t == nil {
		return nil
	}
	var out []string
	for _, part := range strings.Split(t.Text(), ":") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Section returns the headline's own SECTION child (its body before any
// sub-headline), or nil if it has none.
func (h Headline) Section() *SyntaxNode { return h.n.FirstChildOfKind(SECTION) }

// Properties returns the headline's PROPERTY_DRAWER child, if any.
func (h Headline) Properties() (PropertyDrawer, bool) {
	return CastPropertyDrawer(h.n.FirstChildOfKind(PROPERTY_DRAWER))
}

// SubHeadlines returns every direct HEADLINE child (nested sub-headlines).
func (h Headline) SubHeadlines() []Headline {
	var out []Headline
	for _, c := range h.n.ChildrenOfKind(HEADLINE) {
		out = append(out, Headline{n: c})
	}
	return out
}

// Link is a typed view over a LINK node.
type Link struct{ n *SyntaxNode }

func CastLink(n *SyntaxNode) (Link, bool) {
	if n == nil || n.Kind() != LINK {
		return Link{}, false
	}
	return Link{n: n}, true
}

func (l Link) Syntax() *SyntaxNode { return l.n }

// PathToken returns the link's LINK_PATH token (zero when absent).
func (l Link) PathToken() Token {
	return tokenOfKind(l.n, LINK_PATH)
}

// Path returns the link's LINK_PATH token text.
func (l Link) Path() string {
	return l.PathToken().String()
}

// Description returns the link's description text (the LINK_DESCRIPTION
// child's concatenated text), or "" if the link has no description.
func (l Link) Description() string {
	if d := l.n.FirstChildOfKind(LINK_DESCRIPTION); d != nil {
		return d.Text()
	}
	return ""
}

// HasDescription reports whether the link carries an explicit description.
func (l Link) HasDescription() bool {
	return l.n.FirstChildOfKind(LINK_DESCRIPTION) != nil
}

// imageExtensions mirrors the teacher's imageExtensionRegexp
// (org/inline.go, now distributed into link.go's grounding), kept here as
// the typed-accessor's own lookup since IsImage is purely an AST-level
// semantic, not a parse-time concern.
var imageExtensions = map[string]bool{
	".png": true, ".gif": true, ".jpg": true, ".jpeg": true, ".svg": true,
	".tif": true, ".tiff": true, ".webp": true, ".xbm": true, ".xpm": true,
	".pbm": true, ".pgm": true, ".ppm": true, ".avif": true,
}

// IsImage reports whether the link's path has an image suffix and the
// link has no description (spec §4.3's "Link::is_image()").
func (l Link) IsImage() bool {
	if l.HasDescription() {
		return false
	}
	p := l.Path()
	if dot := strings.LastIndexByte(p, '.'); dot != -1 {
		return imageExtensions[strings.ToLower(p[dot:])]
	}
	return false
}

// SourceBlock is a typed view over a SOURCE_BLOCK node.
type SourceBlock struct{ n *SyntaxNode }

func CastSourceBlock(n *SyntaxNode) (SourceBlock, bool) {
	if n == nil || n.Kind() != SOURCE_BLOCK {
		return SourceBlock{}, false
	}
	return SourceBlock{n: n}, true
}

func (s SourceBlock) Syntax() *SyntaxNode { return s.n }

// Language returns the block's SRC_BLOCK_LANGUAGE token text, or "".
func (s SourceBlock) Language() string {
	if begin := s.n.FirstChildOfKind(BLOCK_BEGIN); begin != nil {
		if t := begin.FirstTokenOfKind(SRC_BLOCK_LANGUAGE); t != nil {
			return t.Text()
		}
	}
	return ""
}

// Value concatenates every TEXT leaf under the block's BLOCK_CONTENT,
// unescaping the Org comma-escape for leading `*`/`#+` (spec §4.3's
// "SourceBlock::value()"), grounded on original_source/src/ast/block.rs.
func (s SourceBlock) Value() string { return blockValue(s.n) }

// ExportBlock is a typed view over an EXPORT_BLOCK node.
type ExportBlock struct{ n *SyntaxNode }

func CastExportBlock(n *SyntaxNode) (ExportBlock, bool) {
	if n == nil || n.Kind() != EXPORT_BLOCK {
		return ExportBlock{}, false
	}
	return ExportBlock{n: n}, true
}

func (e ExportBlock) Syntax() *SyntaxNode { return e.n }
func (e ExportBlock) Value() string       { return blockValue(e.n) }

// blockValue implements the TEXT-concatenation-plus-unescape rule shared
// by SourceBlock.Value and ExportBlock.Value.
func blockValue(n *SyntaxNode) string {
	content := n.FirstChildOfKind(BLOCK_CONTENT)
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, t := range content.Tokens() {
		if t.Kind() != TEXT {
			continue
		}
		b.WriteString(unescapeBlockLines(t.Text()))
	}
	return b.String()
}

// unescapeBlockLines strips the Org comma-escape (`,*` -> `*`, `,#+` ->
// `#+`) from the start of every line in s.
func unescapeBlockLines(s string) string {
	lines := strings.SplitAfter(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimRight(line, "\n\r")
		nl := line[len(trimmed):]
		if strings.HasPrefix(trimmed, ",*") || strings.HasPrefix(trimmed, ",#+") {
			trimmed = trimmed[1:]
		}
		lines[i] = trimmed + nl
	}
	return strings.Join(lines, "")
}

// PropertyDrawer is a typed view over a PROPERTY_DRAWER node.
type PropertyDrawer struct{ n *SyntaxNode }

func CastPropertyDrawer(n *SyntaxNode) (PropertyDrawer, bool) {
	if n == nil || n.Kind() != PROPERTY_DRAWER {
		return PropertyDrawer{}, false
	}
	return PropertyDrawer{n: n}, true
}

func (p PropertyDrawer) Syntax() *SyntaxNode { return p.n }

// GetToken returns the value token of the first NODE_PROPERTY whose key
// token equals key, and whether one was found (spec §4.3's "returns the
// token whose key token equals key").
func (p PropertyDrawer) GetToken(key string) (Token, bool) {
	for _, np := range p.n.ChildrenOfKind(NODE_PROPERTY) {
		if k := tokenOfKind(np, PROPERTY_KEY); !k.IsZero() && k.EqualString(key) {
			return tokenOfKind(np, PROPERTY_VALUE), true
		}
	}
	return Token{}, false
}

// Get is GetToken with the value flattened to its text.
func (p PropertyDrawer) Get(key string) (string, bool) {
	t, ok := p.GetToken(key)
	return t.String(), ok
}

// ToHashMap returns every key/value pair, last-wins on duplicate keys
// (spec §4.3's "to_hash_map keeps the last").
func (p PropertyDrawer) ToHashMap() map[string]string {
	out := map[string]string{}
	for _, np := range p.n.ChildrenOfKind(NODE_PROPERTY) {
		k := np.FirstTokenOfKind(PROPERTY_KEY)
		v := np.FirstTokenOfKind(PROPERTY_VALUE)
		if k == nil {
			continue
		}
		val := ""
		if v != nil {
			val = v.Text()
		}
		out[k.Text()] = val
	}
	return out
}

// IndexMapEntry is one key/value pair in first-seen order.
type IndexMapEntry struct{ Key, Value string }

// ToIndexMap returns every key/value pair in first-seen order, keeping
// the first occurrence of a duplicate key (spec §4.3's "to_index_map
// preserves first-seen order").
func (p PropertyDrawer) ToIndexMap() []IndexMapEntry {
	seen := map[string]bool{}
	var out []IndexMapEntry
	for _, np := range p.n.ChildrenOfKind(NODE_PROPERTY) {
		k := np.FirstTokenOfKind(PROPERTY_KEY)
		if k == nil || seen[k.Text()] {
			continue
		}
		seen[k.Text()] = true
		val := ""
		if v := np.FirstTokenOfKind(PROPERTY_VALUE); v != nil {
			val = v.Text()
		}
		out = append(out, IndexMapEntry{Key: k.Text(), Value: val})
	}
	return out
}

// List is a typed view over a LIST node.
type List struct{ n *SyntaxNode }

func CastList(n *SyntaxNode) (List, bool) {
	if n == nil || n.Kind() != LIST {
		return List{}, false
	}
	return List{n: n}, true
}

func (l List) Syntax() *SyntaxNode { return l.n }

// Items returns every direct LIST_ITEM child.
func (l List) Items() []*SyntaxNode { return l.n.ChildrenOfKind(LIST_ITEM) }

// IsOrdered reports whether the list's first item's bullet starts with a
// digit or letter rather than `+`/`*`/`-`.
func (l List) IsOrdered() bool {
	items := l.Items()
	if len(items) == 0 {
		return false
	}
	b := items[0].FirstTokenOfKind(LIST_BULLET)
	if b == nil {
		return false
	}
	text := strings.TrimLeft(b.Text(), " \t")
	return text != "" && text[0] != '+' && text[0] != '*' && text[0] != '-'
}

// Table is a typed view over a TABLE node.
type Table struct{ n *SyntaxNode }

func CastTable(n *SyntaxNode) (Table, bool) {
	if n == nil || n.Kind() != TABLE {
		return Table{}, false
	}
	return Table{n: n}, true
}

func (t Table) Syntax() *SyntaxNode { return t.n }

// Rows returns every direct TABLE_ROW child, including rule rows.
func (t Table) Rows() []*SyntaxNode { return t.n.ChildrenOfKind(TABLE_ROW) }

// Cells returns a row's direct TABLE_CELL children.
func (t Table) Cells(row *SyntaxNode) []*SyntaxNode { return row.ChildrenOfKind(TABLE_CELL) }

// IsRuleRow reports whether row is a `|---+---|` separator row rather
// than a content row.
func (t Table) IsRuleRow(row *SyntaxNode) bool {
	return row.FirstTokenOfKind(TABLE_RULE_MARKER) != nil
}

// Title returns the space-joined, trimmed text of every top-level
// #+TITLE keyword value (spec §4.3's "Document::title()"), grounded on
// original_source/src/ast/document.rs::Document::title.
func (d *Document) Title() string {
	var parts []string
	for _, kw := range d.Keywords() {
		name := kw.FirstTokenOfKind(KEYWORD_NAME)
		if name == nil || !strings.EqualFold(name.Text(), "TITLE") {
			continue
		}
		if v := kw.FirstTokenOfKind(KEYWORD_VALUE); v != nil {
			parts = append(parts, strings.TrimSpace(v.Text()))
		}
	}
	return strings.Join(parts, " ")
}

// Keywords returns the KEYWORD children of the document's top-level
// section (spec §4.3's "Document::keywords() = keyword children of the
// zeroth (top-level) section").
func (d *Document) Keywords() []*SyntaxNode {
	root := d.Root()
	section := root.FirstChildOfKind(SECTION)
	if section == nil {
		return nil
	}
	return section.ChildrenOfKind(KEYWORD)
}

// Properties returns the document's top-level PROPERTY_DRAWER, if any
// (spec §4.3's "Document::properties()"), resolving the open question in
// SPEC_FULL.md §9 in favor of the superset: the first PROPERTY_DRAWER
// child of the top-level section.
func (d *Document) Properties() (PropertyDrawer, bool) {
	root := d.Root()
	section := root.FirstChildOfKind(SECTION)
	if section == nil {
		return PropertyDrawer{}, false
	}
	return CastPropertyDrawer(section.FirstChildOfKind(PROPERTY_DRAWER))
}

// Headlines returns every top-level HEADLINE child of the document.
func (d *Document) Headlines() []Headline {
	var out []Headline
	for _, c := range d.Root().ChildrenOfKind(HEADLINE) {
		out = append(out, Headline{n: c})
	}
	return out
}
