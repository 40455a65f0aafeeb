package org

import "strings"

// elemParser attempts to parse one element starting at a line boundary in
// s. It returns the number of bytes consumed (always ending at a line
// boundary unless mid-paragraph, spec §4.1.1) and the resulting green
// element, or (0, nil) if this line does not start the kind of element it
// recognizes.
type elemParser func(s string, cfg *Configuration, sink *diagnosticSink, pos int) (consumed int, elem GreenElement)

// parseElements parses a maximal run of block-level elements, following
// the fixed dispatch order of spec §4.1.2. It never fails: any line that
// matches nothing specific becomes (or extends) a paragraph, mirroring the
// teacher's parseMany/parseOne driver (document.go:265-317) generalized
// from a line-token stream to a byte cursor.
//
// Any content preceding the document's first headline is wrapped in its
// own SECTION child, mirroring parseHeadline's own section-building loop
// below and orgize's document root shape, whose first child is a SECTION
// iff there is pre-headline content (original_source/src/ast/document.rs:
// Document::keywords filters the root's first_child on SyntaxKind::SECTION).
func parseElements(text string, cfg *Configuration, sink *diagnosticSink, baseOffset int) []GreenElement {
	var out []GreenElement
	pos := 0
	if consumed, sec := parseSectionContent(text, cfg, sink, baseOffset); consumed > 0 {
		out = append(out, NewNode(SECTION, sec))
		pos = consumed
	}
	for pos < len(text) {
		consumed, hl := parseHeadline(text[pos:], cfg, sink, baseOffset+pos)
		out = append(out, hl)
		pos += consumed
	}
	return out
}

// parseSectionContent parses a maximal run of non-headline elements — the
// contents of one SECTION — stopping at the first headline-start line or
// end of input. Consecutive affiliated-keyword lines are held back and
// attached as prefix children of the next element (spec §4.1.5); when a
// blank line, a headline, or end of input follows instead, they degrade
// to paragraphs and a diagnostic is recorded.
func parseSectionContent(text string, cfg *Configuration, sink *diagnosticSink, baseOffset int) (int, []GreenElement) {
	var children []GreenElement
	pos := 0
	var pendingAffiliated []GreenElement
	pendingStart := 0

	degradeAffiliated := func() {
		for _, kw := range pendingAffiliated {
			raw := kw.(*GreenNode).Text()
			children = append(children, NewNode(PARAGRAPH, ParseObjects(raw, cfg)))
		}
		if len(pendingAffiliated) > 0 && sink != nil {
			sink.add(DiagOrphanAffiliatedKeyword, SeverityWarning,
				Position{Start: baseOffset + pendingStart, End: baseOffset + pos},
				"affiliated keyword attaches to no element")
		}
		pendingAffiliated = nil
	}

	for pos < len(text) {
		if _, ok := headlineLevelAt(text[pos:]); ok {
			break
		}

		if blanks, next := consumeBlankLines(text, pos); len(blanks) > 0 {
			degradeAffiliated()
			children = append(children, blanks...)
			pos = next
			continue
		}

		if kw, consumed := tryParseAffiliatedKeyword(text[pos:], cfg); consumed > 0 {
			if len(pendingAffiliated) == 0 {
				pendingStart = pos
			}
			pendingAffiliated = append(pendingAffiliated, kw)
			pos += consumed
			continue
		}

		consumed, elem := parseOneElement(text[pos:], cfg, sink, baseOffset+pos)
		if len(pendingAffiliated) > 0 {
			node := elem.(*GreenNode)
			elem = NewNode(node.kind, append(append([]GreenElement{}, pendingAffiliated...), node.children...))
			pendingAffiliated = nil
		}
		children = append(children, elem)
		pos += consumed
	}
	degradeAffiliated()
	return pos, children
}

// elementDispatch lists the non-headline element parsers in the fixed
// order parseOneElement tries them (headlines and affiliated keywords are
// handled by parseSectionContent, since they need lookahead/attachment
// logic that doesn't fit the simple elemParser shape).
var elementDispatch []elemParser

func init() {
	elementDispatch = []elemParser{
		parseDrawer,
		parseFootnoteDefinitionElement,
		parseRule,
		parseBlock,
		parseTable,
		parseList,
		parseClock,
		parseKeyword,
		parseComment,
		parseFixedWidth,
	}
}

func parseOneElement(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	for _, p := range elementDispatch {
		if consumed, elem := p(s, cfg, sink, pos); consumed > 0 {
			return consumed, elem
		}
	}
	return parseParagraph(s, cfg, sink, pos)
}

// headlineLevelAt reports the star count of a headline-start line at s[0:]
// (spec §4.1.2 rule 1, §4.1.4's STARS), or ok=false if s does not start a
// headline.
func headlineLevelAt(s string) (level int, ok bool) {
	i := 0
	for i < len(s) && s[i] == '*' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	if i >= len(s) || s[i] != ' ' {
		return 0, false
	}
	return i, true
}

// parseRule recognizes a line of five or more dashes alone (spec §4.1.2
// rule 5).
func parseRule(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	end := lineEnd(s, 0)
	line := lineContent(s, 0)
	trimmed := strings.TrimRight(line, " \t")
	if len(trimmed) < 5 {
		return 0, nil
	}
	for _, c := range trimmed {
		if c != '-' {
			return 0, nil
		}
	}
	return end, NewNode(RULE, []GreenElement{NewToken(RULE_DASHES, s[:end])})
}

// parseComment recognizes a line beginning with `# ` or exactly `#`,
// distinct from `#+` keyword lines.
func parseComment(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	line := lineContent(s, 0)
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed != "#" && !strings.HasPrefix(trimmed, "# ") {
		return 0, nil
	}
	end := lineEnd(s, 0)
	return end, NewNode(COMMENT, []GreenElement{NewToken(TEXT, s[:end])})
}

// parseFixedWidth recognizes an indented `: ` line (spec §4.1.2 rule 6).
func parseFixedWidth(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	line := lineContent(s, 0)
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed != ":" && !strings.HasPrefix(trimmed, ": ") {
		return 0, nil
	}
	end := lineEnd(s, 0)
	return end, NewNode(FIXED_WIDTH, []GreenElement{NewToken(TEXT, s[:end])})
}

// parseClock recognizes a `CLOCK:` line (spec §4.1.2 rule 9).
func parseClock(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	line := lineContent(s, 0)
	indent := consumeSpaces(line)
	if !strings.HasPrefix(line[indent:], "CLOCK:") {
		return 0, nil
	}
	end := lineEnd(s, 0)
	var children []GreenElement
	if indent > 0 {
		children = append(children, NewToken(WHITESPACE, line[:indent]))
	}
	children = append(children, NewToken(CLOCK_KEYWORD, "CLOCK:"))
	rest := s[indent+len("CLOCK:") : end]
	content := strings.TrimRight(rest, "\n\r")
	if content != "" {
		children = append(children, ParseObjects(content, cfg)...)
	}
	if nl := rest[len(content):]; nl != "" {
		children = append(children, NewToken(NEW_LINE, nl))
	}
	return end, NewNode(CLOCK, children)
}

// planningKeywords are the headline-planning line keywords (spec §4.1.4's
// "[PLANNING]").
var planningKeywords = []string{"SCHEDULED", "DEADLINE", "CLOSED"}

// parsePlanning recognizes a line consisting of one or more
// `KEYWORD: <timestamp>` pairs, grounded on org-mode's planning line
// syntax that follows a headline. Only parseHeadline calls it; a stray
// planning-looking line elsewhere is just a paragraph.
func parsePlanning(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	line := lineContent(s, 0)
	trimmed := strings.TrimLeft(line, " \t")
	matched := false
	for _, kw := range planningKeywords {
		if strings.HasPrefix(trimmed, kw+":") {
			matched = true
			break
		}
	}
	if !matched {
		return 0, nil
	}
	end := lineEnd(s, 0)
	content := strings.TrimRight(s[:end], "\n\r")
	children := ParseObjects(content, cfg)
	if nl := s[len(content):end]; nl != "" {
		children = append(children, NewToken(NEW_LINE, nl))
	}
	return end, NewNode(PLANNING, children)
}

// parseParagraph accumulates lines as objects until an element-terminating
// line (blank line, headline, or any line the dispatcher would otherwise
// claim), mirroring the teacher's parseParagraph invoked as the fallback
// arm of parseOne (document.go:279-283).
func parseParagraph(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	off := 0
	for off < len(s) {
		end := lineEnd(s, off)
		content := lineContent(s, off)
		if strings.TrimSpace(content) == "" {
			break
		}
		if _, ok := headlineLevelAt(s[off:]); ok {
			break
		}
		if off > 0 && terminatesParagraph(s[off:], cfg) {
			break
		}
		off = end
	}
	if off == 0 {
		end := lineEnd(s, 0)
		if end == 0 {
			end = 1
		}
		return end, NewNode(PARAGRAPH, ParseObjects(s[:end], cfg))
	}
	return off, NewNode(PARAGRAPH, ParseObjects(s[:off], cfg))
}

// terminatesParagraph reports whether the line at s[0:] would be claimed
// by a higher-priority element parser, and therefore ends a paragraph that
// was accumulating plain lines before it.
func terminatesParagraph(s string, cfg *Configuration) bool {
	for _, p := range elementDispatch {
		if c, _ := p(s, cfg, nil, 0); c > 0 {
			return true
		}
	}
	if _, n := tryParseAffiliatedKeyword(s, cfg); n > 0 {
		return true
	}
	return false
}
