package org

import (
	"regexp"
	"strings"
	"unicode"
)

// listBulletRegexp recognizes any list item's leading indent and bullet,
// grounded on the teacher's unorderedListRegexp/orderedListRegexp
// (list.go:53-54), generalized into one pattern since the CST only needs
// to know "is this a list item, and at what indent" before handing the
// rest of the line to object parsing.
var listBulletRegexp = regexp.MustCompile(`^( *)([+*-]|[0-9]+[.)]|[a-zA-Z][.)])( |$)`)

// descriptiveListItemRegexp finds the ` :: ` term/details separator,
// grounded on the teacher's descriptiveListItemRegexp (list.go:55).
var descriptiveListItemRegexp = regexp.MustCompile(` :: ?`)

// checkboxRegexp recognizes a `[ ]`/`[X]`/`[-]` checkbox immediately
// following the bullet, grounded on the teacher's listItemStatusRegexp
// (list.go:57).
var checkboxRegexp = regexp.MustCompile(`^\[([ X-])\] ?`)

// counterSetRegexp recognizes a `[@N]` counter-set cookie, grounded on the
// teacher's listItemValueRegexp (list.go:56).
var counterSetRegexp = regexp.MustCompile(`^\[@(\w+)\] ?`)

func listIndentAndBullet(s string) (indent int, bullet string, isOrdered bool, rest string, ok bool) {
	m := listBulletRegexp.FindStringSubmatchIndex(s)
	if m == nil {
		return 0, "", false, "", false
	}
	indent = m[3] - m[2]
	bullet = s[m[4]:m[5]]
	isOrdered = unicode.IsLetter(rune(bullet[0])) || unicode.IsDigit(rune(bullet[0]))
	rest = s[m[1]:]
	return indent, bullet, isOrdered, rest, true
}

// parseList consumes a maximal run of sibling list items at the same
// indent and ordered/unordered kind, grounded on the teacher's parseList
// (list.go:88-111), generalized from a flat token stream to byte ranges.
func parseList(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	indent, _, isOrdered, _, ok := listIndentAndBullet(s)
	if !ok {
		return 0, nil
	}
	off := 0
	var items []GreenElement
	for off < len(s) {
		lineIndent, _, lineOrdered, _, itemOK := listIndentAndBullet(s[off:])
		if !itemOK || lineIndent != indent || lineOrdered != isOrdered {
			break
		}
		consumed, item := parseListItem(s[off:], indent, cfg, sink, pos+off)
		if consumed == 0 {
			break
		}
		items = append(items, item)
		off += consumed
	}
	if off == 0 {
		return 0, nil
	}
	return off, NewNode(LIST, items)
}

// parseListItem consumes one list item: its bullet, optional counter-set
// cookie, optional checkbox, and its body (everything indented further
// than the bullet, up to the next sibling item or a line that de-indents
// past minIndent), grounded on the teacher's parseListItem (list.go:
// 113-168).
func parseListItem(s string, parentIndent int, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	indent, _, _, rest, ok := listIndentAndBullet(s)
	if !ok || indent != parentIndent {
		return 0, nil
	}
	firstLineEnd := lineEnd(s, 0)
	prefixLen := len(s) - len(rest)
	minIndent := prefixLen

	children := []GreenElement{NewToken(LIST_BULLET, s[:prefixLen])}

	body := rest
	if m := counterSetRegexp.FindStringSubmatchIndex(body); m != nil {
		children = append(children, NewToken(LIST_COUNTER_SET, body[:m[1]]))
		body = body[m[1]:]
		minIndent += m[1]
	}
	if m := checkboxRegexp.FindStringSubmatchIndex(body); m != nil {
		children = append(children, NewToken(LIST_CHECKBOX, body[:m[1]]))
		body = body[m[1]:]
		minIndent += m[1]
	}

	// body starts at absolute offset minIndent within s and runs to the
	// end of s, not just to the end of the first line (the bullet/
	// counter-set/checkbox regexps are only anchored at the start), so
	// the first line's own tail has to be cut out of it explicitly. Its
	// trailing newline is kept, not trimmed, matching how parseParagraph
	// hands its own line span (newline included) to ParseObjects.
	rawFirstLine := body[:firstLineEnd-minIndent]
	restOfDoc := s[firstLineEnd:]

	isDescriptive := false
	var term, marker, detail string
	if loc := descriptiveListItemRegexp.FindStringIndex(rawFirstLine); loc != nil {
		isDescriptive = true
		term = rawFirstLine[:loc[0]]
		marker = rawFirstLine[loc[0]:loc[1]]
		detail = rawFirstLine[loc[1]:]
	}

	bodyText := rawFirstLine
	if isDescriptive {
		bodyText = detail
	}

	// The item's body is bounded first: every line at or past minIndent,
	// or blank, up to the first line that de-indents below minIndent or
	// starts a sibling item at parentIndent. Unlike the rest of an
	// indented line, the body is never re-anchored to column 0 before
	// being parsed — every element dispatcher here already tolerates
	// (and TrimLeft's past) its own leading indentation while still
	// returning the line's untouched source text, so feeding it a
	// shorter, dedented copy would only throw away the very bytes
	// (the leading whitespace) that have to survive for the tree to
	// round-trip. Bounding the span first, rather than checking one
	// line at a time between parseOneElement calls, keeps a nested
	// parser like parseList from ever seeing a later, still-indented
	// sibling line as if it sat at the same column as a nested one.
	blockEnd := 0
	for blockEnd < len(restOfDoc) {
		if blanks, next := consumeBlankLines(restOfDoc, blockEnd); len(blanks) > 0 {
			blockEnd = next
			continue
		}
		lineIndentHere := lineIndentOf(restOfDoc[blockEnd:])
		if lineIndentHere < minIndent {
			break
		}
		if _, _, _, _, siblingOK := listIndentAndBullet(restOfDoc[blockEnd:]); siblingOK && lineIndentHere == parentIndent {
			break
		}
		blockEnd = lineEnd(restOfDoc, blockEnd)
	}

	consumed := firstLineEnd + blockEnd
	var restBody []GreenElement
	off := 0
	for off < blockEnd {
		if blanks, next := consumeBlankLines(restOfDoc, off); len(blanks) > 0 {
			restBody = append(restBody, blanks...)
			off = next
			continue
		}
		c, elem := parseOneElement(restOfDoc[off:blockEnd], cfg, sink, pos+firstLineEnd+off)
		if c == 0 {
			break
		}
		restBody = append(restBody, elem)
		off += c
	}

	bodyObjects := ParseObjects(bodyText, cfg)
	if isDescriptive {
		if term != "" {
			children = append(children, NewNode(PARAGRAPH, ParseObjects(term, cfg)))
		}
		children = append(children, NewToken(LIST_TAG_MARKER, marker))
		if len(bodyObjects) > 0 {
			children = append(children, NewNode(PARAGRAPH, bodyObjects))
		}
	} else if len(bodyObjects) > 0 {
		children = append(children, NewNode(PARAGRAPH, bodyObjects))
	}
	children = append(children, restBody...)

	return consumed, NewNode(LIST_ITEM, children)
}

// lineIndentOf returns the count of leading space/tab bytes on the first
// line of s, or a large sentinel if that line is blank (a lone blank line
// never terminates a list item body by itself; consumeBlankLines is
// always tried first by the caller).
func lineIndentOf(s string) int {
	line := lineContent(s, 0)
	if strings.TrimSpace(line) == "" {
		return 1 << 30
	}
	return consumeSpaces(line)
}

