package org

import "strings"

// parseFootnoteDefinitionElement recognizes the `[fn:LABEL]` line that
// opens a standalone footnote definition (spec §4.1.2 rule 4), grounded
// on the teacher's footnoteDefinitionRegexp (footnote.go:15), generalized
// from a regexp-per-line lexer token into a byte-range element parser.
// Definitions are anchored at column 0 like in org-mode proper.
func parseFootnoteDefinitionElement(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	if !strings.HasPrefix(s, "[fn:") {
		return 0, nil
	}
	line := lineContent(s, 0)
	close := strings.IndexByte(line, ']')
	if close == -1 {
		return 0, nil
	}
	label := line[len("[fn:"):close]
	if label == "" || strings.ContainsAny(label, " \t[]") {
		return 0, nil
	}
	firstLineEnd := lineEnd(s, 0)

	children := []GreenElement{NewToken(FN_LABEL, s[:close+1])}

	restOfDoc := s[firstLineEnd:]
	var bodyChildren []GreenElement
	off := 0
	for off < len(restOfDoc) {
		if blanks, next := consumeBlankLines(restOfDoc, off); len(blanks) > 0 {
			if _, ok := nextNonBlankStartsNewDefinition(restOfDoc, next); ok {
				break
			}
			bodyChildren = append(bodyChildren, blanks...)
			off = next
			continue
		}
		if _, ok := headlineLevelAt(restOfDoc[off:]); ok {
			break
		}
		rest := restOfDoc[off:]
		if strings.HasPrefix(lineContent(rest, 0), "[fn:") {
			break
		}
		c, elem := parseOneElement(rest, cfg, sink, pos+firstLineEnd+off)
		if c == 0 {
			break
		}
		bodyChildren = append(bodyChildren, elem)
		off += c
	}

	// The remainder of the label line, newline included, is the first
	// paragraph of the definition body.
	if firstRest := s[close+1 : firstLineEnd]; firstRest != "" {
		para := NewNode(PARAGRAPH, ParseObjects(firstRest, cfg))
		bodyChildren = append([]GreenElement{para}, bodyChildren...)
	}
	children = append(children, bodyChildren...)

	return firstLineEnd + off, NewNode(FN_DEF, children)
}

// nextNonBlankStartsNewDefinition peeks past a blank-line run to decide
// whether the next non-blank line begins a sibling footnote definition or
// a headline, which would end the current one (blank lines inside a
// footnote definition's body are otherwise part of it).
func nextNonBlankStartsNewDefinition(s string, off int) (int, bool) {
	if off >= len(s) {
		return off, false
	}
	if _, ok := headlineLevelAt(s[off:]); ok {
		return off, true
	}
	return off, strings.HasPrefix(lineContent(s, off), "[fn:")
}
