package org

import "strings"

// cursor.go holds the byte-level line and whitespace scanners every
// element and object parser builds on (spec §4.1.1). Parsers pass plain
// string slices plus absolute offsets; slicing a Go string is O(1) and
// shares the backing array, so consumed-length bookkeeping stays cheap.

// lineStartsIter enumerates every byte offset that is a line start: 0, or
// any position immediately following `\n` or `\r` (spec §4.1.1). A `\r\n`
// pair counts as one line end, so the offset between its two bytes is not
// listed, and neither is an offset equal to len(text).
func lineStartsIter(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			if i+1 < len(text) {
				starts = append(starts, i+1)
			}
		case '\r':
			if i+1 < len(text) && text[i+1] != '\n' {
				starts = append(starts, i+1)
			} else if i+1 < len(text) && text[i+1] == '\n' && i+2 < len(text) {
				starts = append(starts, i+2)
			}
		}
	}
	return starts
}

// lineEnd returns the offset just past the end of the line starting at
// start, including its terminating newline sequence if any (i.e. the
// start of the next line, or len(text) if start is the last line).
func lineEnd(text string, start int) int {
	i := start
	for i < len(text) && text[i] != '\n' && text[i] != '\r' {
		i++
	}
	if i >= len(text) {
		return i
	}
	if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
		return i + 2
	}
	return i + 1
}

// lineContent returns the line starting at start, excluding its
// terminating newline sequence.
func lineContent(text string, start int) string {
	end := lineEnd(text, start)
	for end > start && (text[end-1] == '\n' || text[end-1] == '\r') {
		end--
	}
	return text[start:end]
}

// isBlankLine reports whether the line starting at start consists only of
// horizontal whitespace (spec §4.1.1: blank_lines consumes "whitespace-only
// lines").
func isBlankLine(text string, start int) bool {
	return strings.TrimLeft(lineContent(text, start), " \t") == ""
}

// consumeBlankLines consumes zero or more whitespace-only lines starting
// at offset off within text, returning the green BLANK_LINE tokens (one
// per blank line, newline included) and the offset just past them.
func consumeBlankLines(text string, off int) (tokens []GreenElement, next int) {
	for off < len(text) && isBlankLine(text, off) {
		end := lineEnd(text, off)
		tokens = append(tokens, NewToken(BLANK_LINE, text[off:end]))
		off = end
	}
	return tokens, off
}

// isSpace reports whether b is a horizontal-whitespace byte.
func isSpace(b byte) bool { return b == ' ' || b == '\t' }

// consumeSpaces returns the count of leading space/tab bytes in s.
func consumeSpaces(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// isDigit/isAlnum are small byte-class predicates used throughout the
// object/element parsers (spec §4.1.3's "byte-class predicates ... in one
// table", §9 design note).
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
func isAlnum(b byte) bool { return isDigit(b) || isAlpha(b) }
