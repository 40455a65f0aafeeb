package org

import "strings"

// parseTable consumes a maximal run of `|`-delimited lines (spec §4.1.2
// rule 8), producing one TABLE_ROW per line and a bare TABLE_RULE_MARKER
// row for a `|---+---|` separator line, grounded on orgize's table
// grammar (original_source/src/ast/table.rs) for the separator-row
// convention; the teacher has no table support to ground the row/cell
// split on, so the `|`-splitting itself follows plain org-mode syntax.
func parseTable(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	if !isTableRow(s) {
		return 0, nil
	}
	off := 0
	var rows []GreenElement
	for off < len(s) && isTableRow(s[off:]) {
		end := lineEnd(s, off)
		rows = append(rows, parseTableRow(s[off:end], cfg))
		off = end
	}
	return off, NewNode(TABLE, rows)
}

func isTableRow(s string) bool {
	line := strings.TrimLeft(lineContent(s, 0), " \t")
	return strings.HasPrefix(line, "|")
}

// parseTableRow parses one line, either a rule row (every cell is dashes,
// optionally with `+` joints) or a content row whose cells are parsed as
// objects. Cell padding stays inside the TABLE_CELL node as literal text
// so the row reproduces its source exactly.
func parseTableRow(line string, cfg *Configuration) GreenElement {
	trimmed := strings.TrimRight(line, "\n\r")
	nl := line[len(trimmed):]
	indent := consumeSpaces(trimmed)
	body := trimmed[indent:]

	var children []GreenElement
	if indent > 0 {
		children = append(children, NewToken(WHITESPACE, trimmed[:indent]))
	}

	if isTableRuleRow(body) {
		children = append(children, NewToken(TABLE_RULE_MARKER, body))
	} else {
		i := 0
		for i < len(body) {
			if body[i] == '|' {
				children = append(children, NewToken(TABLE_PIPE, "|"))
				i++
				continue
			}
			j := strings.IndexByte(body[i:], '|')
			if j == -1 {
				j = len(body) - i
			}
			cell := body[i : i+j]
			children = append(children, NewNode(TABLE_CELL, ParseObjects(cell, cfg)))
			i += j
		}
	}
	if nl != "" {
		children = append(children, NewToken(NEW_LINE, nl))
	}
	return NewNode(TABLE_ROW, children)
}

func isTableRuleRow(body string) bool {
	if body == "" {
		return false
	}
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '|', '-', '+':
		default:
			return false
		}
	}
	return true
}
