package org

import "strings"

// blockKinds maps a lowercased block type name to its green node kind.
var blockKinds = map[string]SyntaxKind{
	"src":     SOURCE_BLOCK,
	"example": EXAMPLE_BLOCK,
	"export":  EXPORT_BLOCK,
	"comment": COMMENT_BLOCK,
	"quote":   QUOTE_BLOCK,
	"center":  CENTER_BLOCK,
	"verse":   VERSE_BLOCK,
}

// parseBlock recognizes `#+begin_TYPE ...\n ... \n#+end_TYPE` (spec
// §4.1.2 rule 2), dispatching to one of the known block kinds, or to
// SPECIAL_BLOCK for any other TYPE name. Grounded on the teacher's
// lexBlock/parseBlock (referenced from document.go's lexFns/parseOne,
// bodies not present in the retrieved excerpt) and orgize's
// impl_content_border! pattern of locating
// BLOCK_BEGIN/BLOCK_CONTENT/BLOCK_END children
// (original_source/src/ast/block.rs). The begin/end markers are kept as
// source slices, never normalized — `#+BEGIN_SRC` stays uppercase in the
// tree even though matching is case-insensitive.
func parseBlock(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	line := lineContent(s, 0)
	indent := consumeSpaces(line)
	trimmed := line[indent:]
	if !strings.HasPrefix(strings.ToLower(trimmed), "#+begin_") {
		return 0, nil
	}
	beginLineEnd := lineEnd(s, 0)
	nameStart := len("#+begin_")
	nameEnd := nameStart
	for nameEnd < len(trimmed) && !isSpace(trimmed[nameEnd]) {
		nameEnd++
	}
	typeName := strings.ToLower(trimmed[nameStart:nameEnd])
	if typeName == "" {
		return 0, nil
	}
	endMarker := "#+end_" + typeName

	kind, known := blockKinds[typeName]
	if !known {
		kind = SPECIAL_BLOCK
	}

	contentStart := beginLineEnd
	off := contentStart
	endLineStart, endLineEnd := -1, -1
	for off < len(s) {
		l := strings.ToLower(strings.TrimLeft(lineContent(s, off), " \t"))
		if l == endMarker {
			endLineStart = off
			endLineEnd = lineEnd(s, off)
			break
		}
		off = lineEnd(s, off)
	}
	if endLineStart == -1 {
		if sink != nil {
			sink.add(DiagUnterminatedBlock, SeverityWarning, Position{Start: pos, End: pos + beginLineEnd},
				"block '"+typeName+"' has no matching #+end_"+typeName)
		}
		endLineStart = len(s)
		endLineEnd = len(s)
	}

	beginNode := NewNode(BLOCK_BEGIN, blockBeginChildren(s[:beginLineEnd], indent, nameEnd, kind))
	contentNode := NewNode(BLOCK_CONTENT, []GreenElement{NewToken(TEXT, s[contentStart:endLineStart])})
	var endNode GreenElement
	if endLineEnd > endLineStart {
		endNode = NewNode(BLOCK_END, []GreenElement{NewToken(BLOCK_END_MARKER, s[endLineStart:endLineEnd])})
	} else {
		endNode = NewNode(BLOCK_END, nil)
	}

	children := []GreenElement{beginNode, contentNode, endNode}
	return endLineEnd, NewNode(kind, children)
}

// blockBeginChildren splits the begin line into its marker, optional
// language/type, and the raw remainder, all as verbatim source slices.
func blockBeginChildren(beginLine string, indent, nameEnd int, kind SyntaxKind) []GreenElement {
	var children []GreenElement
	if indent > 0 {
		children = append(children, NewToken(WHITESPACE, beginLine[:indent]))
	}
	children = append(children, NewToken(BLOCK_BEGIN_MARKER, beginLine[indent:indent+nameEnd]))
	rest := beginLine[indent+nameEnd:]
	content := strings.TrimRight(rest, "\n\r")
	nl := rest[len(content):]
	if ws := content[:consumeSpaces(content)]; ws != "" {
		children = append(children, NewToken(WHITESPACE, ws))
		content = content[len(ws):]
	}
	if content != "" {
		switch kind {
		case SOURCE_BLOCK:
			i := 0
			for i < len(content) && !isSpace(content[i]) {
				i++
			}
			children = append(children, NewToken(SRC_BLOCK_LANGUAGE, content[:i]))
			if i < len(content) {
				ws := content[i : i+consumeSpaces(content[i:])]
				children = append(children, NewToken(WHITESPACE, ws))
				if params := content[i+len(ws):]; params != "" {
					children = append(children, NewToken(SRC_BLOCK_PARAMETERS, params))
				}
			}
		case EXPORT_BLOCK:
			children = append(children, NewToken(EXPORT_BLOCK_TYPE, content))
		default:
			children = append(children, NewToken(TEXT, content))
		}
	}
	if nl != "" {
		children = append(children, NewToken(NEW_LINE, nl))
	}
	return children
}
