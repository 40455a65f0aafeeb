package org

import "strings"

// parseDrawer recognizes `:NAME:\n ... \n:END:`, dispatching to
// PROPERTY_DRAWER when NAME case-insensitively equals PROPERTIES (spec
// §4.1.2 rule 3), parsing each interior `:KEY: VALUE` line as a
// NODE_PROPERTY, or to a generic DRAWER otherwise with unparsed TEXT
// content.
func parseDrawer(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	line := lineContent(s, 0)
	indent := consumeSpaces(line)
	trimmed := line[indent:]
	if len(trimmed) < 2 || trimmed[0] != ':' {
		return 0, nil
	}
	end := strings.IndexByte(trimmed[1:], ':')
	if end == -1 {
		return 0, nil
	}
	name := trimmed[1 : 1+end]
	if name == "" || strings.ContainsAny(name, " \t") {
		return 0, nil
	}
	if strings.TrimSpace(trimmed[1+end+1:]) != "" {
		return 0, nil
	}
	beginLineEnd := lineEnd(s, 0)

	off := beginLineEnd
	endLineStart, endLineEnd := -1, -1
	for off < len(s) {
		l := strings.ToUpper(strings.TrimLeft(lineContent(s, off), " \t"))
		if l == ":END:" {
			endLineStart = off
			endLineEnd = lineEnd(s, off)
			break
		}
		off = lineEnd(s, off)
	}
	if endLineStart == -1 {
		if sink != nil {
			sink.add(DiagUnterminatedDrawer, SeverityWarning, Position{Start: pos, End: pos + beginLineEnd},
				"drawer '"+name+"' has no matching :END:")
		}
		endLineStart, endLineEnd = len(s), len(s)
	}

	isProperties := strings.EqualFold(name, "PROPERTIES")
	kind := DRAWER
	if isProperties {
		kind = PROPERTY_DRAWER
	}

	var children []GreenElement
	if indent > 0 {
		children = append(children, NewToken(WHITESPACE, line[:indent]))
	}
	children = append(children, NewToken(DRAWER_NAME, trimmed[:1+end+1]))
	tail := s[indent+1+end+1 : beginLineEnd]
	tailWS := strings.TrimRight(tail, "\n\r")
	if tailWS != "" {
		children = append(children, NewToken(WHITESPACE, tailWS))
	}
	if nl := tail[len(tailWS):]; nl != "" {
		children = append(children, NewToken(NEW_LINE, nl))
	}

	if isProperties {
		children = append(children, parseNodeProperties(s[beginLineEnd:endLineStart])...)
	} else if endLineStart > beginLineEnd {
		children = append(children, NewToken(TEXT, s[beginLineEnd:endLineStart]))
	}
	if endLineEnd > endLineStart {
		children = append(children, NewToken(DRAWER_END_MARKER, s[endLineStart:endLineEnd]))
	}
	return endLineEnd, NewNode(kind, children)
}

// parseNodeProperties parses the interior of a PROPERTY_DRAWER, one
// `:KEY: VALUE` line per NODE_PROPERTY. Every byte of each line survives
// as a leaf: indent, both colons, the separating space, the value, and
// the newline.
func parseNodeProperties(body string) []GreenElement {
	var out []GreenElement
	off := 0
	for off < len(body) {
		end := lineEnd(body, off)
		line := lineContent(body, off)
		indent := consumeSpaces(line)
		trimmed := line[indent:]
		if np, ok := parseOneNodeProperty(body[off:end], line, indent, trimmed); ok {
			out = append(out, np)
			off = end
			continue
		}
		if strings.TrimSpace(line) != "" {
			out = append(out, NewToken(TEXT, body[off:end]))
		} else {
			out = append(out, NewToken(BLANK_LINE, body[off:end]))
		}
		off = end
	}
	return out
}

func parseOneNodeProperty(full, line string, indent int, trimmed string) (GreenElement, bool) {
	if len(trimmed) < 2 || trimmed[0] != ':' {
		return nil, false
	}
	keyEnd := strings.IndexByte(trimmed[1:], ':')
	if keyEnd == -1 {
		return nil, false
	}
	key := trimmed[1 : 1+keyEnd]
	if key == "" || strings.ContainsAny(key, " \t") {
		return nil, false
	}
	var children []GreenElement
	if indent > 0 {
		children = append(children, NewToken(WHITESPACE, line[:indent]))
	}
	children = append(children,
		NewToken(COLON, ":"),
		NewToken(PROPERTY_KEY, key),
		NewToken(COLON, ":"),
	)
	rest := trimmed[1+keyEnd+1:]
	ws := rest[:consumeSpaces(rest)]
	if ws != "" {
		children = append(children, NewToken(WHITESPACE, ws))
	}
	if value := rest[len(ws):]; value != "" {
		children = append(children, NewToken(PROPERTY_VALUE, value))
	}
	if nl := full[len(line):]; nl != "" {
		children = append(children, NewToken(NEW_LINE, nl))
	}
	return NewNode(NODE_PROPERTY, children), true
}
