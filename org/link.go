package org

import "strings"

// parseRegularLink recognizes `[[LINK]]` or `[[LINK][DESCRIPTION]]`,
// grounded on the teacher's parseRegularLinkWithPos (inline.go:451-479).
// Unlike the teacher, which calls out to a user-supplied ResolveLink hook
// to classify the link's protocol, the CST stores the raw path verbatim
// and leaves classification to the typed AST overlay (ast.go).
func parseRegularLink(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if len(s) < 5 || s[0] != '[' || s[1] != '[' {
		return 0, nil
	}
	end := strings.Index(s, "]]")
	if end == -1 {
		return 0, nil
	}
	inner := s[2:end]
	parts := strings.SplitN(inner, "][", 2)
	path := parts[0]
	if strings.ContainsRune(path, '\n') || path == "" {
		return 0, nil
	}
	children := []GreenElement{
		NewToken(L_BRACKET2, "[["),
		NewToken(LINK_PATH, path),
	}
	consumed := end + 2
	if len(parts) == 2 {
		descChildren := ParseObjects(parts[1], cfg)
		children = append(children, NewToken(LINK_DESC_MARKER, "]["))
		children = append(children, NewNode(LINK_DESCRIPTION, descChildren))
	}
	children = append(children, NewToken(R_BRACKET2, "]]"))
	return consumed, NewNode(LINK, children)
}

// parseFootnoteReference recognizes `[fn:NAME]` or `[fn:NAME:DEFINITION]`
// or the anonymous `[fn::DEFINITION]` form, grounded on the teacher's
// parseFootnoteReferenceWithPos (inline.go:383-399) and footnoteRegexp.
func parseFootnoteReference(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if len(s) < 5 || s[0] != '[' || !strings.HasPrefix(s[1:], "fn:") {
		return 0, nil
	}
	rest := s[4:]
	end := strings.IndexByte(rest, ']')
	if end == -1 {
		return 0, nil
	}
	body := rest[:end]
	if strings.ContainsAny(body, "\n[") {
		return 0, nil
	}
	name, definition := body, ""
	hasColon := false
	if idx := strings.IndexByte(body, ':'); idx != -1 {
		name, definition = body[:idx], body[idx+1:]
		hasColon = true
	}
	if name == "" && definition == "" {
		return 0, nil
	}
	consumed := 4 + end + 1
	children := []GreenElement{
		NewToken(L_BRACKET, "["),
		NewToken(FN_LABEL, "fn:"+name),
	}
	if hasColon {
		children = append(children, NewToken(COLON, ":"))
	}
	if definition != "" {
		defChildren := ParseObjects(definition, cfg)
		children = append(children, NewNode(FN_DEF, defChildren))
	}
	children = append(children, NewToken(R_BRACKET, "]"))
	return consumed, NewNode(FOOTNOTE_REFERENCE, children)
}
