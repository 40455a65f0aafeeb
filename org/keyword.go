package org

import "strings"

// tryParseAffiliatedKeyword recognizes a `#+NAME[OPT]: VALUE` line whose
// NAME (case-insensitively) is in cfg.AffiliatedKeywords (spec §4.1.5). It
// returns the AFFILIATED_KEYWORD green node and the bytes consumed
// (through and including the line's newline), or (nil, 0) if this line is
// not an affiliated keyword — in which case the caller falls through to
// parseKeyword for an ordinary `#+NAME: VALUE` KEYWORD node.
func tryParseAffiliatedKeyword(s string, cfg *Configuration) (GreenElement, int) {
	if cfg == nil || !strings.HasPrefix(s, "#+") {
		return nil, 0
	}
	end := lineEnd(s, 0)
	line := strings.TrimRight(s[:end], "\n\r")
	rest := line[2:]
	colon := strings.IndexByte(rest, ':')
	if colon == -1 {
		return nil, 0
	}
	nameAndOpt := rest[:colon]

	name, opt := nameAndOpt, ""
	hasOpt := false
	if idx := strings.IndexByte(nameAndOpt, '['); idx != -1 && strings.HasSuffix(nameAndOpt, "]") {
		name, opt = nameAndOpt[:idx], nameAndOpt[idx+1:len(nameAndOpt)-1]
		hasOpt = true
	}
	if !cfg.isAffiliatedKeyword(name) {
		return nil, 0
	}
	if hasOpt && !cfg.isDualKeyword(name) {
		return nil, 0
	}

	children := []GreenElement{
		NewToken(HASH_PLUS, "#+"),
		NewToken(KEYWORD_NAME, name),
	}
	if hasOpt {
		children = append(children, NewToken(L_BRACKET, "["))
		if opt != "" {
			children = append(children, NewToken(KEYWORD_OPTION, opt))
		}
		children = append(children, NewToken(R_BRACKET, "]"))
	}
	children = append(children, NewToken(COLON, ":"))
	children = appendKeywordValue(children, rest[colon+1:], cfg.isParsedKeyword(name), cfg)
	if nl := s[len(line):end]; nl != "" {
		children = append(children, NewToken(NEW_LINE, nl))
	}
	return NewNode(AFFILIATED_KEYWORD, children), end
}

// parseKeyword recognizes an ordinary `#+NAME: VALUE` line whose NAME is
// not in AffiliatedKeywords — a standalone KEYWORD node such as `#+TITLE:`
// or `#+OPTIONS:` (spec §4.1.2 rule 2).
func parseKeyword(s string, cfg *Configuration, sink *diagnosticSink, pos int) (int, GreenElement) {
	if !strings.HasPrefix(s, "#+") {
		return 0, nil
	}
	end := lineEnd(s, 0)
	line := strings.TrimRight(s[:end], "\n\r")
	rest := line[2:]
	colon := strings.IndexByte(rest, ':')
	if colon == -1 {
		return 0, nil
	}
	children := []GreenElement{
		NewToken(HASH_PLUS, "#+"),
		NewToken(KEYWORD_NAME, rest[:colon]),
		NewToken(COLON, ":"),
	}
	children = appendKeywordValue(children, rest[colon+1:], false, cfg)
	if nl := s[len(line):end]; nl != "" {
		children = append(children, NewToken(NEW_LINE, nl))
	}
	return end, NewNode(KEYWORD, children)
}

// appendKeywordValue emits a keyword line's value: leading whitespace as
// its own trivia leaf, then either a raw KEYWORD_VALUE token or (for
// parsed affiliated keywords, spec §6.1) the value reparsed as objects.
func appendKeywordValue(children []GreenElement, raw string, parsed bool, cfg *Configuration) []GreenElement {
	ws := raw[:consumeSpaces(raw)]
	if ws != "" {
		children = append(children, NewToken(WHITESPACE, ws))
	}
	value := raw[len(ws):]
	if value == "" {
		return children
	}
	if parsed {
		return append(children, ParseObjects(value, cfg)...)
	}
	return append(children, NewToken(KEYWORD_VALUE, value))
}
