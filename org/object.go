package org

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// objParser attempts to parse one inline object starting at s[0]. prev is
// the rune immediately before s in the enclosing run, or utf8.RuneError
// at the start of the run — parsers with pre-character rules (emphasis,
// sub/superscript) consult it, the rest ignore it. It returns the number
// of bytes consumed and the resulting green element, or (0, nil) if the
// candidate byte does not actually start a valid object — a backtracking
// signal, never an error (spec §4.1.3, §4.1.6).
type objParser func(s string, prev rune, cfg *Configuration) (consumed int, elem GreenElement)

// objectStarters maps the first byte of a run to the parsers worth trying,
// mirroring spec §4.1.3's "precomputed set of starters" and the teacher's
// byte-switch dispatcher (org/inline.go's parseInlineWithPos).
var objectStarters map[byte][]objParser

func init() {
	objectStarters = map[byte][]objParser{
		'*': {parseEmphasis},
		'/': {parseEmphasis},
		'_': {parseSubSuperscript, parseEmphasis},
		'+': {parseEmphasis},
		'~': {parseEmphasis},
		'=': {parseEmphasis},
		'[': {parseRegularLink, parseFootnoteReference, parseStatisticCookie, parseTimestampInactive},
		'<': {parseTarget, parseTimestampActive},
		'{': {parseMacro, parseCloze},
		'\\': {parseExplicitLineBreak, parseLatexEnvironment, parseLatexFragmentParen, parseEntity},
		'$': {parseLatexFragmentDollar},
		'^': {parseSubSuperscript},
		'@': {parseInlineExportSnippet},
		'c': {parseInlineCall},
		's': {parseInlineSrc},
		'\n': {parseLineBreak},
	}
}

// ParseObjects parses a run of inline text into a list of green
// TEXT/object elements (spec §4.1.3). It never fails: any byte that
// doesn't start a recognized object simply becomes (or extends) a literal
// TEXT run.
func ParseObjects(s string, cfg *Configuration) []GreenElement {
	var out []GreenElement
	previous, current := 0, 0
	for current < len(s) {
		parsers := objectStarters[s[current]]
		matched := false
		prev := utf8.RuneError
		if len(parsers) > 0 && current > 0 {
			prev, _ = utf8.DecodeLastRuneInString(s[:current])
		}
		for _, p := range parsers {
			consumed, elem := p(s[current:], prev, cfg)
			if consumed == 0 {
				continue
			}
			if current > previous {
				out = append(out, NewToken(TEXT, s[previous:current]))
			}
			if elem != nil {
				out = append(out, elem)
			}
			current += consumed
			previous = current
			matched = true
			break
		}
		if !matched {
			current++
		}
	}
	if previous < len(s) {
		out = append(out, NewToken(TEXT, s[previous:]))
	}
	return out
}

// ParseRawObjects is like ParseObjects but only recognizes line breaks,
// leaving everything else as literal text — used inside contexts (e.g.
// inline src/call bodies, latex fragment content) where no further object
// recursion is wanted (mirrors the teacher's parseRawInline, inline.go:197-222).
func ParseRawObjects(s string, cfg *Configuration) []GreenElement {
	var out []GreenElement
	previous, current := 0, 0
	for current < len(s) {
		if s[current] == '\n' {
			if current > previous {
				out = append(out, NewToken(TEXT, s[previous:current]))
			}
			out = append(out, NewToken(NEW_LINE, "\n"))
			current++
			previous = current
			continue
		}
		current++
	}
	if previous < len(s) {
		out = append(out, NewToken(TEXT, s[previous:]))
	}
	return out
}

func parseLineBreak(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	i := 0
	for i < len(s) && s[i] == '\n' {
		i++
	}
	if i == 0 {
		return 0, nil
	}
	return i, NewNode(LINE_BREAK, []GreenElement{NewToken(NEW_LINE, s[:i])})
}

func parseExplicitLineBreak(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	// `\\` followed by optional whitespace then a newline.
	if len(s) < 2 || s[0] != '\\' || s[1] != '\\' {
		return 0, nil
	}
	i := 2
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != '\n' {
		return 0, nil
	}
	i++
	return i, NewNode(LINE_BREAK, []GreenElement{NewToken(TEXT, s[:i])})
}

var entityTable = map[string]bool{
	"alpha": true, "beta": true, "gamma": true, "delta": true, "epsilon": true,
	"pi": true, "sigma": true, "omega": true, "infty": true, "ldots": true,
	"rightarrow": true, "leftarrow": true, "Rightarrow": true, "nbsp": true,
	"copy": true, "reg": true, "dagger": true, "hbar": true,
}

// parseEntity recognizes `\name` against the (static, externally-owned)
// entity table — spec §4.1.3: "backslash followed by a name from a
// built-in table -> ENTITY token; otherwise the backslash is literal
// text." The real table lives outside the core's scope (spec §1,
// "entity tables (treated as a static lookup map)"); entityTable here is
// the minimal stand-in the core consults.
func parseEntity(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if len(s) < 2 || s[0] != '\\' {
		return 0, nil
	}
	i := 1
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	if i == 1 {
		return 0, nil
	}
	name := s[1:i]
	if !entityTable[name] {
		return 0, nil
	}
	return i, NewNode(ENTITY, []GreenElement{NewToken(ENTITY_NAME, s[:i])})
}

// parseTarget recognizes a dedicated target `<<NAME>>` or a radio target
// `<<<NAME>>>` (spec §4.1.3's target/radio-target micro-grammars,
// orgize's ast::Target/RadioTarget): NAME is a single line free of angle
// brackets that neither starts nor ends with whitespace.
func parseTarget(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if !strings.HasPrefix(s, "<<") {
		return 0, nil
	}
	open, closeMark := "<<", ">>"
	kind := TARGET
	openKind, closeKind := L_ANGLE2, R_ANGLE2
	if strings.HasPrefix(s, "<<<") {
		open, closeMark = "<<<", ">>>"
		kind = RADIO_TARGET
		openKind, closeKind = L_ANGLE3, R_ANGLE3
	}
	rest := s[len(open):]
	end := strings.Index(rest, closeMark)
	if end <= 0 {
		return 0, nil
	}
	name := rest[:end]
	if strings.ContainsAny(name, "<>\n\r") || isSpace(name[0]) || isSpace(name[len(name)-1]) {
		return 0, nil
	}
	consumed := len(open) + end + len(closeMark)
	return consumed, NewNode(kind, []GreenElement{
		NewToken(openKind, open),
		NewToken(TARGET_TEXT, name),
		NewToken(closeKind, closeMark),
	})
}

func parseStatisticCookie(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if len(s) < 3 || s[0] != '[' {
		return 0, nil
	}
	i := 1
	for i < len(s) && (isDigit(s[i]) || s[i] == '/' || s[i] == '%') {
		i++
	}
	if i >= len(s) || s[i] != ']' {
		return 0, nil
	}
	inner := s[1:i]
	if !isValidCookie(inner) {
		return 0, nil
	}
	consumed := i + 1
	return consumed, NewNode(STATISTIC_COOKIE, []GreenElement{
		NewToken(L_BRACKET, "["),
		NewToken(COOKIE_CONTENT, inner),
		NewToken(R_BRACKET, "]"),
	})
}

func isValidCookie(inner string) bool {
	if strings.HasSuffix(inner, "%") {
		num := inner[:len(inner)-1]
		if num == "" {
			return false
		}
		for _, c := range num {
			if !unicode.IsDigit(c) {
				return false
			}
		}
		return true
	}
	parts := strings.SplitN(inner, "/", 2)
	if len(parts) != 2 {
		return false
	}
	for _, p := range parts {
		for _, c := range p {
			if !unicode.IsDigit(c) {
				return false
			}
		}
	}
	return true
}

func parseMacro(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if !strings.HasPrefix(s, "{{{") {
		return 0, nil
	}
	end := strings.Index(s, "}}}")
	if end == -1 {
		return 0, nil
	}
	inner := s[3:end]
	name, args := inner, ""
	hasArgs := false
	if idx := strings.IndexByte(inner, '('); idx != -1 && strings.HasSuffix(inner, ")") {
		name, args = inner[:idx], inner[idx+1:len(inner)-1]
		hasArgs = true
	}
	if name == "" || !isMacroName(name) {
		return 0, nil
	}
	consumed := end + 3
	children := []GreenElement{
		NewToken(L_BRACE3, "{{{"),
		NewToken(MACRO_NAME, name),
	}
	if hasArgs {
		children = append(children, NewToken(L_PAREN, "("))
		if args != "" {
			children = append(children, NewToken(MACRO_ARGS, args))
		}
		children = append(children, NewToken(R_PAREN, ")"))
	}
	children = append(children, NewToken(R_BRACE3, "}}}"))
	return consumed, NewNode(MACRO, children)
}

func isMacroName(s string) bool {
	if s == "" || !(isAlpha(s[0])) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlnum(s[i]) && s[i] != '-' && s[i] != '_' {
			return false
		}
	}
	return true
}

func parseInlineExportSnippet(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if len(s) < 2 || s[0] != '@' || s[1] != '@' {
		return 0, nil
	}
	rest := s[2:]
	colon := strings.IndexByte(rest, ':')
	if colon == -1 {
		return 0, nil
	}
	backend := rest[:colon]
	if backend == "" || !isMacroName(backend) {
		return 0, nil
	}
	end := strings.Index(rest[colon+1:], "@@")
	if end == -1 {
		return 0, nil
	}
	content := rest[colon+1 : colon+1+end]
	consumed := 2 + colon + 1 + end + 2
	children := []GreenElement{
		NewToken(AT2, "@@"),
		NewToken(SNIPPET_BACKEND, backend),
		NewToken(COLON, ":"),
	}
	if content != "" {
		children = append(children, NewToken(SNIPPET_CONTENT, content))
	}
	children = append(children, NewToken(AT2, "@@"))
	return consumed, NewNode(SNIPPET, children)
}

// parseInlineSrc recognizes `src_LANG[SWITCHES]{BODY}` only right after
// the literal prefix "src" (checked by the caller dispatch on 's'), per
// the teacher's parseInlineBlock (inline.go:239-254): it looks backward
// from the current position, so here we instead require the candidate
// substring itself to start with "src_".
func parseInlineSrc(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if !strings.HasPrefix(s, "src_") {
		return 0, nil
	}
	rest := s[4:]
	i := 0
	for i < len(rest) && (isAlnum(rest[i]) || rest[i] == '-') {
		i++
	}
	if i == 0 {
		return 0, nil
	}
	lang := rest[:i]
	rest = rest[i:]
	consumed := 4 + i
	children := []GreenElement{
		NewToken(INLINE_SRC_MARKER, "src_"),
		NewToken(INLINE_SRC_LANGUAGE, lang),
	}
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return 0, nil
		}
		children = append(children, NewToken(L_BRACKET, "["))
		if params := rest[1:end]; params != "" {
			children = append(children, NewToken(INLINE_SRC_PARAMETERS, params))
		}
		children = append(children, NewToken(R_BRACKET, "]"))
		rest = rest[end+1:]
		consumed += end + 1
	}
	if !strings.HasPrefix(rest, "{") {
		return 0, nil
	}
	end := strings.IndexByte(rest, '}')
	if end == -1 {
		return 0, nil
	}
	children = append(children, NewToken(L_BRACE, "{"))
	if body := rest[1:end]; body != "" {
		children = append(children, NewToken(INLINE_SRC_BODY, body))
	}
	children = append(children, NewToken(R_BRACE, "}"))
	consumed += end + 1
	return consumed, NewNode(INLINE_SRC, children)
}

// parseInlineCall recognizes `call_NAME[HEADER](ARGS)`.
func parseInlineCall(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if !strings.HasPrefix(s, "call_") {
		return 0, nil
	}
	rest := s[5:]
	i := 0
	for i < len(rest) && (isAlnum(rest[i]) || rest[i] == '-' || rest[i] == '_') {
		i++
	}
	if i == 0 {
		return 0, nil
	}
	name := rest[:i]
	rest = rest[i:]
	consumed := 5 + i
	children := []GreenElement{
		NewToken(INLINE_CALL_MARKER, "call_"),
		NewToken(INLINE_CALL_NAME, name),
	}
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return 0, nil
		}
		children = append(children, NewToken(L_BRACKET, "["))
		if header := rest[1:end]; header != "" {
			children = append(children, NewToken(INLINE_CALL_HEADER, header))
		}
		children = append(children, NewToken(R_BRACKET, "]"))
		rest = rest[end+1:]
		consumed += end + 1
	}
	if !strings.HasPrefix(rest, "(") {
		return 0, nil
	}
	end := strings.IndexByte(rest, ')')
	if end == -1 {
		return 0, nil
	}
	children = append(children, NewToken(L_PAREN, "("))
	if args := rest[1:end]; args != "" {
		children = append(children, NewToken(INLINE_CALL_ARGS, args))
	}
	children = append(children, NewToken(R_PAREN, ")"))
	consumed += end + 1
	return consumed, NewNode(INLINE_CALL, children)
}

// prevRuneIn/nextRuneAfter helpers shared by emphasis.go and
// subscript.go, grounded on the teacher's inline.go:542-561.
func prevRuneIn(s string, i int) rune {
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}

func nextRuneAfter(s string, i int) rune {
	_, size := utf8.DecodeRuneInString(s[i:])
	r, _ := utf8.DecodeRuneInString(s[i+size:])
	return r
}
