package org

import "strings"

// latexPairs mirrors the teacher's latexFragmentPairs (inline.go:131-136).
var latexPairs = map[string]string{
	`\(`: `\)`,
	`\[`: `\]`,
	`$$`: `$$`,
	`$`:  `$`,
}

// parseLatexFragmentParen recognizes `\(...\)` and `\[...\]`, grounded on
// the teacher's parseLatexFragmentWithPos called from the `\\` case with
// pairLength 2 (inline.go:284-285, 304-320).
func parseLatexFragmentParen(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if len(s) < 4 || s[0] != '\\' || (s[1] != '(' && s[1] != '[') {
		return 0, nil
	}
	if n, env := parseLatexEnvironment(s, prev, cfg); n > 0 {
		return n, env
	}
	return parseLatexFragmentPair(s, 2, cfg)
}

// parseLatexFragmentDollar recognizes `$...$` and `$$...$$`, grounded on
// the teacher's parseLatexFragmentWithPos called from the `$` case with
// pairLength 1 (inline.go:167-168, 304-320).
func parseLatexFragmentDollar(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	pairLength := 1
	if strings.HasPrefix(s, "$$") {
		pairLength = 2
	}
	return parseLatexFragmentPair(s, pairLength, cfg)
}

func parseLatexFragmentPair(s string, pairLength int, cfg *Configuration) (int, GreenElement) {
	if len(s) < pairLength+1 {
		return 0, nil
	}
	opening := s[:pairLength]
	closing, ok := latexPairs[opening]
	if !ok {
		return 0, nil
	}
	rest := s[pairLength:]
	idx := strings.Index(rest, closing)
	if idx == -1 {
		return 0, nil
	}
	content := rest[:idx]
	consumed := pairLength + idx + len(closing)
	children := []GreenElement{NewToken(LATEX_OPEN, opening)}
	children = append(children, ParseRawObjects(content, cfg)...)
	children = append(children, NewToken(LATEX_CLOSE, closing))
	return consumed, NewNode(LATEX_FRAGMENT, children)
}

// parseLatexEnvironment recognizes `\begin{NAME}...\end{NAME}`, grounded
// on the teacher's latexFragmentRegexp branch (inline.go:286-295).
func parseLatexEnvironment(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if !strings.HasPrefix(s, `\begin{`) {
		return 0, nil
	}
	nameEnd := strings.IndexByte(s[7:], '}')
	if nameEnd == -1 {
		return 0, nil
	}
	name := s[7 : 7+nameEnd]
	openingPair := `\begin{` + name + `}`
	closingPair := `\end{` + name + `}`
	rest := s[len(openingPair):]
	idx := strings.Index(rest, closingPair)
	if idx == -1 {
		return 0, nil
	}
	content := rest[:idx]
	consumed := len(openingPair) + idx + len(closingPair)
	children := []GreenElement{
		NewToken(LATEX_OPEN, `\begin{`),
		NewToken(LATEX_ENV_NAME, name),
		NewToken(R_BRACE, "}"),
	}
	children = append(children, ParseRawObjects(content, cfg)...)
	children = append(children, NewToken(LATEX_CLOSE, closingPair))
	return consumed, NewNode(LATEX_ENVIRONMENT, children)
}
