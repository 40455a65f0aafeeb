package org

import "strings"

// parseCloze recognizes the org-fc cloze syntax `{{text}{hint}@id}`, with
// the hint and id parts optional, gated behind
// Configuration.EnableCloze (spec §4.1.3, "opt-in"). Grounded directly on
// orgize's cloze_node_base (original_source/src/syntax/cloze.rs), which
// has no counterpart in the teacher: the text segment runs until the
// first `}` (braces are not counted for balance) while toggling a "we're inside a `$...$` latex span" flag
// on every `$` byte, so a literal `}` inside inline math does not end the
// clozed text early.
func parseCloze(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if cfg == nil || !cfg.EnableCloze {
		return 0, nil
	}
	if !strings.HasPrefix(s, "{{") {
		return 0, nil
	}
	rest := s[2:]
	insideLatex := false
	textEnd := -1
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '}':
			if !insideLatex {
				textEnd = i
			}
		case '$':
			insideLatex = !insideLatex
		}
		if textEnd >= 0 {
			break
		}
	}
	if textEnd <= 0 {
		return 0, nil
	}
	text := rest[:textEnd]
	i := textEnd + 1 // past the text's closing '}'

	children := []GreenElement{NewToken(L_BRACE2, "{{")}
	children = append(children, ParseObjects(text, cfg)...)
	children = append(children, NewToken(R_BRACE, "}"))

	if i < len(rest) && rest[i] == '{' {
		end := strings.IndexByte(rest[i+1:], '}')
		if end == -1 {
			return 0, nil
		}
		hint := rest[i+1 : i+1+end]
		if hint == "" {
			return 0, nil
		}
		children = append(children, NewToken(L_BRACE, "{"))
		children = append(children, NewToken(CLOZE_HINT_TEXT, hint))
		children = append(children, NewToken(R_BRACE, "}"))
		i += 1 + end + 1
	}

	if i < len(rest) && rest[i] == '@' {
		j := i + 1
		for j < len(rest) && rest[j] != '}' {
			j++
		}
		if j >= len(rest) || j == i+1 {
			return 0, nil
		}
		id := rest[i+1 : j]
		children = append(children, NewToken(AT, "@"))
		children = append(children, NewToken(CLOZE_ID_TEXT, id))
		i = j
	}

	if i >= len(rest) || rest[i] != '}' {
		return 0, nil
	}
	children = append(children, NewToken(R_BRACE, "}"))
	consumed := 2 + i + 1
	return consumed, NewNode(CLOZE, children)
}
