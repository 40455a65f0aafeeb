package org

// parseSubSuperscript recognizes `_{...}`/`^{...}` (and, when the
// configuration's UseSubSuperscript mode is SubSuperscriptOn, the bare
// `_word`/`^word` form too), grounded on the teacher's
// subScriptSuperScriptRegexp `^([_^]){([^{}]+?)}` (inline.go:85,326-335).
// The bare-word form and the Off/BraceOnly modes are this module's
// generalization of the teacher's single braced case (spec §4.1.3, §6.1).
func parseSubSuperscript(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	if cfg.UseSubSuperscript == SubSuperscriptOff {
		return 0, nil
	}
	marker := s[0]
	if marker != '_' && marker != '^' {
		return 0, nil
	}
	// The script attaches to whatever directly precedes it: at the start
	// of a run, or after whitespace, `_`/`^` is plain text (spec §4.1.3).
	if prev == 0xFFFD || isSpaceRune(prev) {
		return 0, nil
	}
	kind := SUBSCRIPT
	if marker == '^' {
		kind = SUPERSCRIPT
	}

	if len(s) >= 3 && s[1] == '{' {
		end := -1
		for i := 2; i < len(s); i++ {
			if s[i] == '}' {
				end = i
				break
			}
			if s[i] == '{' {
				break
			}
		}
		if end > 2 {
			inner := s[2:end]
			children := []GreenElement{
				NewToken(CARET, string(marker)),
				NewToken(L_BRACE, "{"),
			}
			children = append(children, ParseObjects(inner, cfg)...)
			children = append(children, NewToken(R_BRACE, "}"))
			return end + 1, NewNode(kind, children)
		}
	}

	if cfg.UseSubSuperscript != SubSuperscriptOn {
		return 0, nil
	}
	i := 1
	for i < len(s) && (isAlnum(s[i]) || s[i] == '-') {
		i++
	}
	if i == 1 {
		return 0, nil
	}
	word := s[1:i]
	children := []GreenElement{
		NewToken(CARET, string(marker)),
		NewToken(TEXT, word),
	}
	return i, NewNode(kind, children)
}
