package org

// parseTimestampActive recognizes an active timestamp `<DATE DAYNAME
// TIME REPEATER>`, optionally followed by `--<...>` for a range, grounded
// on the teacher's timestampRegexp (inline.go:86) and timestampFormat
// (inline.go:94): `^<(\d{4}-\d{2}-\d{2})( [A-Za-z]+)?( \d{2}:\d{2})?( \+\d+[dwmy])?>`.
func parseTimestampActive(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	return parseTimestamp(s, cfg, '<', '>', TIMESTAMP)
}

// parseTimestampInactive recognizes an inactive timestamp `[DATE DAYNAME
// TIME REPEATER]`. The teacher only supports the active form; inactive
// timestamps are a straightforward bracket variant per the org syntax
// this spec generalizes to.
func parseTimestampInactive(s string, prev rune, cfg *Configuration) (int, GreenElement) {
	return parseTimestamp(s, cfg, '[', ']', TIMESTAMP)
}

func parseTimestamp(s string, cfg *Configuration, open, close byte, kind SyntaxKind) (int, GreenElement) {
	consumed, node := parseOneTimestamp(s, cfg, open, close)
	if consumed == 0 {
		return 0, nil
	}
	if consumed+1 < len(s) && s[consumed] == '-' && s[consumed+1] == '-' && consumed+2 < len(s) && s[consumed+2] == open {
		consumed2, node2 := parseOneTimestamp(s[consumed+2:], cfg, open, close)
		if consumed2 > 0 {
			children := []GreenElement{node, NewToken(MINUS2, "--"), node2}
			return consumed + 2 + consumed2, NewNode(TIMESTAMP_RANGE, children)
		}
	}
	return consumed, node
}

func parseOneTimestamp(s string, cfg *Configuration, open, close byte) (int, GreenElement) {
	if len(s) < 12 || s[0] != open {
		return 0, nil
	}
	i := 1
	dateStart := i
	for j := 0; j < 4; j++ {
		if i >= len(s) || !isDigit(s[i]) {
			return 0, nil
		}
		i++
	}
	if i >= len(s) || s[i] != '-' {
		return 0, nil
	}
	i++
	for j := 0; j < 2; j++ {
		if i >= len(s) || !isDigit(s[i]) {
			return 0, nil
		}
		i++
	}
	if i >= len(s) || s[i] != '-' {
		return 0, nil
	}
	i++
	for j := 0; j < 2; j++ {
		if i >= len(s) || !isDigit(s[i]) {
			return 0, nil
		}
		i++
	}
	date := s[dateStart:i]
	children := []GreenElement{
		NewToken(TIMESTAMP_OPEN, string(open)),
		NewToken(TIMESTAMP_DATE, date),
	}

	if i < len(s) && s[i] == ' ' {
		j := i + 1
		for j < len(s) && isAlpha(s[j]) {
			j++
		}
		if j > i+1 {
			children = append(children,
				NewToken(WHITESPACE, s[i:i+1]),
				NewToken(TIMESTAMP_DAYNAME, s[i+1:j]))
			i = j
		}
	}

	if i+5 < len(s) && s[i] == ' ' && isDigit(s[i+1]) && isDigit(s[i+2]) && s[i+3] == ':' && isDigit(s[i+4]) && isDigit(s[i+5]) {
		children = append(children,
			NewToken(WHITESPACE, s[i:i+1]),
			NewToken(TIMESTAMP_TIME, s[i+1:i+6]))
		i += 6
	}

	if i < len(s) && s[i] == ' ' && i+1 < len(s) && s[i+1] == '+' {
		j := i + 2
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j < len(s) && j > i+2 && containsRune("dwmy", rune(s[j])) {
			children = append(children,
				NewToken(WHITESPACE, s[i:i+1]),
				NewToken(TIMESTAMP_REPEATER, s[i+1:j+1]))
			i = j + 1
		}
	}

	if i >= len(s) || s[i] != close {
		return 0, nil
	}
	children = append(children, NewToken(TIMESTAMP_CLOSE, string(close)))
	return i + 1, NewNode(TIMESTAMP, children)
}
