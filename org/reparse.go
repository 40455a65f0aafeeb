package org

import "strings"

// reparse.go implements incremental range-replacement reparse (spec
// §4.4), grounded verbatim in spirit on orgize's
// `original_source/src/replace.rs`: `RangeShape`/`ReplaceWithShape`
// classification, the "non-last headline must end with a newline" rule,
// and the `follows_newline` helper, all ported from rowan's TextRange
// arithmetic to plain byte offsets since the CST here already tracks
// absolute offsets on every red node.

// rangeShapeKind classifies how a replaced range R sits relative to the
// tree (spec §4.4 step 1).
type rangeShapeKind int

const (
	rangeOther rangeShapeKind = iota
	rangeExactHeadline
	rangeInsideHeadline
)

type rangeShape struct {
	kind     rangeShapeKind
	headline *SyntaxNode
	level    int
}

// newRangeShape walks down through headlines containing [start, end),
// following orgize's RangeShape::new loop: it descends into whichever
// headline's body strictly contains the range, stopping when the range
// exactly matches a headline's own span or when no contained headline is
// found.
func newRangeShape(node *SyntaxNode, start, end int) rangeShape {
	result := rangeShape{kind: rangeOther}
	for {
		advanced := false
		for _, h := range node.ChildrenOfKind(HEADLINE) {
			hl, _ := CastHeadline(h)
			level := hl.Level()
			hs, he := h.TextRange()

			if hs == start && he == end {
				return rangeShape{kind: rangeExactHeadline, headline: h, level: level}
			}

			bodyStart := hs + level + 1
			if bodyStart <= start && end <= he {
				node = h
				result = rangeShape{kind: rangeInsideHeadline, headline: h, level: level}
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
	}
	return result
}

// replaceWithShapeKind classifies the replacement text S by scanning for
// headline-start lines (spec §4.4 step 2).
type replaceWithShapeKind int

const (
	replaceOther replaceWithShapeKind = iota
	replaceExactHeadline
	replaceIncludeHeadline
)

type replaceWithShape struct {
	kind  replaceWithShapeKind
	level int
}

// newReplaceWithShape mirrors orgize's ReplaceWithShape::new line for
// line: a headline-start line at offset 0 makes the replacement
// "ExactHeadline", and it stays so while every later headline-start line
// is deeper; a later headline at the same or a shallower level, or a
// first headline that is not at offset 0, makes it "IncludeHeadline" at
// the minimum level seen.
func newReplaceWithShape(text string) replaceWithShape {
	result := replaceWithShape{kind: replaceOther}
	for _, start := range lineStartsIter(text) {
		level, ok := headlineLevelAt(text[start:])
		if !ok {
			continue
		}
		switch result.kind {
		case replaceIncludeHeadline:
			if level < result.level {
				result.level = level
			}
		case replaceExactHeadline:
			if level <= result.level {
				result = replaceWithShape{kind: replaceIncludeHeadline, level: level}
			}
		case replaceOther:
			if start == 0 {
				result = replaceWithShape{kind: replaceExactHeadline, level: level}
			} else {
				result = replaceWithShape{kind: replaceIncludeHeadline, level: level}
			}
		}
	}
	return result
}

// followsNewline reports whether the token ending at (or straddling)
// offset within syntax ends in \n or \r, grounded on replace.rs's
// follows_newline.
func followsNewline(syntax *SyntaxNode, offset int) bool {
	before, after := syntax.TokenAtOffset(offset)
	if before == nil && after == nil {
		return false
	}
	if before == after {
		s, _ := before.TextRange()
		rel := offset - s
		text := before.Text()
		if rel < 0 || rel > len(text) {
			return false
		}
		tail := text[rel:]
		return strings.HasSuffix(tail, "\n") || strings.HasSuffix(tail, "\r")
	}
	text := before.Text()
	return strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\r")
}

// ReplaceRange replaces d's text in [start, end) with replacement and
// returns the new Document, reparsing either a single headline subtree
// or, when the edit doesn't qualify, the whole document (spec §4.4 step
// 3). The receiver d is left untouched; typed AST/CST objects obtained
// from it must be considered invalidated once the new Document is in
// hand, per spec §4.4's invariant.
func (d *Document) ReplaceRange(start, end int, replacement string) *Document {
	root := d.Root()
	rs := newRangeShape(root, start, end)
	ws := newReplaceWithShape(replacement)

	switch {
	case rs.kind == rangeExactHeadline && ws.kind == replaceIncludeHeadline && rs.level < ws.level,
		rs.kind == rangeInsideHeadline && ws.kind == replaceIncludeHeadline && rs.level < ws.level:
		return d.reparseHeadline(rs.headline, start, end, replacement)

	case rs.kind == rangeExactHeadline && ws.kind == replaceExactHeadline && rs.level <= ws.level &&
		headlineEndsDocOrReplacementNewline(rs.headline, root, replacement):
		return d.reparseHeadline(rs.headline, start, end, replacement)

	case rs.kind == rangeInsideHeadline && ws.kind == replaceExactHeadline && rs.level <= ws.level &&
		followsNewline(rs.headline, start):
		return d.reparseHeadline(rs.headline, start, end, replacement)

	default:
		return d.reparseWhole(start, end, replacement)
	}
}

func headlineEndsDocOrReplacementNewline(headline, root *SyntaxNode, replacement string) bool {
	_, he := headline.TextRange()
	_, de := root.TextRange()
	if he == de {
		return true
	}
	return strings.HasSuffix(replacement, "\n") || strings.HasSuffix(replacement, "\r")
}

// reparseWhole rebuilds the entire document text with the range spliced
// in and runs a full parse of it with d's Configuration, returning that
// fresh Document; every node of the result is newly built (spec §4.4
// step 4, "whole-document reparse is equivalent but on the entire text").
func (d *Document) reparseWhole(start, end int, replacement string) *Document {
	text := d.text[:start] + replacement + d.text[end:]
	return d.Configuration.Parse(text)
}

// reparseHeadline rebuilds only the substring covering headline with the
// edit applied, reparses that substring as a single headline, and
// splices the resulting green subtree into the root via replace_with —
// every other headline and section in the document is reused by
// reference (spec §4.4 step 4).
func (d *Document) reparseHeadline(headline *SyntaxNode, start, end int, replacement string) *Document {
	hs, he := headline.TextRange()
	text := headline.Text()[:start-hs] + replacement + headline.Text()[end-hs:]

	// Any case not provably headline-local falls back to a full reparse:
	// the rebuilt substring must itself be exactly one headline subtree,
	// or splicing it back would corrupt the tree.
	if _, ok := headlineLevelAt(text); !ok {
		return d.reparseWhole(start, end, replacement)
	}
	sink := &diagnosticSink{log: d.Configuration}
	consumed, newGreen := parseHeadline(text, d.Configuration, sink, hs)
	if consumed != len(text) {
		return d.reparseWhole(start, end, replacement)
	}

	newRoot := headline.ReplaceWith(newGreen)

	newDoc := &Document{
		Configuration: d.Configuration,
		text:          d.text[:hs] + text + d.text[he:],
		root:          newRoot,
	}
	kept := shiftDiagnosticsAroundEdit(d.diagnostics, hs, he, len(text)-(he-hs))
	newDoc.diagnostics = append(kept, sink.items...)
	return newDoc
}

// shiftDiagnosticsAroundEdit drops diagnostics whose position falls
// inside [start, end) — the region being replaced — and shifts those
// after it by the edit's length delta, keeping every diagnostic attached
// to untouched parts of the document pointing at the right bytes.
func shiftDiagnosticsAroundEdit(diags []Diagnostic, start, end, delta int) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		switch {
		case d.Pos.Start >= start && d.Pos.Start < end:
			continue
		case d.Pos.Start >= end:
			d.Pos.Start += delta
			d.Pos.End += delta
		}
		out = append(out, d)
	}
	return out
}
