package org

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sectionElements parses src (which has no top-level headlines) and
// returns the direct children of the resulting top-level SECTION node.
func sectionElements(t *testing.T, src string) []GreenElement {
	objs := parseElements(src, New(), &diagnosticSink{}, 0)
	require.Len(t, objs, 1)
	sec, ok := objs[0].(*GreenNode)
	require.True(t, ok)
	require.Equal(t, SECTION, sec.Kind())
	return sec.Children()
}

func TestParseHeadlineBasic(t *testing.T) {
	doc := Parse("* TODO [#A] write report :work:urgent:\nbody text\n")
	hls := doc.Headlines()
	require.Len(t, hls, 1)
	h := hls[0]
	require.Equal(t, 1, h.Level())
	require.Equal(t, "TODO", h.Todo())
	require.Equal(t, "[#A]", h.Priority())
	require.Equal(t, []string{"work", "urgent"}, h.Tags())
	var titleText string
	for _, tok := range h.Syntax().Tokens() {
		if tok.Kind() == TEXT {
			titleText += tok.Text()
		}
	}
	require.Contains(t, titleText, "write report")
	sec := h.Section()
	require.NotNil(t, sec)
	require.Contains(t, sec.Text(), "body text")
}

func TestParseHeadlineNesting(t *testing.T) {
	doc := Parse("* one\n** two\n* three\n")
	hls := doc.Headlines()
	require.Len(t, hls, 2)
	require.Equal(t, 1, hls[0].Level())
	subs := hls[0].SubHeadlines()
	require.Len(t, subs, 1)
	require.Equal(t, 2, subs[0].Level())
	require.Equal(t, 1, hls[1].Level())
}

func TestParseHeadlinePropertyDrawer(t *testing.T) {
	doc := Parse("* task\n:PROPERTIES:\n:ID: abc123\n:END:\nbody\n")
	h := doc.Headlines()[0]
	pd, ok := h.Properties()
	require.True(t, ok)
	v, found := pd.Get("ID")
	require.True(t, found)
	require.Equal(t, "abc123", v)
}

func TestParseListUnordered(t *testing.T) {
	children := sectionElements(t, "- first\n- second\n")
	require.Len(t, children, 1)
	lst, ok := CastList(NewRoot(children[0].(*GreenNode)))
	require.True(t, ok)
	require.False(t, lst.IsOrdered())
	require.Len(t, lst.Items(), 2)
}

func TestParseListOrdered(t *testing.T) {
	children := sectionElements(t, "1. first\n2. second\n")
	require.Len(t, children, 1)
	lst, ok := CastList(NewRoot(children[0].(*GreenNode)))
	require.True(t, ok)
	require.True(t, lst.IsOrdered())
}

func TestParseListNestedSiblingStaysAtTopLevel(t *testing.T) {
	children := sectionElements(t, "- a\n- b\n  - nested\n- c\n")
	require.Len(t, children, 1)
	lst, ok := CastList(NewRoot(children[0].(*GreenNode)))
	require.True(t, ok)
	items := lst.Items()
	require.Len(t, items, 3, "c must stay a sibling of a and b, not be absorbed into b's nested list")

	nested, ok := CastList(items[1].FirstChildOfKind(LIST))
	require.True(t, ok)
	require.Len(t, nested.Items(), 1)
	require.Contains(t, nested.Items()[0].Text(), "nested")

	require.Nil(t, items[2].FirstChildOfKind(LIST))
	require.Contains(t, items[2].Text(), "c")
}

func TestParseListDescriptiveAndCheckbox(t *testing.T) {
	children := sectionElements(t, "- [X] term :: detail text\n")
	require.Len(t, children, 1)
	lst, _ := CastList(NewRoot(children[0].(*GreenNode)))
	items := lst.Items()
	require.Len(t, items, 1)
	require.NotNil(t, items[0].FirstTokenOfKind(LIST_CHECKBOX))
	require.NotNil(t, items[0].FirstTokenOfKind(LIST_TAG_MARKER))
}

func TestParseTableRowsAndRule(t *testing.T) {
	src := "| a | b |\n|---+---|\n| 1 | 2 |\n"
	children := sectionElements(t, src)
	require.Len(t, children, 1)
	tbl, ok := CastTable(NewRoot(children[0].(*GreenNode)))
	require.True(t, ok)
	rows := tbl.Rows()
	require.Len(t, rows, 3)
	require.False(t, tbl.IsRuleRow(rows[0]))
	require.True(t, tbl.IsRuleRow(rows[1]))
	require.False(t, tbl.IsRuleRow(rows[2]))
	require.Len(t, tbl.Cells(rows[0]), 2)
}

func TestParseDrawerGeneric(t *testing.T) {
	children := sectionElements(t, ":LOGBOOK:\nsome text\n:END:\n")
	require.Len(t, children, 1)
	require.Equal(t, DRAWER, children[0].(*GreenNode).Kind())
}

func TestParseSourceBlock(t *testing.T) {
	src := "#+begin_src go\nfmt.Println(1)\n#+end_src\n"
	children := sectionElements(t, src)
	require.Len(t, children, 1)
	sb, ok := CastSourceBlock(NewRoot(children[0].(*GreenNode)))
	require.True(t, ok)
	require.Equal(t, "go", sb.Language())
	require.Equal(t, "fmt.Println(1)\n", sb.Value())
}

func TestParseSourceBlockCommaEscape(t *testing.T) {
	src := "#+begin_src org\n,* not a headline\n#+end_src\n"
	children := sectionElements(t, src)
	sb, ok := CastSourceBlock(NewRoot(children[0].(*GreenNode)))
	require.True(t, ok)
	require.Equal(t, "* not a headline\n", sb.Value())
}

func TestParseExportBlock(t *testing.T) {
	src := "#+begin_export html\n<b>hi</b>\n#+end_export\n"
	children := sectionElements(t, src)
	eb, ok := CastExportBlock(NewRoot(children[0].(*GreenNode)))
	require.True(t, ok)
	require.Equal(t, "<b>hi</b>\n", eb.Value())
}

func TestParseUnknownBlockIsSpecial(t *testing.T) {
	src := "#+begin_mystery\nx\n#+end_mystery\n"
	children := sectionElements(t, src)
	require.Equal(t, SPECIAL_BLOCK, children[0].(*GreenNode).Kind())
}

func TestParseKeywordAndAffiliated(t *testing.T) {
	children := sectionElements(t, "#+TITLE: hello\n#+NAME: fig1\nparagraph\n")
	// #+NAME is affiliated and attaches to the following paragraph, so
	// the section has exactly two top-level children: the TITLE keyword
	// and the (affiliated-keyword-prefixed) paragraph.
	require.Len(t, children, 2)
	require.Equal(t, KEYWORD, children[0].(*GreenNode).Kind())
	para := children[1].(*GreenNode)
	require.Equal(t, PARAGRAPH, para.Kind())
	require.NotNil(t, NewRoot(para).FirstChildOfKind(AFFILIATED_KEYWORD))
}

func TestParseFootnoteDefinitionElement(t *testing.T) {
	children := sectionElements(t, "[fn:1] a footnote body\n")
	require.Len(t, children, 1)
	require.Equal(t, FN_DEF, children[0].(*GreenNode).Kind())
}

func TestParseRuleCommentFixedWidth(t *testing.T) {
	children := sectionElements(t, "-----\n# a comment\n: fixed width\n")
	var kinds []SyntaxKind
	for _, c := range children {
		kinds = append(kinds, c.(*GreenNode).Kind())
	}
	require.Contains(t, kinds, RULE)
	require.Contains(t, kinds, COMMENT)
	require.Contains(t, kinds, FIXED_WIDTH)
}

func TestParseClockAndPlanning(t *testing.T) {
	doc := Parse("* task\nSCHEDULED: <2024-01-01 Mon>\nCLOCK: [2024-01-01 Mon 10:00]\nbody\n")
	h := doc.Headlines()[0]
	hn := h.Syntax()
	require.NotNil(t, hn.FirstChildOfKind(PLANNING))
	sec := h.Section()
	require.NotNil(t, sec.FirstChildOfKind(CLOCK))
}

func TestParseParagraphFallback(t *testing.T) {
	children := sectionElements(t, "plain paragraph text\nstill going\n")
	require.Len(t, children, 1)
	require.Equal(t, PARAGRAPH, children[0].(*GreenNode).Kind())
}
