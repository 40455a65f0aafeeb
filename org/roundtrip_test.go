package org

import (
	"fmt"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// requireRoundTrip parses src and asserts that reconstructing the source
// from the tree reproduces it byte for byte, printing a unified diff on
// mismatch instead of testify's default string dump — the CST's core
// promise is full-fidelity round-tripping (spec §3.2, §8), so a failure
// here should read like a patch, not a wall of escaped text.
func requireRoundTrip(t *testing.T, src string) {
	t.Helper()
	doc := New().Silent().Parse(src)
	got := doc.ToSource()
	if got == src {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(src),
		B:        difflib.SplitLines(got),
		FromFile: "source",
		ToFile:   "reconstructed",
		Context:  2,
	})
	require.NoError(t, err)
	t.Fatalf("round-trip mismatch:\n%s", diff)
}

func TestRoundTripSamples(t *testing.T) {
	samples := []string{
		"",
		"plain paragraph\n",
		"* headline\n",
		"* TODO [#A] headline :tag1:tag2:\nbody\n",
		"** nested\n*** deeper\n* back to top\n",
		"- a\n- b\n  - nested\n- c\n",
		"1. one\n2. two\n",
		"- [X] done :: description\n- [ ] todo\n",
		"| a | b |\n|---+---|\n| 1 | 2 |\n",
		":PROPERTIES:\n:ID: abc\n:END:\n",
		"#+begin_src go\nfmt.Println(1)\n#+end_src\n",
		"#+begin_export html\n<b>x</b>\n#+end_export\n",
		"#+TITLE: hello\n#+AUTHOR: me\n",
		"-----\n",
		"# a comment\n",
		": fixed width\n",
		"CLOCK: [2024-01-01 Mon 10:00]\n",
		"* task\nSCHEDULED: <2024-01-01 Mon>\n",
		"[fn:1] a footnote definition\n",
		"*bold* /italic/ _underline_ +strike+ =verbatim= ~code~\n",
		"[[https://example.com][a link]]\n",
		"[2024-01-02 Tue 10:00]--[2024-01-02 Tue 11:00]\n",
		"$E=mc^2$ and \\(a+b\\)\n",
		"a_1 and a^2 in bare mode\n",
		"line one\\\\\nline two\n",
		"* parent\n:PROPERTIES:\n:ID: p\n:END:\nSCHEDULED: <2024-01-01 Mon>\nsome body text\n** child one\nchild body\n** child two\n",
		"{{{kbd(C-c C-c)}}} and @@html:<br>@@\n",
		"run src_go[:exports code]{fmt.Println(1)} or call_square[:results raw](4)\n",
		"\\begin{equation}\nx^2\n\\end{equation}\n",
		"#+CAPTION[short]: long caption\n[[file:img.png]]\n",
		"#+BEGIN_SRC python :results output\nprint(1)\n#+END_SRC\n",
		"  | padded | cells |\n",
		"An entity \\alpha here\n",
		"<2024-03-05 Tue 09:15 +1w>\n",
		"#+NAME: orphaned\n\nparagraph after blank\n",
		"- term :: detail\n",
		"see <<anchor>> and <<<radio>>> here\n",
	}
	for _, s := range samples {
		s := s
		t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
			requireRoundTrip(t, s)
		})
	}
}

func TestRoundTripAfterReplaceRange(t *testing.T) {
	src := "* abc \n** edf\nbody\n"
	doc := New().Silent().Parse(src)
	next := doc.ReplaceRange(10, 13, "xyz")
	want := "* abc \n** xyz\nbody\n"
	got := next.ToSource()
	if got != want {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "expected",
			ToFile:   "actual",
			Context:  2,
		})
		require.NoError(t, err)
		t.Fatalf("replace-range round-trip mismatch:\n%s", diff)
	}
}

func TestRoundTripClozeWhenEnabled(t *testing.T) {
	cfg := New()
	cfg.EnableCloze = true
	src := "front {{text}{hint}@id} back\n"
	doc := cfg.Silent().Parse(src)
	require.Equal(t, src, doc.ToSource())
}
