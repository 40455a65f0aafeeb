package org

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func textOf(children []GreenElement) string {
	n := NewNode(PARAGRAPH, children)
	return n.Text()
}

func TestParseEmphasis(t *testing.T) {
	cfg := New()
	objs := ParseObjects("*bold* plain /italic/", cfg)
	require.NotEmpty(t, objs)
	require.Equal(t, BOLD, objs[0].Kind())
	require.Equal(t, "*bold* plain /italic/", textOf(objs))
}

func TestParseEmphasisRequiresBorderChars(t *testing.T) {
	cfg := New()
	objs := ParseObjects("a*b*c", cfg)
	for _, o := range objs {
		require.NotEqual(t, BOLD, o.Kind(), "emphasis must not trigger without valid border chars")
	}
}

func TestParseRegularLink(t *testing.T) {
	cfg := New()
	objs := ParseObjects("[[https://example.com][desc]]", cfg)
	require.Len(t, objs, 1)
	require.Equal(t, LINK, objs[0].Kind())
	l, ok := CastLink(NewRoot(objs[0].(*GreenNode)))
	require.True(t, ok)
	require.Equal(t, "https://example.com", l.Path())
	require.Equal(t, "desc", l.Description())
}

func TestLinkIsImage(t *testing.T) {
	cfg := New()
	objs := ParseObjects("[[./photo.png]]", cfg)
	require.Len(t, objs, 1)
	l, ok := CastLink(NewRoot(objs[0].(*GreenNode)))
	require.True(t, ok)
	require.True(t, l.IsImage())
}

func TestParseFootnoteReference(t *testing.T) {
	cfg := New()
	objs := ParseObjects("[fn:1]", cfg)
	require.Len(t, objs, 1)
	require.Equal(t, FOOTNOTE_REFERENCE, objs[0].Kind())
}

func TestParseTimestampInactive(t *testing.T) {
	cfg := New()
	objs := ParseObjects("[2024-01-02 Tue]", cfg)
	require.Len(t, objs, 1)
	require.Equal(t, TIMESTAMP, objs[0].Kind())
}

func TestParseTimestampRange(t *testing.T) {
	cfg := New()
	objs := ParseObjects("<2024-01-02>--<2024-01-05>", cfg)
	require.Len(t, objs, 1)
	require.Equal(t, TIMESTAMP_RANGE, objs[0].Kind())
}

func TestParseStatisticCookie(t *testing.T) {
	cfg := New()
	objs := ParseObjects("[3/5]", cfg)
	require.Len(t, objs, 1)
	require.Equal(t, STATISTIC_COOKIE, objs[0].Kind())

	objs = ParseObjects("[50%]", cfg)
	require.Len(t, objs, 1)
	require.Equal(t, STATISTIC_COOKIE, objs[0].Kind())
}

func TestParseClozeDisabledByDefault(t *testing.T) {
	cfg := New()
	objs := ParseObjects("{{text}}", cfg)
	for _, o := range objs {
		require.NotEqual(t, CLOZE, o.Kind())
	}
}

func TestParseClozeEnabled(t *testing.T) {
	cfg := New()
	cfg.EnableCloze = true
	objs := ParseObjects("{{text}{hint}@id}", cfg)
	require.Len(t, objs, 1)
	require.Equal(t, CLOZE, objs[0].Kind())
}

func TestParseClozeRejectsEmptyText(t *testing.T) {
	cfg := New()
	cfg.EnableCloze = true
	objs := ParseObjects("{{}}", cfg)
	for _, o := range objs {
		require.NotEqual(t, CLOZE, o.Kind())
	}
}

func TestParseSubscriptBareWord(t *testing.T) {
	cfg := New()
	objs := ParseObjects("x_1", cfg)
	var found bool
	for _, o := range objs {
		if o.Kind() == SUBSCRIPT {
			found = true
		}
	}
	require.True(t, found)
}

func TestParseSubscriptBraceOnlyMode(t *testing.T) {
	cfg := New()
	cfg.UseSubSuperscript = SubSuperscriptBraceOnly
	for _, o := range ParseObjects("a_b", cfg) {
		require.NotEqual(t, SUBSCRIPT, o.Kind(), "bare form must be rejected in brace-only mode")
	}
	var found bool
	for _, o := range ParseObjects("a_{b}", cfg) {
		if o.Kind() == SUBSCRIPT {
			found = true
		}
	}
	require.True(t, found)
}

func TestParseSubscriptRequiresPrecedingNonSpace(t *testing.T) {
	cfg := New()
	for _, s := range []string{"_1", "a _1"} {
		for _, o := range ParseObjects(s, cfg) {
			require.NotEqual(t, SUBSCRIPT, o.Kind(), "no subscript in %q", s)
		}
	}
}

func TestParseSubscriptOffMode(t *testing.T) {
	cfg := New()
	cfg.UseSubSuperscript = SubSuperscriptOff
	objs := ParseObjects("x_1", cfg)
	for _, o := range objs {
		require.NotEqual(t, SUBSCRIPT, o.Kind())
	}
}

func TestParseLatexFragmentDollar(t *testing.T) {
	cfg := New()
	objs := ParseObjects(`$E=mc^2$`, cfg)
	require.Len(t, objs, 1)
	require.Equal(t, LATEX_FRAGMENT, objs[0].Kind())
}

func TestParseTargetAndRadioTarget(t *testing.T) {
	cfg := New()
	objs := ParseObjects("<<anchor>>", cfg)
	require.Len(t, objs, 1)
	require.Equal(t, TARGET, objs[0].Kind())

	objs = ParseObjects("<<<radio>>>", cfg)
	require.Len(t, objs, 1)
	require.Equal(t, RADIO_TARGET, objs[0].Kind())

	// Leading/trailing whitespace in the name disqualifies the target.
	for _, o := range ParseObjects("<< nope>>", cfg) {
		require.NotEqual(t, TARGET, o.Kind())
	}
}

func TestParseMacro(t *testing.T) {
	cfg := New()
	objs := ParseObjects("{{{name(arg1,arg2)}}}", cfg)
	require.Len(t, objs, 1)
	require.Equal(t, MACRO, objs[0].Kind())
}

func TestParseExplicitLineBreak(t *testing.T) {
	cfg := New()
	objs := ParseObjects("foo\\\\\nbar", cfg)
	var found bool
	for _, o := range objs {
		if o.Kind() == LINE_BREAK {
			found = true
		}
	}
	require.True(t, found)
}

func TestParseObjectsRoundTrips(t *testing.T) {
	cfg := New()
	for _, s := range []string{
		"plain text",
		"*bold* and /italic/ and =verbatim=",
		"[[link][desc]] trailing",
		"[2024-01-02 Tue 10:00]",
	} {
		objs := ParseObjects(s, cfg)
		require.Equal(t, s, textOf(objs), "round-trip mismatch for %q", s)
	}
}
