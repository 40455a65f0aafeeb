package org

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenComparesByTextOnly(t *testing.T) {
	doc := Parse("* h\n:PROPERTIES:\n:A: same\n:B: same\n:END:\n")
	pd, ok := doc.Headlines()[0].Properties()
	require.True(t, ok)

	a, found := pd.GetToken("A")
	require.True(t, found)
	b, found := pd.GetToken("B")
	require.True(t, found)

	// Same text, different positions: equal as tokens, distinct as spans.
	require.True(t, a.Equal(b))
	as, _ := a.TextRange()
	bs, _ := b.TextRange()
	require.NotEqual(t, as, bs)
}

func TestTokenZeroValue(t *testing.T) {
	doc := Parse("* h\n:PROPERTIES:\n:A: x\n:END:\n")
	pd, _ := doc.Headlines()[0].Properties()
	missing, found := pd.GetToken("NOPE")
	require.False(t, found)
	require.True(t, missing.IsZero())
	require.Equal(t, "", missing.String())
}

func TestTokenEqualString(t *testing.T) {
	objs := ParseObjects("[[file:a.org]]", New())
	l, ok := CastLink(NewRoot(objs[0].(*GreenNode)))
	require.True(t, ok)
	require.True(t, l.PathToken().EqualString("file:a.org"))
}
