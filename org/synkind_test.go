package org

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyntaxKindString(t *testing.T) {
	require.Equal(t, "HEADLINE", HEADLINE.String())
	require.Equal(t, "BOLD", BOLD.String())
	require.Equal(t, "UNKNOWN", SyntaxKind(65535).String())
}

func TestSyntaxKindIsLeaf(t *testing.T) {
	require.True(t, TEXT.IsLeaf())
	require.True(t, STARS.IsLeaf())
	require.False(t, DOCUMENT.IsLeaf())
	require.False(t, HEADLINE.IsLeaf())
}

func TestSyntaxKindIsEmphasis(t *testing.T) {
	for _, k := range []SyntaxKind{BOLD, ITALIC, UNDERLINE, STRIKE, CODE, VERBATIM} {
		require.True(t, k.IsEmphasis(), "%s should be emphasis", k)
	}
	require.False(t, PARAGRAPH.IsEmphasis())
}

func TestSyntaxKindIsBlock(t *testing.T) {
	require.True(t, SOURCE_BLOCK.IsBlock())
	require.True(t, SPECIAL_BLOCK.IsBlock())
	require.False(t, LIST.IsBlock())
}

func TestSyntaxKindIsTrivia(t *testing.T) {
	require.True(t, WHITESPACE.IsTrivia())
	require.True(t, NEW_LINE.IsTrivia())
	require.True(t, BLANK_LINE.IsTrivia())
	require.False(t, TEXT.IsTrivia())
}
