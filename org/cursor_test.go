package org

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineEndAndContent(t *testing.T) {
	text := "foo\nbar\r\nbaz"
	require.Equal(t, 4, lineEnd(text, 0))
	require.Equal(t, "foo", lineContent(text, 0))
	require.Equal(t, 9, lineEnd(text, 4))
	require.Equal(t, "bar", lineContent(text, 4))
	require.Equal(t, 12, lineEnd(text, 9))
	require.Equal(t, "baz", lineContent(text, 9))
}

func TestConsumeBlankLines(t *testing.T) {
	text := "\n  \nfoo"
	tokens, next := consumeBlankLines(text, 0)
	require.Len(t, tokens, 2)
	require.Equal(t, 4, next)
	require.Equal(t, "foo", text[next:])
}

func TestConsumeBlankLinesNone(t *testing.T) {
	tokens, next := consumeBlankLines("foo\n", 0)
	require.Nil(t, tokens)
	require.Equal(t, 0, next)
}

func TestIsBlankLine(t *testing.T) {
	require.True(t, isBlankLine("   \nrest", 0))
	require.False(t, isBlankLine("a  \nrest", 0))
}

func TestConsumeSpaces(t *testing.T) {
	require.Equal(t, 3, consumeSpaces("   x"))
	require.Equal(t, 0, consumeSpaces("x"))
}
