package org

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigurationParseRoundTrip(t *testing.T) {
	src := "* headline\nsome text\n"
	doc := New().Silent().Parse(src)
	require.Equal(t, src, doc.Source())
	require.Equal(t, src, doc.ToSource())
	require.Equal(t, src, doc.Root().Text())
}

func TestConfigurationParseReader(t *testing.T) {
	src := "* headline\nbody\n"
	doc, err := New().Silent().ParseReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, src, doc.Source())
}

func TestDocumentGreenAndRoot(t *testing.T) {
	doc := New().Silent().Parse("text\n")
	require.Equal(t, DOCUMENT, doc.Green().Kind())
	require.Equal(t, DOCUMENT, doc.Root().Kind())
}

func TestDocumentDiagnosticsUnterminatedBlock(t *testing.T) {
	doc := New().Silent().Parse("#+begin_src go\nfmt.Println(1)\n")
	require.True(t, doc.HasDiagnostics())
	diags := doc.DiagnosticsOfKind(DiagUnterminatedBlock)
	require.Len(t, diags, 1)

	var buf strings.Builder
	require.NoError(t, doc.WriteDiagnostics(&buf))
	require.Contains(t, buf.String(), "unterminated_block")
}

func TestDocumentNoDiagnosticsOnCleanInput(t *testing.T) {
	doc := New().Silent().Parse("* headline\nbody\n")
	require.False(t, doc.HasDiagnostics())
	require.Empty(t, doc.Diagnostics())
}

func TestDocumentUnterminatedDrawer(t *testing.T) {
	doc := New().Silent().Parse(":PROPERTIES:\n:ID: x\n")
	diags := doc.DiagnosticsOfKind(DiagUnterminatedDrawer)
	require.Len(t, diags, 1)
}
