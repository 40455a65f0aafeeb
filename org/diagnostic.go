package org

import (
	"fmt"
	"io"
)

// DiagnosticKind classifies a Diagnostic, generalizing the teacher's
// ErrorType enum (error.go) from line-token parse failures — which cannot
// happen here, the parser is total (spec §4.1.6, §7) — to advisory
// irregularities noticed while building a CST that is still fully valid.
type DiagnosticKind string

const (
	DiagUnterminatedBlock       DiagnosticKind = "unterminated_block"
	DiagUnterminatedDrawer      DiagnosticKind = "unterminated_drawer"
	DiagOrphanAffiliatedKeyword DiagnosticKind = "orphan_affiliated_keyword"
	DiagMalformedTimestamp      DiagnosticKind = "malformed_timestamp"
	DiagMaxDepthExceeded        DiagnosticKind = "max_depth_exceeded"
	DiagReparseFallback         DiagnosticKind = "reparse_fallback"
)

// Severity mirrors the teacher's error severities but is reduced to two
// levels: parsing cannot fail, so there is no "fatal" tier (spec §7).
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityInfo
)

// Position is a byte-offset span into the document, resolved against the
// red tree rather than the teacher's line/column token fields (error.go's
// Position), since the CST's native coordinate system is byte offsets.
type Position struct {
	Start int
	End   int
}

// Diagnostic is a structured, non-fatal note about an irregularity found
// while parsing (spec §4.0 in SPEC_FULL.md). It never indicates that the
// resulting tree is anything but fully lossless and valid.
type Diagnostic struct {
	Kind     DiagnosticKind
	Severity Severity
	Pos      Position
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Pos.Start, d.Pos.End, d.Kind, d.Message)
}

// diagnosticSink accumulates diagnostics during a single parse call. It is
// not exported; callers see it only via Document.Diagnostics().
type diagnosticSink struct {
	log   *Configuration
	items []Diagnostic
}

func (s *diagnosticSink) add(kind DiagnosticKind, sev Severity, pos Position, msg string) {
	d := Diagnostic{Kind: kind, Severity: sev, Pos: pos, Message: msg}
	s.items = append(s.items, d)
	if s.log != nil && s.log.Log != nil {
		s.log.Log.Printf("%s", d.String())
	}
}

// Diagnostics returns every diagnostic recorded while building this
// document's tree.
func (d *Document) Diagnostics() []Diagnostic {
	return d.diagnostics
}

// HasDiagnostics reports whether any diagnostic was recorded, mirroring
// the teacher's Document.HasErrors (error.go:118-121).
func (d *Document) HasDiagnostics() bool {
	return len(d.diagnostics) > 0
}

// WriteDiagnostics writes every diagnostic to w, one per line, mirroring
// the teacher's Document.WriteErrors (error.go:140-149).
func (d *Document) WriteDiagnostics(w io.Writer) error {
	for _, diag := range d.diagnostics {
		if _, err := fmt.Fprintln(w, diag.String()); err != nil {
			return err
		}
	}
	return nil
}

// DiagnosticsOfKind filters diagnostics by kind, mirroring the teacher's
// GetErrorByType (error.go:156-165).
func (d *Document) DiagnosticsOfKind(kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, diag := range d.diagnostics {
		if diag.Kind == kind {
			out = append(out, diag)
		}
	}
	return out
}
