package org

import (
	"io"
	"log"
	"os"
)

// SubSuperscriptMode controls sub/superscript grammar (spec §4.1.3, §6.1).
type SubSuperscriptMode int

const (
	// SubSuperscriptOn accepts both `_{...}`/`^{...}` and the bare
	// `_word`/`^word` form.
	SubSuperscriptOn SubSuperscriptMode = iota
	// SubSuperscriptOff disables sub/superscript parsing entirely; `_`/`^`
	// are always literal text.
	SubSuperscriptOff
	// SubSuperscriptBraceOnly accepts only the `_{...}`/`^{...}` form.
	SubSuperscriptBraceOnly
)

// Configuration carries every parser-tunable setting (spec §3.6, §6.1). It
// is immutable once a parse begins: sub-parsers never mutate it, following
// the teacher's Configuration struct (document.go) and the design note
// "Configuration is immutable per parse" (spec §9).
type Configuration struct {
	// TodoKeywords is (in-progress, done) keyword lists recognized when
	// parsing a headline's TODO_KEYWORD token.
	TodoKeywords [2][]string

	// DualKeywords names affiliated keywords that accept an optional
	// bracketed [OPT] attribute, e.g. `#+CAPTION[short]: long`.
	DualKeywords map[string]bool

	// ParsedKeywords names affiliated keywords whose VALUE is recursively
	// parsed as objects rather than kept as a raw TEXT token.
	ParsedKeywords map[string]bool

	// AffiliatedKeywords is the recognized set of `#+NAME:` line names
	// that attach to the following element instead of becoming a
	// standalone KEYWORD node.
	AffiliatedKeywords map[string]bool

	// UseSubSuperscript selects the sub/superscript grammar variant.
	UseSubSuperscript SubSuperscriptMode

	// EnableCloze opts into the org-fc {{text}{hint}@id} syntax (spec
	// §4.1.3, "opt-in").
	EnableCloze bool

	// Log receives diagnostic echoes; see diagnostic.go. Defaults to
	// stderr, following the teacher's Configuration.Log.
	Log *log.Logger
}

// New returns a Configuration with the defaults from spec §6.1.
func New() *Configuration {
	return &Configuration{
		TodoKeywords: [2][]string{{"TODO"}, {"DONE"}},
		DualKeywords: map[string]bool{
			"CAPTION": true,
			"RESULTS": true,
		},
		ParsedKeywords: map[string]bool{
			"CAPTION": true,
		},
		AffiliatedKeywords: map[string]bool{
			"CAPTION": true, "DATA": true, "HEADER": true, "HEADERS": true,
			"LABEL": true, "NAME": true, "PLOT": true, "RESNAME": true,
			"RESULT": true, "RESULTS": true, "SOURCE": true, "SRCNAME": true,
			"TBLNAME": true,
		},
		UseSubSuperscript: SubSuperscriptOn,
		Log:               log.New(os.Stderr, "org: ", 0),
	}
}

// Silent redirects diagnostic logging to io.Discard, following the
// teacher's Configuration.Silent (document.go:192-196).
func (c *Configuration) Silent() *Configuration {
	c.Log = log.New(io.Discard, "", 0)
	return c
}

// isTodoKeyword reports whether word matches one of the configured
// TODO/DONE keyword lists, and if so whether it is from the "done" list.
func (c *Configuration) isTodoKeyword(word string) (ok bool, done bool) {
	for _, k := range c.TodoKeywords[0] {
		if k == word {
			return true, false
		}
	}
	for _, k := range c.TodoKeywords[1] {
		if k == word {
			return true, true
		}
	}
	return false, false
}

func (c *Configuration) isAffiliatedKeyword(name string) bool {
	return c.AffiliatedKeywords[upperASCII(name)]
}

func (c *Configuration) isDualKeyword(name string) bool {
	return c.DualKeywords[upperASCII(name)]
}

func (c *Configuration) isParsedKeyword(name string) bool {
	return c.ParsedKeywords[upperASCII(name)]
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
