package org

// Token is a simple wrapper over *SyntaxToken that compares and hashes by
// its textual content only — two tokens with identical text from
// different positions in the document compare equal (spec §3.5). It
// exists so typed AST accessors can return "the LANGUAGE token of this
// source block" as an ergonomic string-like value instead of a raw
// *SyntaxToken, mirroring orgize's ast::Token (original_source/src/ast/mod.rs).
type Token struct {
	tok *SyntaxToken
}

// NewToken2 wraps a *SyntaxToken as a Token. Named to avoid colliding with
// green.go's NewToken (green-tree constructor).
func NewToken2(t *SyntaxToken) Token { return Token{tok: t} }

// String returns the token's text, satisfying fmt.Stringer and giving the
// ergonomic "dereferences to str" behavior spec §3.5 calls for.
func (t Token) String() string {
	if t.tok == nil {
		return ""
	}
	return t.tok.Text()
}

// Equal compares two tokens by text only, per spec §3.5.
func (t Token) Equal(other Token) bool { return t.String() == other.String() }

// EqualString compares a token's text against a plain string.
func (t Token) EqualString(s string) bool { return t.String() == s }

// Syntax exposes the underlying red token for callers that need position
// information.
func (t Token) Syntax() *SyntaxToken { return t.tok }

// TextRange returns the token's [start, end) byte range, or (0, 0) for a
// zero Token.
func (t Token) TextRange() (start, end int) {
	if t.tok == nil {
		return 0, 0
	}
	return t.tok.TextRange()
}

// IsZero reports whether this Token wraps no underlying syntax token.
func (t Token) IsZero() bool { return t.tok == nil }
