package token

import "github.com/Global19/powerquery-parser/location"

// Token is the parser core's lexer-agnostic view of a single token: its
// kind, its position in the token stream, its source span, its raw text,
// and (for literals) its interpreted value.
//
// Token is an immutable value type; construct one via FromANTLR or the
// zero-value literal form directly when bridging from a non-ANTLR lexer.
type Token struct {
	Kind  Kind
	Index int
	Span  location.Span
	Text  string
	Value any
}

// IsZero reports whether t is the zero Token, used by contexts that have
// not recorded a starting token.
func (t Token) IsZero() bool {
	return t.Kind == 0 && t.Index == 0 && t.Span.IsZero() && t.Text == "" && t.Value == nil
}
