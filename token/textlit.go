package token

import (
	"fmt"
	"strings"
)

// ConvertTextLiteral converts the raw source text of an M text-literal
// token (including its enclosing double quotes) into its interpreted
// string value.
//
// M has no backslash escaping. A literal double quote inside a text value
// is written as two consecutive double quotes, e.g. the source
// `"She said ""hi"""` carries the value `She said "hi"`. Any double quote
// that is not part of such a doubled pair, or a value missing its
// enclosing quotes, is a malformed literal: ConvertTextLiteral returns the
// original text alongside an error so callers can surface a diagnostic
// instead of silently accepting it.
func ConvertTextLiteral(raw string) (string, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return raw, fmt.Errorf("text literal %q missing enclosing quotes", raw)
	}

	inner := raw[1 : len(raw)-1]

	var b strings.Builder
	b.Grow(len(inner))

	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '"' {
			b.WriteByte(c)
			continue
		}
		// c == '"': must be followed by another '"' to be a literal quote.
		if i+1 < len(inner) && inner[i+1] == '"' {
			b.WriteByte('"')
			i++
			continue
		}
		return raw, fmt.Errorf("text literal %q contains an unescaped quote", raw)
	}

	return b.String(), nil
}
