package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Global19/powerquery-parser/location"
	"github.com/Global19/powerquery-parser/token"
)

func TestTokenIsZero(t *testing.T) {
	assert.True(t, token.Token{}.IsZero())

	nonZero := token.Token{Kind: 1}
	assert.False(t, nonZero.IsZero())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "42", token.Kind(42).String())
}

func TestBuilderNilInputsReturnZeroSpan(t *testing.T) {
	source := location.MustNewSourceID("inline:test")
	b := token.NewBuilder(source, nil, nil)

	assert.True(t, b.SpanFromToken(nil).IsZero())
	assert.True(t, b.SpanFromContext(nil).IsZero())
	assert.True(t, b.SpanFromTokens(nil, nil).IsZero())
	assert.True(t, b.FromANTLR(nil).IsZero())
}
