package token

import (
	"fmt"

	"github.com/antlr4-go/antlr/v4"

	"github.com/Global19/powerquery-parser/location"
)

// Builder constructs Token and location.Span values from ANTLR tokens and
// parser rule contexts, converting ANTLR's rune-based positions into the
// byte-based positions the rest of the toolchain uses.
type Builder struct {
	sourceID  location.SourceID
	registry  location.PositionRegistry
	converter location.RuneOffsetConverter
}

// NewBuilder creates a Builder for the given source.
func NewBuilder(
	sourceID location.SourceID,
	registry location.PositionRegistry,
	converter location.RuneOffsetConverter,
) *Builder {
	return &Builder{sourceID: sourceID, registry: registry, converter: converter}
}

// FromANTLR constructs a Token from a single ANTLR token, with value left
// nil; callers that need an interpreted literal value (e.g. via
// ConvertTextLiteral) set it afterward.
func (b *Builder) FromANTLR(t antlr.Token) Token {
	if t == nil {
		return Token{}
	}
	return Token{
		Kind:  Kind(t.GetTokenType()),
		Index: t.GetTokenIndex(),
		Span:  b.SpanFromToken(t),
		Text:  t.GetText(),
	}
}

// SpanFromToken creates a Span from a single ANTLR token.
func (b *Builder) SpanFromToken(t antlr.Token) location.Span {
	if t == nil {
		return location.Span{}
	}

	startRune := t.GetStart()
	// End is exclusive; GetStop() is the last character index.
	endRune := t.GetStop() + 1

	return b.fromRuneOffsets(startRune, endRune)
}

// SpanFromContext creates a Span covering an entire parser rule context.
func (b *Builder) SpanFromContext(ctx antlr.ParserRuleContext) location.Span {
	if ctx == nil {
		return location.Span{}
	}

	start := ctx.GetStart()
	stop := ctx.GetStop()
	if start == nil {
		return location.Span{}
	}

	startRune := start.GetStart()
	var endRune int
	if stop != nil {
		endRune = stop.GetStop() + 1
	} else {
		endRune = start.GetStop() + 1
	}

	return b.fromRuneOffsets(startRune, endRune)
}

// SpanFromTokens creates a Span covering a range of tokens.
func (b *Builder) SpanFromTokens(start, stop antlr.Token) location.Span {
	if start == nil {
		return location.Span{}
	}

	startRune := start.GetStart()
	var endRune int
	if stop != nil {
		endRune = stop.GetStop() + 1
	} else {
		endRune = start.GetStop() + 1
	}

	return b.fromRuneOffsets(startRune, endRune)
}

func (b *Builder) fromRuneOffsets(startRune, endRune int) location.Span {
	startByte := mustRuneToByteOffset(b.converter, b.sourceID, startRune)
	endByte := mustRuneToByteOffset(b.converter, b.sourceID, endRune)

	startPos := mustPositionAt(b.registry, b.sourceID, startByte)
	endPos := mustPositionAt(b.registry, b.sourceID, endByte)

	return location.Span{Source: b.sourceID, Start: startPos, End: endPos}
}

// mustRuneToByteOffset converts a rune offset to a byte offset, panicking
// if the converter reports failure (an unknown source or an out-of-range
// rune offset). This enforces the parsing invariant that every
// rune offset produced by ANTLR must be resolvable within the source the
// builder was constructed for.
func mustRuneToByteOffset(conv location.RuneOffsetConverter, src location.SourceID, runeOffset int) int {
	byteOffset, ok := conv.RuneToByteOffset(src, runeOffset)
	if !ok {
		panic(fmt.Sprintf("parsing invariant: RuneToByteOffset(%s, %d) returned false (unknown source)", src, runeOffset))
	}
	return byteOffset
}

// mustPositionAt converts a byte offset to a Position, panicking if the
// registry returns a zero Position. A zero Position here indicates a bug
// in offset derivation or a source-id mismatch, not a content error.
func mustPositionAt(reg location.PositionRegistry, src location.SourceID, byteOffset int) location.Position {
	pos := reg.PositionAt(src, byteOffset)
	if pos.IsZero() {
		panic(fmt.Sprintf("parsing invariant: PositionAt(%s, %d) returned zero Position", src, byteOffset))
	}
	return pos
}

// Registry returns the underlying PositionRegistry.
func (b *Builder) Registry() location.PositionRegistry {
	return b.registry
}

// Converter returns the underlying RuneOffsetConverter.
func (b *Builder) Converter() location.RuneOffsetConverter {
	return b.converter
}
