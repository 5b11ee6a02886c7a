package location

// PositionRegistry provides byte-offset-to-position conversion.
//
// This interface is the bridge between token construction (the token
// package's ANTLR bridge) and source content registries that perform the
// actual conversion. It enables callers to obtain accurate Position values
// from byte offsets derived from lexer tokens.
//
// The primary implementation is source.Registry.
//
// Design rationale:
//
//  1. Foundation tier placement: PositionRegistry is defined in location
//     (foundation tier) because the interface operates on location.Position and
//     location.SourceID, a natural cohesion with the location package.
//
//  2. Decouples token construction from any one registry implementation:
//     callers can use any PositionRegistry implementation, not just
//     source.Registry. This enables testing with mock registries.
type PositionRegistry interface {
	// PositionAt converts a byte offset to a Position for the given source.
	//
	// Returns a zero Position (check via IsZero()) if:
	//   - The source is not registered
	//   - The byte offset is out of range
	//   - The byte offset is negative
	//
	// The returned Position has:
	//   - Line: 1-based line number
	//   - Column: 1-based rune offset from line start
	//   - Byte: The input byteOffset (echoed back for convenience)
	PositionAt(source SourceID, byteOffset int) Position
}

// RuneOffsetConverter provides rune-to-byte offset conversion.
//
// ANTLR positions are rune-based (character indices), but this module uses
// byte offsets for consistency with Go strings and UTF-8 handling. This
// interface enables the conversion between these coordinate systems.
//
// The primary implementation is source.Registry.
type RuneOffsetConverter interface {
	// RuneToByteOffset converts a rune offset to a byte offset for the given source.
	//
	// Returns (byteOffset, true) on success.
	// Returns (0, false) if:
	//   - The source is not registered
	//   - The rune offset is out of range
	//   - The rune offset is negative
	RuneToByteOffset(source SourceID, runeOffset int) (byteOffset int, ok bool)
}
