// Package source stores registered source content and answers the
// byte-offset/rune-offset/position conversions the parser core needs to
// turn lexer token positions into location.Span values.
//
// Registry implements location.PositionRegistry and
// location.RuneOffsetConverter; it is the registry the token package's
// Builder is built against in production, though any conforming
// implementation (e.g. a test double) works equally well. Register takes
// content already in memory; RegisterFile reads a path off disk and derives
// its file-backed location.SourceID.
package source
