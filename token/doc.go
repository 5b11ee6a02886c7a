// Package token defines the lexer-agnostic token shape the parser core
// stores on open contexts, and the bridge that builds it from an ANTLR
// token stream.
//
// The core itself never touches antlr.Token directly; every context records
// only a token.Token (or, for some contexts, nothing at all — only the
// starting token index). This keeps the core's data model honest about the
// external collaborator contract: the lexer is consumed, not owned.
package token
