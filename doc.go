// Package pqparser provides the incremental, error-tolerant parse-tree
// construction core for a Power Query / M language front-end, plus the
// auxiliary type-name renderer it exposes as a stable public contract.
//
// The lexer, the concrete M grammar, lexical error recovery, and downstream
// consumers (type inference, formatters, linters) are external
// collaborators; this module supplies the bookkeeping substrate they build
// on, not a complete compiler.
//
// # Architecture Overview
//
// The module is organized into tiers with strict dependency ordering:
//
//	Foundation tier (standard library only, except location, which also uses golang.org/x/text):
//	  - nodeid: the bare monotonic node identifier type
//	  - location: source positions, spans, and canonical source identifiers
//	  - perrors: the single structured InvariantError kind
//
//	Core tier (foundation only):
//	  - ast: closed node-kind enumeration and immutable ast.Node
//	  - token: lexer-agnostic token shape, with an ANTLR bridge
//	  - source: thread-safe source-content registry
//
//	Heart-of-the-system tier (core and foundation only):
//	  - parsegraph: the Identity Allocator, Node Id Map, Context Lifecycle,
//	    and Parse Session State — open contexts vs. closed ast nodes,
//	    queryable at every intermediate state of a parse
//	  - typename: the pure, total renderer from structured M type
//	    descriptors back to their canonical surface-syntax form
//
//	Ambient tier (everything below, plus logging/config/identity):
//	  - internal/trace: operation-boundary tracing over log/slog
//	  - config: optional driver-facing knobs loaded from a jsonc file
//	  - session: a *parsegraph.Session wrapped with a correlation id,
//	    logger, and config — the entry point a real driver uses
//	  - parsegraph/pqjson: read-only JSON snapshot export for editor tooling
//
// # Entry Points
//
// A driver starts a session and drives the Context Lifecycle as it enters
// and leaves grammar productions:
//
//	import "github.com/Global19/powerquery-parser/session"
//
//	sess := session.New(session.WithLogger(logger))
//	root, err := sess.StartContext(ctx, ast.KindListExpression, 0, tok, true, nodeid.None)
//	// ... StartContext/EndContext/DeleteContext for each production ...
//	xor, ok := sess.RootXor()
//
// Rendering a structured type descriptor back to its canonical M text:
//
//	import "github.com/Global19/powerquery-parser/typename"
//
//	s := typename.Render(typename.Primitive{Kind: typename.PrimitiveNumber})
//	// s == "number"
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/Global19/powerquery-parser/nodeid]: Node identifiers
//   - [github.com/Global19/powerquery-parser/location]: Source location tracking
//   - [github.com/Global19/powerquery-parser/perrors]: Structured invariant errors
//   - [github.com/Global19/powerquery-parser/ast]: Node kinds and ast.Node
//   - [github.com/Global19/powerquery-parser/token]: Lexer-agnostic tokens
//   - [github.com/Global19/powerquery-parser/source]: Source content registry
//   - [github.com/Global19/powerquery-parser/parsegraph]: The incremental parse-tree core
//   - [github.com/Global19/powerquery-parser/typename]: Type-name rendering
//   - [github.com/Global19/powerquery-parser/session]: Driver-facing session orchestration
//   - [github.com/Global19/powerquery-parser/config]: Driver configuration
package pqparser
