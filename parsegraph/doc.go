// Package parsegraph implements the incremental, error-tolerant parse-tree
// construction model: a two-realm node graph of still-open Context records
// and closed, immutable ast.Node records, unified under a single identity
// space so that a node's references remain valid across the transition from
// one realm to the other.
//
// A driver walks a grammar by calling StartContext on entering a
// production, EndContext on completing one, and DeleteContext to abandon a
// production that must be backed out of (a failed speculative parse, or a
// wrapper production that turned out to wrap nothing). The graph remains
// fully queryable after every call, including while productions are still
// open, which is what makes it usable for live-edited, partially invalid
// source.
//
// Every operation that can fail does so by returning a *perrors.InvariantError;
// there is no other error surface. A session may be deep-copied at any time
// to support speculative parsing with rollback.
package parsegraph
