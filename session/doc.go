// Package session is the glue a real parsing driver reaches for, layered
// strictly above parsegraph. A Session wraps a *parsegraph.Session, stamps
// it with a correlation id, and carries an optional logger and config. It
// is the only package in this module allowed to know about tracing,
// configuration, or identity: parsegraph itself stays a pure,
// dependency-free bookkeeping library.
package session
