// Package ast defines the closed realm of finished parse-tree nodes: the
// node-kind enumeration and the immutable Node type that a context becomes
// once its grammar production completes.
//
// A Node never changes after construction. Its children, when it has any,
// are recorded as a frozen sequence of node ids; resolving an id back to a
// node or still-open context is the job of the parsegraph package, not this
// one. ast stays purely about shape: what kind of production this is,
// whether it is a leaf, and what its recorded data is.
package ast
