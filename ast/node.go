package ast

import (
	"fmt"

	"github.com/Global19/powerquery-parser/location"
	"github.com/Global19/powerquery-parser/nodeid"
)

// Node is an immutable, closed parse-tree entry produced when a context's
// grammar production completes. Its id is always the id of the context
// that closed into it, so references collected while the node was still
// open remain valid across the realm transition.
//
// A Node is never mutated after construction; all fields are unexported
// and reached only through accessor methods.
type Node struct {
	id       nodeid.ID
	kind     Kind
	isLeaf   bool
	children IDSlice
	span     location.Span
	text     string
	value    any
}

// NewLeaf constructs a leaf ast node: one with a literal payload and no
// children. It panics if kind is not a leaf kind.
func NewLeaf(id nodeid.ID, kind Kind, span location.Span, text string, value any) *Node {
	if !kind.IsLeaf() {
		panic(fmt.Sprintf("ast.NewLeaf: kind %s is not a leaf kind", kind))
	}
	if id.IsNone() {
		panic("ast.NewLeaf: zero id")
	}
	return &Node{id: id, kind: kind, isLeaf: true, span: span, text: text, value: value}
}

// NewNonLeaf constructs a non-leaf ast node carrying the given children in
// order. It panics if kind is a leaf kind.
func NewNonLeaf(id nodeid.ID, kind Kind, children IDSlice) *Node {
	if kind.IsLeaf() {
		panic(fmt.Sprintf("ast.NewNonLeaf: kind %s is a leaf kind", kind))
	}
	if id.IsNone() {
		panic("ast.NewNonLeaf: zero id")
	}
	return &Node{id: id, kind: kind, isLeaf: false, children: children}
}

// ID returns the node's identity, shared with the context that closed into it.
func (n *Node) ID() nodeid.ID {
	return n.id
}

// Kind returns the grammar production this node realizes.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsLeaf reports whether the node carries a literal payload instead of children.
func (n *Node) IsLeaf() bool {
	return n.isLeaf
}

// Children returns the node's ordered child ids. It is the zero IDSlice
// (length 0) for leaf nodes.
func (n *Node) Children() IDSlice {
	return n.children
}

// Span returns the source span covered by a leaf node's token(s). It is the
// zero Span for non-leaf nodes, whose span is instead derived by callers
// from their children's spans.
func (n *Node) Span() location.Span {
	return n.span
}

// Text returns a leaf node's raw source text. It is empty for non-leaf nodes.
func (n *Node) Text() string {
	return n.text
}

// Value returns a leaf node's interpreted literal value (e.g. a parsed
// number or unescaped text-literal string), or nil if the leaf kind has no
// interpreted value distinct from its text.
func (n *Node) Value() any {
	return n.value
}
