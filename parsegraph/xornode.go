package parsegraph

import (
	"github.com/Global19/powerquery-parser/ast"
	"github.com/Global19/powerquery-parser/nodeid"
)

// XorNode is a tagged handle naming either a still-open Context or an
// already-closed ast.Node by id. Consumers that walk the graph without
// caring which realm a node currently occupies work uniformly through this
// handle rather than querying astById/contextById themselves.
type XorNode struct {
	id  nodeid.ID
	ast *ast.Node
	ctx *Context
}

// xorFromAst wraps a closed ast.Node.
func xorFromAst(n *ast.Node) XorNode {
	return XorNode{id: n.ID(), ast: n}
}

// xorFromContext wraps an open Context.
func xorFromContext(c *Context) XorNode {
	return XorNode{id: c.ID(), ctx: c}
}

// ID returns the identity shared by both realms.
func (x XorNode) ID() nodeid.ID {
	return x.id
}

// IsAst reports whether the handle names a closed ast.Node.
func (x XorNode) IsAst() bool {
	return x.ast != nil
}

// IsContext reports whether the handle names an open Context.
func (x XorNode) IsContext() bool {
	return x.ctx != nil
}

// Ast returns the closed ast.Node and true if the handle names one, or
// (nil, false) if the handle names an open Context instead.
func (x XorNode) Ast() (*ast.Node, bool) {
	if x.ast == nil {
		return nil, false
	}
	return x.ast, true
}

// Context returns the open Context and true if the handle names one, or
// (nil, false) if the handle names a closed ast.Node instead.
func (x XorNode) Context() (*Context, bool) {
	if x.ctx == nil {
		return nil, false
	}
	return x.ctx, true
}
