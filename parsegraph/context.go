package parsegraph

import (
	"github.com/Global19/powerquery-parser/ast"
	"github.com/Global19/powerquery-parser/nodeid"
	"github.com/Global19/powerquery-parser/token"
)

// Context is an open, still-growing parse-tree entry. It carries its id,
// its grammar-production kind, the index of the first token it covers, an
// optional handle to that starting token, a running count of how many
// children it has ever had opened beneath it, an optional slot index
// recording its own position beneath its parent, and — once closed — the
// finished ast.Node it was promoted to.
//
// Context fields are unexported; all mutation happens through the Context
// Lifecycle operations (StartContext, EndContext, DeleteContext), never
// directly, so the invariants those operations maintain cannot be bypassed.
type Context struct {
	id              nodeid.ID
	kind            ast.Kind
	tokenIndexStart int
	startToken      token.Token
	hasStartToken   bool

	attributeCounter int

	attributeIndex    int
	hasAttributeIndex bool

	closedAst *ast.Node
}

// ID returns the context's identity. This is the same id the promoted
// ast.Node will carry once the context closes.
func (c *Context) ID() nodeid.ID {
	return c.id
}

// Kind returns the grammar production this context realizes.
func (c *Context) Kind() ast.Kind {
	return c.kind
}

// TokenIndexStart returns the index of the first token this context covers.
func (c *Context) TokenIndexStart() int {
	return c.tokenIndexStart
}

// MaybeStartToken returns the starting token and true if one was recorded,
// or the zero Token and false otherwise.
func (c *Context) MaybeStartToken() (token.Token, bool) {
	return c.startToken, c.hasStartToken
}

// AttributeCounter returns the number of children ever opened beneath this
// context. It never decreases, even across deletions of those children.
func (c *Context) AttributeCounter() int {
	return c.attributeCounter
}

// MaybeAttributeIndex returns this context's slot index beneath its own
// parent, and true, or (0, false) if it has none, which is the case only for
// a context that was started as the session's root.
func (c *Context) MaybeAttributeIndex() (int, bool) {
	return c.attributeIndex, c.hasAttributeIndex
}

// IsOpen reports whether the context has not yet been closed into an
// ast.Node.
func (c *Context) IsOpen() bool {
	return c.closedAst == nil
}

// MaybeAst returns the context's closed ast.Node and true once EndContext
// has closed it, or (nil, false) while it remains open.
func (c *Context) MaybeAst() (*ast.Node, bool) {
	if c.closedAst == nil {
		return nil, false
	}
	return c.closedAst, true
}

// clone returns an independent copy of the context, for use by DeepCopy.
// The closed ast.Node, if any, is shared: ast.Node is immutable, so aliasing
// it across the original and the copy is safe.
func (c *Context) clone() *Context {
	cp := *c
	return &cp
}
