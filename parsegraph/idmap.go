package parsegraph

import (
	"iter"

	"github.com/Global19/powerquery-parser/ast"
	"github.com/Global19/powerquery-parser/nodeid"
	"github.com/Global19/powerquery-parser/perrors"
)

// IdMap is the relational core of a parse session: four id-indexed
// mappings plus an order-of-closure list of closed leaf ids.
//
// IdMap is a passive data substrate. Its Expect* lookups either return the
// requested entity or fail with a *perrors.InvariantError naming the
// missing id; there is no "soft" lookup at this layer. Callers that
// tolerate absence phrase their own queries as Maybe* wrappers against a
// Session instead. IdMap is mutated only by the Context Lifecycle
// operations in this package (StartContext, EndContext, DeleteContext);
// direct mutation from outside the package is impossible since its fields
// are unexported.
type IdMap struct {
	astById      map[nodeid.ID]*ast.Node
	contextById  map[nodeid.ID]*Context
	parentById   map[nodeid.ID]nodeid.ID
	childrenById map[nodeid.ID][]nodeid.ID
	leafIds      []nodeid.ID
}

// NewIdMap returns an empty IdMap.
func NewIdMap() *IdMap {
	return &IdMap{
		astById:      make(map[nodeid.ID]*ast.Node),
		contextById:  make(map[nodeid.ID]*Context),
		parentById:   make(map[nodeid.ID]nodeid.ID),
		childrenById: make(map[nodeid.ID][]nodeid.ID),
	}
}

// ExpectAst returns the closed ast.Node for id, or an InvariantError
// (CodeUnknownAst) if id is not present in astById.
func (m *IdMap) ExpectAst(id nodeid.ID) (*ast.Node, error) {
	n, ok := m.astById[id]
	if !ok {
		return nil, perrors.NewBuilder(perrors.CodeUnknownAst, "ast node not found").
			WithDetail("id", id.String()).
			Build()
	}
	return n, nil
}

// ExpectContext returns the open Context for id, or an InvariantError
// (CodeUnknownContext) if id is not present in contextById.
func (m *IdMap) ExpectContext(id nodeid.ID) (*Context, error) {
	c, ok := m.contextById[id]
	if !ok {
		return nil, perrors.NewBuilder(perrors.CodeUnknownContext, "context not found").
			WithDetail("id", id.String()).
			Build()
	}
	return c, nil
}

// ExpectXor returns a XorNode naming id in whichever realm it currently
// occupies, or an InvariantError (CodeUnknownId) if id is in neither.
func (m *IdMap) ExpectXor(id nodeid.ID) (XorNode, error) {
	if n, ok := m.astById[id]; ok {
		return xorFromAst(n), nil
	}
	if c, ok := m.contextById[id]; ok {
		return xorFromContext(c), nil
	}
	return XorNode{}, perrors.NewBuilder(perrors.CodeUnknownId, "id not found in either realm").
		WithDetail("id", id.String()).
		Build()
}

// ExpectChildren returns a copy of id's ordered child-id list. It succeeds
// (returning an empty, non-nil slice) for a registered id with no
// children; it fails only if id is in neither realm.
func (m *IdMap) ExpectChildren(id nodeid.ID) ([]nodeid.ID, error) {
	if _, err := m.ExpectXor(id); err != nil {
		return nil, err
	}
	children := m.childrenById[id]
	out := make([]nodeid.ID, len(children))
	copy(out, children)
	return out, nil
}

// ExpectParentID returns id's parent id, or an InvariantError
// (CodeUnknownParent) if id has no parent mapping (it is root, or id is
// unregistered).
func (m *IdMap) ExpectParentID(id nodeid.ID) (nodeid.ID, error) {
	parent, ok := m.parentById[id]
	if !ok {
		return nodeid.None, perrors.NewBuilder(perrors.CodeUnknownParent, "no parent recorded for id").
			WithDetail("id", id.String()).
			Build()
	}
	return parent, nil
}

// LeafIDs returns the order-of-closure sequence of ids closed as leaf
// ast-nodes and not since deleted.
func (m *IdMap) LeafIDs() iter.Seq[nodeid.ID] {
	return func(yield func(nodeid.ID) bool) {
		for _, id := range m.leafIds {
			if !yield(id) {
				return
			}
		}
	}
}

// LeafIDsLen returns the number of entries in the leaf-id list.
func (m *IdMap) LeafIDsLen() int {
	return len(m.leafIds)
}

// DeepCopy returns an independent IdMap whose mutations do not affect the
// original. The four mappings and the leaf-id list are duplicated; Context
// records are cloned (they are mutable), while ast.Node records are shared
// (they are never mutated after construction, so sharing them is safe).
func (m *IdMap) DeepCopy() *IdMap {
	cp := NewIdMap()

	for id, n := range m.astById {
		cp.astById[id] = n
	}
	for id, c := range m.contextById {
		cp.contextById[id] = c.clone()
	}
	for id, parent := range m.parentById {
		cp.parentById[id] = parent
	}
	for id, children := range m.childrenById {
		dup := make([]nodeid.ID, len(children))
		copy(dup, children)
		cp.childrenById[id] = dup
	}
	cp.leafIds = make([]nodeid.ID, len(m.leafIds))
	copy(cp.leafIds, m.leafIds)

	return cp
}
