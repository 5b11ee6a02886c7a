package parsegraph

import (
	"github.com/Global19/powerquery-parser/ast"
	"github.com/Global19/powerquery-parser/nodeid"
	"github.com/Global19/powerquery-parser/perrors"
	"github.com/Global19/powerquery-parser/token"
)

// StartContext opens a new context beneath parent (or as the session's
// root, if parent is nodeid.None) and returns it.
//
// If parent is nodeid.None, the new context becomes the session's root; a
// driver only ever does this once per session, at the very start of a
// parse. Otherwise parent must already be open in the session; StartContext
// fails with a *perrors.InvariantError (CodeUnknownParent) if it is not.
func (s *Session) StartContext(
	kind ast.Kind,
	tokenIndexStart int,
	startToken token.Token,
	hasStartToken bool,
	parent nodeid.ID,
) (*Context, error) {
	newID := s.allocator.Next()
	newCtx := &Context{
		id:              newID,
		kind:            kind,
		tokenIndexStart: tokenIndexStart,
		startToken:      startToken,
		hasStartToken:   hasStartToken,
	}

	if parent.IsNone() {
		s.idMap.contextById[newID] = newCtx
		s.rootID = newID
		s.hasRoot = true
		return newCtx, nil
	}

	parentCtx, ok := s.idMap.contextById[parent]
	if !ok {
		return nil, perrors.NewBuilder(perrors.CodeUnknownParent, "start: claimed parent is not an open context").
			WithDetail("parent", parent.String()).
			Build()
	}

	newCtx.attributeIndex = parentCtx.attributeCounter
	newCtx.hasAttributeIndex = true
	parentCtx.attributeCounter++

	s.idMap.parentById[newID] = parent
	s.idMap.childrenById[parent] = append(s.idMap.childrenById[parent], newID)
	s.idMap.contextById[newID] = newCtx

	return newCtx, nil
}

// EndContext closes ctx by binding astNode to it, promoting it from the
// context realm to the ast realm without changing its identity.
//
// EndContext fails with a *perrors.InvariantError when:
//   - ctx has already been closed (CodeAlreadyClosed);
//   - astNode's id differs from ctx's id (CodeIdentityMismatch);
//   - ctx is not currently registered in the session (CodeUnknownContext).
//
// All preconditions are checked before any mutation is performed.
//
// It returns the parent context to resume parsing under, or (nil, nil) if
// the closed node was the session's root, or if its parent had itself
// already been closed (which correct driver discipline never produces).
func (s *Session) EndContext(ctx *Context, astNode *ast.Node) (*Context, error) {
	if !ctx.IsOpen() {
		return nil, perrors.NewBuilder(perrors.CodeAlreadyClosed, "end: context already closed").
			WithDetail("id", ctx.id.String()).
			Build()
	}
	if ctx.id != astNode.ID() {
		return nil, perrors.NewBuilder(perrors.CodeIdentityMismatch, "end: ast node id does not match context id").
			WithDetail("contextId", ctx.id.String()).
			WithDetail("astId", astNode.ID().String()).
			Build()
	}
	if _, ok := s.idMap.contextById[ctx.id]; !ok {
		return nil, perrors.NewBuilder(perrors.CodeUnknownContext, "end: context not registered in session").
			WithDetail("id", ctx.id.String()).
			Build()
	}

	if astNode.IsLeaf() {
		s.idMap.leafIds = append(s.idMap.leafIds, ctx.id)
	}

	s.idMap.astById[ctx.id] = astNode
	delete(s.idMap.contextById, ctx.id)
	ctx.closedAst = astNode

	parentID, hasParent := s.idMap.parentById[ctx.id]
	if !hasParent {
		return nil, nil
	}
	parentCtx, stillOpen := s.idMap.contextById[parentID]
	if !stillOpen {
		return nil, nil
	}
	return parentCtx, nil
}

// DeleteContext removes the open context named by nodeId, reconciling the
// graph so that the abandonment of a partially-entered production leaves
// the rest of the tree intact.
//
// DeleteContext fails with a *perrors.InvariantError when:
//   - nodeId is not an open context (CodeUnknownContext);
//   - nodeId has two or more children (CodeMultiChildDelete) — no grammar
//     collapse should ever need to discard siblings, so this signals a
//     driver bug rather than a normal abandonment.
//
// Deleting a context with zero children is a leaf deletion. Deleting one
// with exactly one child collapses that child into nodeId's place: if
// nodeId had a parent, the child is spliced into the parent's children
// list at nodeId's old slot; if nodeId was the root, the child is promoted
// to root. It returns the parent context to resume parsing under, or
// (nil, nil) if nodeId was the root (whether or not a child was promoted).
func (s *Session) DeleteContext(nodeId nodeid.ID) (*Context, error) {
	ctx, ok := s.idMap.contextById[nodeId]
	if !ok {
		return nil, perrors.NewBuilder(perrors.CodeUnknownContext, "delete: not an open context").
			WithDetail("id", nodeId.String()).
			Build()
	}

	children := s.idMap.childrenById[nodeId]
	if len(children) >= 2 {
		return nil, perrors.NewBuilder(perrors.CodeMultiChildDelete, "delete: context has multiple children").
			WithDetail("id", nodeId.String()).
			Build()
	}

	parentID, hasParent := s.idMap.parentById[nodeId]

	switch {
	case len(children) == 0 && hasParent:
		// Case 1: leaf collapse. Splice nodeId out of the parent's children
		// list, preserving the order of the remaining siblings.
		s.removeChild(parentID, nodeId)

	case len(children) == 0 && !hasParent:
		// Case 2: root leaf collapse. The tree becomes empty.
		s.hasRoot = false
		s.rootID = nodeid.None

	case hasParent:
		// Case 3: interior collapse. The single child takes nodeId's slot.
		childID := children[0]
		s.replaceChild(parentID, nodeId, childID)
		s.idMap.parentById[childID] = parentID
		if childCtx, stillOpen := s.idMap.contextById[childID]; stillOpen {
			childCtx.attributeIndex = ctx.attributeIndex
			childCtx.hasAttributeIndex = ctx.hasAttributeIndex
		}

	default:
		// Case 4: root collapse. Promote the sole child to root.
		childID := children[0]
		delete(s.idMap.parentById, childID)
		s.rootID = childID
		s.hasRoot = true
	}

	delete(s.idMap.contextById, nodeId)
	delete(s.idMap.childrenById, nodeId)
	delete(s.idMap.parentById, nodeId)
	s.removeLeaf(nodeId)

	if !hasParent {
		return nil, nil
	}
	parentCtx, stillOpen := s.idMap.contextById[parentID]
	if !stillOpen {
		return nil, nil
	}
	return parentCtx, nil
}

// removeChild deletes childID from parentID's children list, preserving
// the order of the remaining entries.
func (s *Session) removeChild(parentID, childID nodeid.ID) {
	siblings := s.idMap.childrenById[parentID]
	out := siblings[:0]
	for _, id := range siblings {
		if id != childID {
			out = append(out, id)
		}
	}
	s.idMap.childrenById[parentID] = out
}

// replaceChild substitutes replacementID for oldID in parentID's children
// list, keeping the replacement at oldID's original index.
func (s *Session) replaceChild(parentID, oldID, replacementID nodeid.ID) {
	siblings := s.idMap.childrenById[parentID]
	for i, id := range siblings {
		if id == oldID {
			siblings[i] = replacementID
			return
		}
	}
}

// removeLeaf deletes id from the leaf-id list if present.
func (s *Session) removeLeaf(id nodeid.ID) {
	leaves := s.idMap.leafIds
	for i, leafID := range leaves {
		if leafID == id {
			s.idMap.leafIds = append(leaves[:i], leaves[i+1:]...)
			return
		}
	}
}
