package parsegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Global19/powerquery-parser/ast"
	"github.com/Global19/powerquery-parser/location"
	"github.com/Global19/powerquery-parser/nodeid"
	"github.com/Global19/powerquery-parser/parsegraph"
	"github.com/Global19/powerquery-parser/perrors"
	"github.com/Global19/powerquery-parser/token"
)

func leafSpan() location.Span {
	source := location.MustNewSourceID("inline:lifecycle_test")
	return location.PointWithByte(source, 1, 1, 0)
}

func TestStartContextRoot(t *testing.T) {
	s := parsegraph.NewSession()

	root, err := s.StartContext(ast.KindListExpression, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	assert.True(t, s.HasRoot())
	xor, ok := s.RootXor()
	require.True(t, ok)
	assert.Equal(t, root.ID(), xor.ID())
	assert.True(t, xor.IsContext())

	_, hasIndex := root.MaybeAttributeIndex()
	assert.False(t, hasIndex)
}

func TestStartContextChildAssignsAttributeIndex(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindListExpression, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	first, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, root.ID())
	require.NoError(t, err)
	second, err := s.StartContext(ast.KindCsv, 1, token.Token{}, false, root.ID())
	require.NoError(t, err)

	firstIdx, ok := first.MaybeAttributeIndex()
	require.True(t, ok)
	assert.Equal(t, 0, firstIdx)

	secondIdx, ok := second.MaybeAttributeIndex()
	require.True(t, ok)
	assert.Equal(t, 1, secondIdx)

	assert.Equal(t, 2, root.AttributeCounter())

	children, err := s.IdMap().ExpectChildren(root.ID())
	require.NoError(t, err)
	assert.Equal(t, []nodeid.ID{first.ID(), second.ID()}, children)
}

func TestStartContextUnknownParentFails(t *testing.T) {
	s := parsegraph.NewSession()
	_, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, nodeid.ID(99))
	require.Error(t, err)

	var invErr *perrors.InvariantError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, perrors.CodeUnknownParent, invErr.Code())
}

func TestEndContextClosesLeafAndReturnsParent(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindListExpression, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	child, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, root.ID())
	require.NoError(t, err)

	leaf := ast.NewLeaf(child.ID(), ast.KindConstant, leafSpan(), "{", nil)
	parent, err := s.EndContext(child, leaf)
	require.NoError(t, err)
	require.NotNil(t, parent)
	assert.Equal(t, root.ID(), parent.ID())

	got, err := s.IdMap().ExpectAst(child.ID())
	require.NoError(t, err)
	assert.Equal(t, "{", got.Text())

	_, err = s.IdMap().ExpectContext(child.ID())
	assert.Error(t, err)

	assert.Equal(t, 1, s.IdMap().LeafIDsLen())
}

func TestEndContextRootReturnsNilParent(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	leaf := ast.NewLeaf(root.ID(), ast.KindConstant, leafSpan(), "1", nil)
	parent, err := s.EndContext(root, leaf)
	require.NoError(t, err)
	assert.Nil(t, parent)
}

func TestEndContextAlreadyClosedFails(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	leaf := ast.NewLeaf(root.ID(), ast.KindConstant, leafSpan(), "1", nil)
	_, err = s.EndContext(root, leaf)
	require.NoError(t, err)

	_, err = s.EndContext(root, leaf)
	require.Error(t, err)

	var invErr *perrors.InvariantError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, perrors.CodeAlreadyClosed, invErr.Code())
}

func TestEndContextIdentityMismatchFails(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindListExpression, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	child, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, root.ID())
	require.NoError(t, err)

	wrongID := child.ID() + 1000
	mismatched := ast.NewLeaf(wrongID, ast.KindConstant, leafSpan(), "{", nil)

	_, err = s.EndContext(child, mismatched)
	require.Error(t, err)

	var invErr *perrors.InvariantError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, perrors.CodeIdentityMismatch, invErr.Code())

	// the precondition failure must not have mutated state: child is still open.
	_, err = s.IdMap().ExpectContext(child.ID())
	assert.NoError(t, err)
}

func TestDeleteContextLeafCollapseWithParent(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindListExpression, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	first, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, root.ID())
	require.NoError(t, err)
	second, err := s.StartContext(ast.KindCsv, 1, token.Token{}, false, root.ID())
	require.NoError(t, err)

	parent, err := s.DeleteContext(first.ID())
	require.NoError(t, err)
	require.NotNil(t, parent)
	assert.Equal(t, root.ID(), parent.ID())

	children, err := s.IdMap().ExpectChildren(root.ID())
	require.NoError(t, err)
	assert.Equal(t, []nodeid.ID{second.ID()}, children)

	_, err = s.IdMap().ExpectContext(first.ID())
	assert.Error(t, err)
}

func TestDeleteContextRootLeafCollapseEmptiesTree(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	parent, err := s.DeleteContext(root.ID())
	require.NoError(t, err)
	assert.Nil(t, parent)
	assert.False(t, s.HasRoot())

	_, ok := s.RootXor()
	assert.False(t, ok)
}

func TestDeleteContextInteriorCollapseSplicesChild(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindListExpression, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	middle, err := s.StartContext(ast.KindParenthesizedExpression, 0, token.Token{}, false, root.ID())
	require.NoError(t, err)
	grandchild, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, middle.ID())
	require.NoError(t, err)

	parent, err := s.DeleteContext(middle.ID())
	require.NoError(t, err)
	require.NotNil(t, parent)
	assert.Equal(t, root.ID(), parent.ID())

	children, err := s.IdMap().ExpectChildren(root.ID())
	require.NoError(t, err)
	assert.Equal(t, []nodeid.ID{grandchild.ID()}, children)

	newParent, err := s.IdMap().ExpectParentID(grandchild.ID())
	require.NoError(t, err)
	assert.Equal(t, root.ID(), newParent)

	// grandchild inherits middle's attribute index (0, the only child of root).
	idx, ok := s.MaybeContext(grandchild.ID())
	require.True(t, ok)
	attrIdx, hasIdx := idx.MaybeAttributeIndex()
	require.True(t, hasIdx)
	assert.Equal(t, 0, attrIdx)
}

func TestDeleteContextRootCollapsePromotesChild(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindParenthesizedExpression, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)
	child, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, root.ID())
	require.NoError(t, err)

	parent, err := s.DeleteContext(root.ID())
	require.NoError(t, err)
	assert.Nil(t, parent)

	assert.True(t, s.HasRoot())
	xor, ok := s.RootXor()
	require.True(t, ok)
	assert.Equal(t, child.ID(), xor.ID())

	_, err = s.IdMap().ExpectParentID(child.ID())
	assert.Error(t, err)
}

func TestDeleteContextMultiChildFails(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindListExpression, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)
	_, err = s.StartContext(ast.KindConstant, 0, token.Token{}, false, root.ID())
	require.NoError(t, err)
	_, err = s.StartContext(ast.KindCsv, 1, token.Token{}, false, root.ID())
	require.NoError(t, err)

	_, err = s.DeleteContext(root.ID())
	require.Error(t, err)

	var invErr *perrors.InvariantError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, perrors.CodeMultiChildDelete, invErr.Code())

	// precondition failure: root must still be open with both children intact.
	children, err := s.IdMap().ExpectChildren(root.ID())
	require.NoError(t, err)
	assert.Len(t, children, 2)
}

func TestDeleteContextUnknownIDFails(t *testing.T) {
	s := parsegraph.NewSession()
	_, err := s.DeleteContext(nodeid.ID(42))
	require.Error(t, err)

	var invErr *perrors.InvariantError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, perrors.CodeUnknownContext, invErr.Code())
}

func TestDeepCopyIsIndependent(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindListExpression, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	cp := s.DeepCopy()

	_, err = cp.StartContext(ast.KindConstant, 0, token.Token{}, false, root.ID())
	require.NoError(t, err)

	origChildren, err := s.IdMap().ExpectChildren(root.ID())
	require.NoError(t, err)
	assert.Empty(t, origChildren)

	cpChildren, err := cp.IdMap().ExpectChildren(root.ID())
	require.NoError(t, err)
	assert.Len(t, cpChildren, 1)
}

func TestLeafIDsOrderOfClosure(t *testing.T) {
	s := parsegraph.NewSession()
	root, err := s.StartContext(ast.KindListExpression, 0, token.Token{}, false, nodeid.None)
	require.NoError(t, err)

	first, err := s.StartContext(ast.KindConstant, 0, token.Token{}, false, root.ID())
	require.NoError(t, err)
	second, err := s.StartContext(ast.KindIdentifier, 1, token.Token{}, false, root.ID())
	require.NoError(t, err)

	_, err = s.EndContext(second, ast.NewLeaf(second.ID(), ast.KindIdentifier, leafSpan(), "b", nil))
	require.NoError(t, err)
	_, err = s.EndContext(first, ast.NewLeaf(first.ID(), ast.KindConstant, leafSpan(), "a", nil))
	require.NoError(t, err)

	var order []nodeid.ID
	for id := range s.IdMap().LeafIDs() {
		order = append(order, id)
	}
	assert.Equal(t, []nodeid.ID{second.ID(), first.ID()}, order)
}
