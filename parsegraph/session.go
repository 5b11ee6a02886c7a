package parsegraph

import (
	"github.com/Global19/powerquery-parser/ast"
	"github.com/Global19/powerquery-parser/nodeid"
)

// Session aggregates everything one parse needs: the identity allocator,
// the Node Id Map, and a root handle pointing at the topmost node (open or
// closed) if any.
//
// A Session is owned by exactly one logical driver at a time; there is no
// internal locking. Two sessions are always fully independent of each
// other.
type Session struct {
	allocator *Allocator
	idMap     *IdMap
	rootID    nodeid.ID
	hasRoot   bool
}

// NewSession returns a fresh session: no root, an empty map, and an id
// counter at zero.
func NewSession() *Session {
	return &Session{
		allocator: NewAllocator(),
		idMap:     NewIdMap(),
	}
}

// IdMap returns the session's Node Id Map for direct lookups.
func (s *Session) IdMap() *IdMap {
	return s.idMap
}

// HasRoot reports whether the session currently has a root node. It is false
// before the first root context is started and after a root leaf collapse.
func (s *Session) HasRoot() bool {
	return s.hasRoot
}

// RootXor returns a XorNode naming the topmost node in the session and
// true, or a zero XorNode and false if the session has no root (either
// nothing has been started yet, or the sole root-level context was deleted
// as a root leaf collapse).
func (s *Session) RootXor() (XorNode, bool) {
	if !s.hasRoot {
		return XorNode{}, false
	}
	xor, err := s.idMap.ExpectXor(s.rootID)
	if err != nil {
		// The root id was removed from both realms without clearing hasRoot;
		// this would be a bug in this package, not a caller error.
		return XorNode{}, false
	}
	return xor, true
}

// MaybeAst is the tolerant counterpart to IdMap.ExpectAst: it returns
// (node, true) if id names a closed ast.Node, or (nil, false) for any
// other outcome (open context, or id not present at all).
func (s *Session) MaybeAst(id nodeid.ID) (*ast.Node, bool) {
	n, err := s.idMap.ExpectAst(id)
	if err != nil {
		return nil, false
	}
	return n, true
}

// MaybeContext is the tolerant counterpart to IdMap.ExpectContext.
func (s *Session) MaybeContext(id nodeid.ID) (*Context, bool) {
	c, err := s.idMap.ExpectContext(id)
	if err != nil {
		return nil, false
	}
	return c, true
}

// MaybeParentID is the tolerant counterpart to IdMap.ExpectParentID.
func (s *Session) MaybeParentID(id nodeid.ID) (nodeid.ID, bool) {
	parent, err := s.idMap.ExpectParentID(id)
	if err != nil {
		return nodeid.None, false
	}
	return parent, true
}

// DeepCopy returns a fully independent snapshot of the session: its own
// allocator and Node Id Map, so that further mutation of the original is
// invisible to the copy and vice versa. Immutable ast.Node payloads are
// shared between the two. This is how speculative parsing realizes
// "attempt a production, roll back on failure": copy, mutate the copy,
// discard it if the attempt fails.
func (s *Session) DeepCopy() *Session {
	return &Session{
		allocator: s.allocator.Clone(),
		idMap:     s.idMap.DeepCopy(),
		rootID:    s.rootID,
		hasRoot:   s.hasRoot,
	}
}
