package ast

import (
	"iter"

	"github.com/Global19/powerquery-parser/nodeid"
)

// IDSlice is a frozen, ordered sequence of node ids: a non-leaf node's
// children. It is the same shape as the toolchain's general-purpose frozen
// slice, specialized to nodeid.ID so a children list never needs to box its
// elements.
type IDSlice struct {
	ids []nodeid.ID
}

// WrapIDSlice takes ownership of ids and freezes it; callers must not
// retain a mutable reference to the backing array afterward.
func WrapIDSlice(ids []nodeid.ID) IDSlice {
	return IDSlice{ids: ids}
}

// WrapIDSliceClone defensively copies ids before freezing, for callers that
// cannot give up ownership of the backing array.
func WrapIDSliceClone(ids []nodeid.ID) IDSlice {
	clone := make([]nodeid.ID, len(ids))
	copy(clone, ids)
	return IDSlice{ids: clone}
}

// Len returns the number of ids.
func (s IDSlice) Len() int {
	return len(s.ids)
}

// Get returns the id at index i, panicking if i is out of range.
func (s IDSlice) Get(i int) nodeid.ID {
	return s.ids[i]
}

// GetOK returns the id at index i and true, or the zero ID and false if i
// is out of range.
func (s IDSlice) GetOK(i int) (nodeid.ID, bool) {
	if i < 0 || i >= len(s.ids) {
		return nodeid.None, false
	}
	return s.ids[i], true
}

// Iter yields ids in order.
func (s IDSlice) Iter() iter.Seq[nodeid.ID] {
	return func(yield func(nodeid.ID) bool) {
		for _, id := range s.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Iter2 yields (index, id) pairs in order.
func (s IDSlice) Iter2() iter.Seq2[int, nodeid.ID] {
	return func(yield func(int, nodeid.ID) bool) {
		for i, id := range s.ids {
			if !yield(i, id) {
				return
			}
		}
	}
}

// Clone returns a mutable copy of the underlying ids.
func (s IDSlice) Clone() []nodeid.ID {
	clone := make([]nodeid.ID, len(s.ids))
	copy(clone, s.ids)
	return clone
}
