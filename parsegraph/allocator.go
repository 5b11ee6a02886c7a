package parsegraph

import "github.com/Global19/powerquery-parser/nodeid"

// Allocator issues monotonically increasing node identifiers within a
// single parse session. It is not shared across sessions and is not
// re-entrant; callers must serialize access (the whole package assumes a
// single logical driver per session, per its concurrency model).
type Allocator struct {
	counter nodeid.ID
}

// NewAllocator returns an allocator with its counter at zero, so the first
// call to Next returns nodeid.ID(1).
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next increments the counter and returns the new id.
func (a *Allocator) Next() nodeid.ID {
	a.counter++
	return a.counter
}

// Counter returns the most recently issued id (zero if Next has never been
// called).
func (a *Allocator) Counter() nodeid.ID {
	return a.counter
}

// Clone returns an independent copy of the allocator, for use by DeepCopy.
func (a *Allocator) Clone() *Allocator {
	return &Allocator{counter: a.counter}
}
