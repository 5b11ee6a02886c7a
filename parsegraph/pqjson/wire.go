package pqjson

import (
	"encoding/json"

	"github.com/Global19/powerquery-parser/location"
	"github.com/Global19/powerquery-parser/nodeid"
	"github.com/Global19/powerquery-parser/parsegraph"
)

// positionWire is the JSON wire format for location.Position.
type positionWire struct {
	Line   int  `json:"line"`
	Column int  `json:"column"`
	Byte   *int `json:"byte,omitzero"`
}

// spanWire is the JSON wire format for location.Span.
type spanWire struct {
	Source string       `json:"source"`
	Start  positionWire `json:"start"`
	End    positionWire `json:"end"`
}

// nodeWire is the JSON wire format for one node of the graph, in whichever
// realm it currently occupies.
type nodeWire struct {
	ID             string     `json:"id"`
	Kind           string     `json:"kind"`
	Open           bool       `json:"open"`
	AttributeIndex *int       `json:"attributeIndex,omitzero"`
	Text           string     `json:"text,omitzero"`
	Span           *spanWire  `json:"span,omitzero"`
	Children       []nodeWire `json:"children,omitzero"`
}

// snapshotWire is the top-level wire format returned by Snapshot.
type snapshotWire struct {
	Root *nodeWire `json:"root,omitzero"`
}

func toPositionWire(p location.Position) positionWire {
	wire := positionWire{Line: p.Line, Column: p.Column}
	if p.HasByte() {
		b := p.Byte
		wire.Byte = &b
	}
	return wire
}

func toSpanWire(s location.Span) *spanWire {
	if s.IsZero() {
		return nil
	}
	return &spanWire{
		Source: s.Source.String(),
		Start:  toPositionWire(s.Start),
		End:    toPositionWire(s.End),
	}
}

// toNodeWire recursively converts a XorNode into its wire form, resolving
// children through m. It panics if the graph references an id that m
// cannot resolve: a snapshot is only ever taken of a session's own,
// internally-consistent Node Id Map, so such a reference would indicate a
// bug in this package or in parsegraph itself, not a caller error.
func toNodeWire(m *parsegraph.IdMap, x parsegraph.XorNode) nodeWire {
	if astNode, ok := x.Ast(); ok {
		wire := nodeWire{ID: astNode.ID().String(), Kind: astNode.Kind().String()}
		if astNode.IsLeaf() {
			wire.Text = astNode.Text()
			wire.Span = toSpanWire(astNode.Span())
			return wire
		}
		children := astNode.Children()
		wire.Children = make([]nodeWire, 0, children.Len())
		for childID := range children.Iter() {
			childXor, err := m.ExpectXor(childID)
			if err != nil {
				panic("pqjson: unresolvable child id in closed ast node: " + err.Error())
			}
			wire.Children = append(wire.Children, toNodeWire(m, childXor))
		}
		return wire
	}

	ctx, _ := x.Context()
	wire := nodeWire{ID: ctx.ID().String(), Kind: ctx.Kind().String(), Open: true}
	if idx, ok := ctx.MaybeAttributeIndex(); ok {
		wire.AttributeIndex = &idx
	}
	childIDs, err := m.ExpectChildren(ctx.ID())
	if err != nil {
		panic("pqjson: unresolvable open context id: " + err.Error())
	}
	wire.Children = make([]nodeWire, 0, len(childIDs))
	for _, childID := range childIDs {
		childXor, err := m.ExpectXor(childID)
		if err != nil {
			panic("pqjson: unresolvable child id in open context: " + err.Error())
		}
		wire.Children = append(wire.Children, toNodeWire(m, childXor))
	}
	return wire
}

// Snapshot returns a JSON representation of s's current graph, rooted at
// whatever node currently occupies the session's root slot (open or
// closed), or a snapshot with no root field if the session has none yet.
//
// Snapshot never fails: it panics on an internal inconsistency instead
// (see toNodeWire), mirroring the toolchain's own "this should never
// happen with our wire types" framing around JSON marshaling of types it
// controls end to end.
func Snapshot(s *parsegraph.Session) json.RawMessage {
	var wire snapshotWire
	if root, ok := s.RootXor(); ok {
		n := toNodeWire(s.IdMap(), root)
		wire.Root = &n
	}
	data, err := json.Marshal(wire)
	if err != nil {
		panic("pqjson: unexpected JSON marshal error: " + err.Error())
	}
	return data
}

// SnapshotSubtree returns a JSON representation of the single subtree
// rooted at id, or an error if id is present in neither realm of m.
func SnapshotSubtree(m *parsegraph.IdMap, id nodeid.ID) (json.RawMessage, error) {
	xor, err := m.ExpectXor(id)
	if err != nil {
		return nil, err
	}
	n := toNodeWire(m, xor)
	data, err := json.Marshal(n)
	if err != nil {
		panic("pqjson: unexpected JSON marshal error: " + err.Error())
	}
	return data, nil
}
