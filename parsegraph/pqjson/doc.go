// Package pqjson exports a read-only JSON snapshot of a parse graph for
// editor tooling to inspect. It uses explicit, hand-written wire structs
// (the same discipline the surrounding toolchain's diagnostic JSON encoder
// uses) rather than a generic reflection-based normalizer, since this
// module never evaluates or re-serializes arbitrary M values.
//
// Snapshot export is one-directional: there is no JSON-to-graph decoding,
// since persistent storage of the parse graph across process lifetimes is
// an explicit non-goal.
package pqjson
