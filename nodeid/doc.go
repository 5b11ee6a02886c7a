// Package nodeid defines the bare node identifier type shared by the parse
// graph and its collaborators.
//
// An ID is unique within a single parse session, never reused even after the
// node it named is deleted, and carries no meaning beyond equality and the
// order in which it was allocated.
package nodeid
