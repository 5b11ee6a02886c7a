// Package perrors defines the single structured error kind raised by the
// parse graph and its collaborators.
//
// There is exactly one error type, InvariantError. It signals that a caller
// violated a documented precondition or that the graph itself has become
// internally inconsistent; it is never a recoverable, expected-in-normal-use
// condition. Callers distinguish which invariant failed via Code, not by
// parsing the message string.
package perrors
