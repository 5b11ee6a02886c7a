package perrors

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// InvariantError is the single error type raised by the parse graph. It
// signals a contract breach by the caller or a bug within the graph itself;
// it is never recoverable and never carries severities or collection
// semantics beyond message, code, and structured details.
type InvariantError struct {
	code    Code
	message string
	details map[string]string
}

// Code returns the stable identifier for which invariant failed.
func (e *InvariantError) Code() Code {
	return e.code
}

// Details returns a copy of the structured detail map (typically the
// offending ids). Mutating the returned map does not affect the error.
func (e *InvariantError) Details() map[string]string {
	if len(e.details) == 0 {
		return nil
	}
	return maps.Clone(e.details)
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	if len(e.details) == 0 {
		return fmt.Sprintf("%s: %s", e.code, e.message)
	}
	keys := make([]string, 0, len(e.details))
	for k := range e.details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, e.details[k]))
	}
	return fmt.Sprintf("%s: %s (%s)", e.code, e.message, strings.Join(pairs, ", "))
}

// Is reports whether target is an *InvariantError with the same code,
// enabling errors.Is(err, perrors.New(perrors.CodeAlreadyClosed, ...)) style
// comparisons as well as the common errors.Is(err, &InvariantError{}) shape
// when callers only care about the type.
func (e *InvariantError) Is(target error) bool {
	other, ok := target.(*InvariantError)
	if !ok {
		return false
	}
	if other == nil || other.code.IsZero() {
		return true
	}
	return other.code == e.code
}

// New constructs an InvariantError with no structured details. Use
// NewWithDetails or the Builder when detail context is available.
func New(code Code, message string) *InvariantError {
	if code.IsZero() {
		panic("perrors.New: zero code")
	}
	if message == "" {
		panic("perrors.New: empty message")
	}
	return &InvariantError{code: code, message: message}
}

// NewWithDetails constructs an InvariantError carrying structured details.
func NewWithDetails(code Code, message string, details map[string]string) *InvariantError {
	err := New(code, message)
	if len(details) > 0 {
		err.details = maps.Clone(details)
	}
	return err
}
