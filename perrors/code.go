package perrors

// Code is a stable, programmatic identifier for the invariant an
// InvariantError reports. Code uses an unexported field so that only the
// codes declared in this package are valid values; callers match on Code via
// equality, never by constructing their own.
type Code struct {
	value string
}

// String returns the code's string representation, e.g. "ALREADY_CLOSED".
func (c Code) String() string {
	return c.value
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor; callers cannot create arbitrary codes.
func code(value string) Code {
	return Code{value: value}
}

var (
	// CodeAlreadyClosed indicates EndContext or DeleteContext was called on a
	// context id that has already been closed.
	CodeAlreadyClosed = code("ALREADY_CLOSED")

	// CodeIdentityMismatch indicates EndContext was called with an ast node
	// whose id differs from the context id it is meant to close.
	CodeIdentityMismatch = code("IDENTITY_MISMATCH")

	// CodeUnknownParent indicates a claimed parent id is absent from the
	// context map.
	CodeUnknownParent = code("UNKNOWN_PARENT")

	// CodeMultiChildDelete indicates DeleteContext was called on a context
	// with two or more children, which no grammar collapse should ever
	// produce.
	CodeMultiChildDelete = code("MULTI_CHILD_DELETE")

	// CodeUnknownContext indicates a lookup or deletion named a context id
	// that is not present in the id map.
	CodeUnknownContext = code("UNKNOWN_CONTEXT")

	// CodeUnknownAst indicates a lookup named an ast node id that is not
	// present in the id map.
	CodeUnknownAst = code("UNKNOWN_AST")

	// CodeUnknownId indicates a lookup named an id with no presence in
	// either the ast or context maps.
	CodeUnknownId = code("UNKNOWN_ID")
)
