package perrors

// Builder provides fluent construction of InvariantError values.
//
// Example:
//
//	err := perrors.NewBuilder(perrors.CodeUnknownContext, "context not found").
//	    WithDetail("id", id.String()).
//	    Build()
type Builder struct {
	code    Code
	message string
	details map[string]string
}

// NewBuilder starts building an InvariantError with its required fields.
//
// NewBuilder panics if code is zero or message is empty; these are
// programmer errors caught at construction time rather than deferred.
func NewBuilder(code Code, message string) *Builder {
	if code.IsZero() {
		panic("perrors.NewBuilder: zero code")
	}
	if message == "" {
		panic("perrors.NewBuilder: empty message")
	}
	return &Builder{code: code, message: message}
}

// WithDetail adds a single key-value detail, typically an offending id.
//
// Multiple calls to WithDetail accumulate; a later call with the same key
// overwrites the earlier value.
func (b *Builder) WithDetail(key, value string) *Builder {
	if b.details == nil {
		b.details = make(map[string]string, 1)
	}
	b.details[key] = value
	return b
}

// Build returns the constructed InvariantError.
func (b *Builder) Build() *InvariantError {
	return NewWithDetails(b.code, b.message, b.details)
}
