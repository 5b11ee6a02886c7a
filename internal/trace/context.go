package trace

import "context"

// requestIDKey is an unexported context key type so WithRequestID's value
// can never collide with a key set by another package.
type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id, retrievable via
// RequestIDFrom. An empty id is a valid, distinct-from-absent value.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id stored in ctx by WithRequestID, and
// true, or ("", false) if ctx carries none.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
