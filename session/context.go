package session

import "context"

// contextKey is a custom type for context keys. Using an unexported type
// prevents collisions with context keys defined in other packages.
type contextKey string

const sessionIDContextKey contextKey = "session_id"

// NewContextWithID returns a child context carrying the authenticated
// session's ID. The auth middleware stores it here after validating the
// bearer token.
func NewContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDContextKey, id)
}

// IDFromContext extracts the session ID placed in the context by the auth
// middleware. The second result is false when no ID is present, which means
// the request did not pass through the middleware.
func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDContextKey).(string)
	return id, ok
}
