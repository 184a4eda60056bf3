package contextutil

import (
	"context"

	"devdiary/internal/journal"
)

const sessionKey contextKey = "session"

// WithSession returns a copy of ctx carrying the caller's session.
func WithSession(ctx context.Context, s journal.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session stored in ctx, or an anonymous session.
func SessionFromContext(ctx context.Context) journal.Session {
	if s, ok := ctx.Value(sessionKey).(journal.Session); ok {
		return s
	}
	return journal.Session{}
}
