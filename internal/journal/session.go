// Package journal answers read queries over journal entries without touching storage.
package journal

// Session identifies the user every operation is scoped to.
// The zero value is an anonymous session.
type Session struct {
	UserID int64
}

// Authenticated reports whether the session belongs to a user.
func (s Session) Authenticated() bool {
	return s.UserID > 0
}
