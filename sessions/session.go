// Package sessions holds the client-side authenticated session state for the
// HR side of the portal. The session is an explicitly constructed object,
// injected into whatever needs it, rather than an ambient global.
package sessions

// UserIdentity is the signed-in HR user derived from a stored access token
type UserIdentity struct {
	ID    string
	Email string
	Role  string
}

// Session is the client-held auth state. Loading is true only while the
// initial derivation from the stored token is in flight; it resolves exactly
// once per Manager.
type Session struct {
	User    *UserIdentity
	Loading bool
}

// Authenticated reports whether an in-memory user is present
func (s Session) Authenticated() bool {
	return s.User != nil
}
