// Package guard implements the client-side route authorization decision:
// given a navigated path and the current auth session, decide whether to
// render content, redirect to sign-in, or redirect an already-authenticated
// user away from the auth entry pages.
package guard

// Decision is the outcome of evaluating a navigation
type Decision int

const (
	// Pending means the initial session check has not resolved yet; render a
	// loading indicator and make no redirect decision.
	Pending Decision = iota
	// Allow renders the requested content
	Allow
	// RedirectToLogin sends an unauthenticated user to the sign-in page
	RedirectToLogin
	// RedirectToDashboard sends an authenticated user away from sign-in/sign-up
	RedirectToDashboard
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToDashboard:
		return "redirect-to-dashboard"
	default:
		return "unknown"
	}
}

// Redirect reports whether the decision issues a navigation side effect
func (d Decision) Redirect() bool {
	return d == RedirectToLogin || d == RedirectToDashboard
}

// Snapshot is the auth state a decision is computed from
type Snapshot struct {
	Loading     bool   // Initial session derivation still in flight
	HasUser     bool   // An in-memory user exists
	StoredToken string // Persisted access token, "" when none
}

// Decide is the pure decision function. It is recomputed on every navigation
// and never persisted.
func (p Policy) Decide(pathname string, snapshot Snapshot) Decision {
	if snapshot.Loading {
		return Pending
	}

	authenticated := p.authenticated(snapshot)

	if p.isPublic(pathname) {
		// An authenticated user has no business on the sign-in/sign-up pages
		if authenticated && p.isAuthEntry(pathname) {
			return RedirectToDashboard
		}
		return Allow
	}

	if !authenticated {
		return RedirectToLogin
	}

	return Allow
}

// authenticated combines the in-memory user with the persisted token
// fallback. When RevalidateExpiry is set, a stored token only counts while it
// is still within its validity window.
func (p Policy) authenticated(snapshot Snapshot) bool {
	if snapshot.HasUser {
		return true
	}
	if snapshot.StoredToken == "" {
		return false
	}
	if p.RevalidateExpiry && p.TokenExpired != nil {
		return !p.TokenExpired(snapshot.StoredToken)
	}
	return true
}
