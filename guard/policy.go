package guard

import "strings"

// Policy is the injected route vocabulary: which exact paths are public,
// which prefixes are public regardless of suffix, and which public paths are
// auth entry points that authenticated users get bounced away from.
type Policy struct {
	// PublicPaths are exact paths that never require a session
	PublicPaths map[string]struct{}
	// PublicPrefixes are path prefixes that are public regardless of suffix.
	// The interview-session namespace lives here: interview links are shared
	// with candidates who have no account.
	PublicPrefixes []string
	// AuthEntryPaths are the sign-in/sign-up pages
	AuthEntryPaths map[string]struct{}
	// RevalidateExpiry makes the guard re-check token expiry instead of
	// accepting any stored credential as proof of authentication
	RevalidateExpiry bool
	// TokenExpired reports whether a stored token is past its validity
	// window; consulted only when RevalidateExpiry is set
	TokenExpired func(rawToken string) bool
}

// DefaultPolicy returns the portal's route policy. The tokenExpired func
// normally comes from invite.Validator.IsExpired; pass nil to fall back to
// the permissive "any stored credential counts" behavior.
func DefaultPolicy(tokenExpired func(string) bool) Policy {
	return Policy{
		PublicPaths: pathSet(
			"/",
			"/login",
			"/signup",
			"/forgot-password",
			"/reset-password",
			"/error",
			"/404",
			"/test-api",
			"/demo",
		),
		PublicPrefixes: []string{"/interview/"},
		AuthEntryPaths: pathSet("/login", "/signup"),

		RevalidateExpiry: tokenExpired != nil,
		TokenExpired:     tokenExpired,
	}
}

func pathSet(paths ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}

func (p Policy) isPublic(pathname string) bool {
	if _, ok := p.PublicPaths[pathname]; ok {
		return true
	}
	for _, prefix := range p.PublicPrefixes {
		if strings.HasPrefix(pathname, prefix) {
			return true
		}
	}
	return false
}

func (p Policy) isAuthEntry(pathname string) bool {
	_, ok := p.AuthEntryPaths[pathname]
	return ok
}
