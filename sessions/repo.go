package sessions

// TokenStore persists the HR access token between runs (the browser
// localStorage analogue). Implementations must be safe for concurrent use.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}
