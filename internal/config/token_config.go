package config

import "time"

type TokenConfig interface {
	// GetTokenSecret is the server-held HMAC secret invitation tokens are
	// signed with
	GetTokenSecret() []byte
	// GetInviteTokenTTL is the invitation token lifetime
	GetInviteTokenTTL() time.Duration
	// GetAccessTokenStorageKey names the client-side storage slot holding
	// the HR access token
	GetAccessTokenStorageKey() string
}

type Tokens struct{}

var _ TokenConfig = Tokens{}

func (Tokens) GetTokenSecret() []byte {
	return []byte(GetEnv("TOKEN_SECRET", "dev-only-insecure-secret"))
}

func (Tokens) GetInviteTokenTTL() time.Duration {
	ttl, err := time.ParseDuration(GetEnv("INVITE_TOKEN_TTL", "72h"))
	if err != nil {
		return 72 * time.Hour
	}
	return ttl
}

func (Tokens) GetAccessTokenStorageKey() string {
	return GetEnv("ACCESS_TOKEN_STORAGE_KEY", "hr_access_token")
}
