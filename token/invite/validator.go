package invite

import (
	"time"

	"github.com/hirestack/go-interview-server/token"
)

// ExpiryBuffer is subtracted from a token's literal expiry so that a token is
// treated as expired slightly early, absorbing clock skew and in-flight
// request latency.
const ExpiryBuffer = 5 * time.Minute

// Identity is the candidate identity projected from a session token
type Identity struct {
	ID    string // Session ID of the interview instance
	Email string
	Role  string
}

// Validator answers "is this token usable now". Every accessor is total:
// decode failures surface as nil or false, never as an error, so callers can
// chain validity checks without error-handling boilerplate.
type Validator struct {
	codec   *token.Codec
	buffer  time.Duration
	nowTime func() time.Time
}

// ValidatorOption defines a function type to modify the Validator instance
type ValidatorOption func(*Validator)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ValidatorOption {
	return func(v *Validator) {
		v.nowTime = nowFunc
	}
}

// WithBuffer overrides the default expiry safety buffer
func WithBuffer(buffer time.Duration) ValidatorOption {
	return func(v *Validator) {
		v.buffer = buffer
	}
}

// NewValidator creates a new session token validator
func NewValidator(codec *token.Codec, options ...ValidatorOption) *Validator {
	validator := &Validator{
		codec:   codec,
		buffer:  ExpiryBuffer,
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(validator)
	}

	return validator
}

// IsExpired reports whether the token can no longer be used. It fails closed:
// a token that cannot be decoded, or that carries no exp claim, is expired.
// Otherwise the token is expired once now >= exp - buffer.
func (v *Validator) IsExpired(rawToken string) bool {
	claims := v.codec.Decode(rawToken)
	if claims == nil || claims.ExpiresAt == 0 {
		return true
	}

	cutoff := time.Unix(claims.ExpiresAt, 0).Add(-v.buffer)
	return !v.nowTime().Before(cutoff)
}

// Identity projects the identity claims out of the token. Returns nil on any
// decode failure; absent optional claims yield empty fields.
func (v *Validator) Identity(rawToken string) *Identity {
	claims := v.codec.Decode(rawToken)
	if claims == nil {
		return nil
	}

	return &Identity{
		ID:    claims.SessionID,
		Email: claims.CandidateEmail,
		Role:  claims.Role,
	}
}

// ExpiresAt returns the token's expiry instant, or nil if the token cannot be
// decoded or carries no exp claim.
func (v *Validator) ExpiresAt(rawToken string) *time.Time {
	claims := v.codec.Decode(rawToken)
	if claims == nil || claims.ExpiresAt == 0 {
		return nil
	}

	expiry := time.Unix(claims.ExpiresAt, 0)
	return &expiry
}
