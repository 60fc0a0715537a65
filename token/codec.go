// Package token encodes and decodes the compact signed session token that
// travels inside shareable interview links. The wire format is the standard
// three-segment base64url(header).base64url(payload).base64url(signature)
// compact serialization, signed with a server-held HMAC secret.
package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Codec encodes and decodes session tokens
type Codec struct {
	signer Signer
}

// NewCodec creates a new session token codec using the given signer
func NewCodec(signer Signer) *Codec {
	return &Codec{
		signer: signer,
	}
}

// Encode serializes the claims into a signed compact token, injecting iat and
// exp. The exp claim is always strictly greater than iat.
func (c *Codec) Encode(claims SessionClaims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	now := NowTimeFunc()
	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = now.Add(ttl).Unix()

	return c.signer.Sign(claims.toMapClaims())
}

// Decode splits and parses a compact token without verifying its signature.
// It is total: malformed input of any kind (wrong segment count, invalid
// base64, invalid JSON) yields nil, never a panic or an error. Callers chain
// validity checks on the nil result instead of handling errors.
func (c *Codec) Decode(rawToken string) *SessionClaims {
	unverifiedToken, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil
	}

	claims, ok := unverifiedToken.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil
	}

	return claimsFromMap(claims)
}

// Verify parses a token and checks its MAC against the codec's signer.
// Expiry is not validated here; the invite.Validator owns expiry semantics,
// including the safety buffer.
func (c *Codec) Verify(rawToken string) (*SessionClaims, error) {
	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{c.signer.GetSigningMethod().Alg()}),
		jwtlib.WithoutClaimsValidation(),
	)

	parsed, err := parser.Parse(rawToken, c.signer.GetVerificationKey)
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("error extracting claims from token")
	}

	return claimsFromMap(claims), nil
}
