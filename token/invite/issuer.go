// Package invite mints and validates interview invitation tokens. An
// invitation names a single interview session and is shared with a candidate
// who has no account, so the token in the link is the only credential.
package invite

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hirestack/go-interview-server/token"
)

// DefaultTokenTTL is the invitation lifetime used when none is configured
const DefaultTokenTTL = 72 * time.Hour

// Invitation describes the interview a token is being minted for
type Invitation struct {
	CandidateEmail string
	CandidateName  string
	InterviewDate  time.Time
	Position       string
}

// Issuer mints invitation tokens
type Issuer struct {
	codec *token.Codec
	ttl   time.Duration
}

// IssuerOption defines a function type to modify the Issuer instance
type IssuerOption func(*Issuer)

// WithTTL overrides the default invitation token lifetime
func WithTTL(ttl time.Duration) IssuerOption {
	return func(i *Issuer) {
		i.ttl = ttl
	}
}

// NewIssuer creates a new invitation token issuer
func NewIssuer(codec *token.Codec, options ...IssuerOption) (*Issuer, error) {
	if codec == nil {
		return nil, errors.New("[NewIssuer] codec is required")
	}

	issuer := &Issuer{
		codec: codec,
		ttl:   DefaultTokenTTL,
	}

	for _, opt := range options {
		opt(issuer)
	}

	return issuer, nil
}

// Issue mints a signed invitation token for a new interview session and
// returns the generated session ID alongside the token. Tokens are created
// once, are immutable, and are never refreshed.
func (i *Issuer) Issue(invitation Invitation) (sessionID string, rawToken string, err error) {
	if invitation.CandidateEmail == "" {
		return "", "", errors.New("[Issue] candidate email is required")
	}
	if invitation.InterviewDate.IsZero() {
		return "", "", errors.New("[Issue] interview date is required")
	}

	sessionID = uuid.New().String()

	claims := token.SessionClaims{
		SessionID:      sessionID,
		CandidateEmail: invitation.CandidateEmail,
		CandidateName:  invitation.CandidateName,
		InterviewDate:  invitation.InterviewDate.Format(time.RFC3339),
		Position:       invitation.Position,
		Role:           "candidate",
		Type:           token.TypeInterviewInvitation,
		TokenID:        uuid.New().String(),
	}

	rawToken, err = i.codec.Encode(claims, i.ttl)
	if err != nil {
		return "", "", fmt.Errorf("[Issue] failed to encode invitation token: %w", err)
	}

	return sessionID, rawToken, nil
}

// Link builds the shareable interview URL carrying the token as a query
// parameter: {base}/interview/{sessionID}?token={urlEncodedToken}
func (i *Issuer) Link(baseURL, sessionID, rawToken string) string {
	return fmt.Sprintf("%s/interview/%s?token=%s",
		strings.TrimRight(baseURL, "/"), sessionID, url.QueryEscape(rawToken))
}
