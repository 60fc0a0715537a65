package token

import (
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TypeInterviewInvitation is the discriminator value carried by invitation tokens
const TypeInterviewInvitation = "interview_invitation"

// SessionClaims are the claims carried by an interview session token.
// A token is minted once at invitation time, is immutable, and is never
// refreshed (unlike the HR login access/refresh pair, which lives elsewhere).
type SessionClaims struct {
	SessionID      string // Unique per interview instance
	CandidateEmail string
	CandidateName  string
	InterviewDate  string // RFC3339 timestamp
	Position       string
	Role           string // Optional; absent claims yield an empty field, not an error
	Type           string // Discriminator, e.g. "interview_invitation"
	TokenID        string // jti, unique per minted token
	IssuedAt       int64  // Epoch seconds
	ExpiresAt      int64  // Epoch seconds, always > IssuedAt
}

// toMapClaims converts SessionClaims into the wire claim set
func (c SessionClaims) toMapClaims() jwtlib.MapClaims {
	claims := jwtlib.MapClaims{
		"session_id":      c.SessionID,
		"candidate_email": c.CandidateEmail,
		"candidate_name":  c.CandidateName,
		"interview_date":  c.InterviewDate,
		"position":        c.Position,
		"typ":             c.Type,
		"jti":             c.TokenID,
		"iat":             c.IssuedAt,
		"exp":             c.ExpiresAt,
	}
	if c.Role != "" {
		claims["role"] = c.Role
	}
	return claims
}

// claimsFromMap projects the wire claim set back into SessionClaims.
// Missing or mistyped optional claims become zero values.
func claimsFromMap(claims jwtlib.MapClaims) *SessionClaims {
	sc := &SessionClaims{}
	sc.SessionID, _ = claims["session_id"].(string)
	sc.CandidateEmail, _ = claims["candidate_email"].(string)
	sc.CandidateName, _ = claims["candidate_name"].(string)
	sc.InterviewDate, _ = claims["interview_date"].(string)
	sc.Position, _ = claims["position"].(string)
	sc.Role, _ = claims["role"].(string)
	sc.Type, _ = claims["typ"].(string)
	sc.TokenID, _ = claims["jti"].(string)

	if iat, ok := claims["iat"].(float64); ok {
		sc.IssuedAt = int64(iat)
	}
	if exp, ok := claims["exp"].(float64); ok {
		sc.ExpiresAt = int64(exp)
	}
	return sc
}
