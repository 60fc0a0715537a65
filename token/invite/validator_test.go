package invite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hirestack/go-interview-server/token"
	"github.com/hirestack/go-interview-server/token/invite"
)

const validatorTestSecret = "validator-test-secret"

func newCodec() *token.Codec {
	return token.NewCodec(token.NewHMACSigner([]byte(validatorTestSecret)))
}

// mintToken creates a token issued at the given instant, expiring at issuedAt+ttl
func mintToken(t *testing.T, codec *token.Codec, issuedAt time.Time, ttl time.Duration) string {
	t.Helper()

	token.NowTimeFunc = func() time.Time { return issuedAt }
	defer func() { token.NowTimeFunc = time.Now }()

	rawToken, err := codec.Encode(token.SessionClaims{
		SessionID:      "session-1",
		CandidateEmail: "jane.doe@example.com",
		Role:           "candidate",
		Type:           token.TypeInterviewInvitation,
	}, ttl)
	require.NoError(t, err)
	return rawToken
}

func TestValidator_IsExpired(t *testing.T) {
	codec := newCodec()
	issuedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rawToken := mintToken(t, codec, issuedAt, time.Hour) // exp at 13:00

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"well before expiry", issuedAt.Add(10 * time.Minute), false},
		{"just inside the buffer window", issuedAt.Add(54 * time.Minute), false},
		{"exactly at exp minus buffer", issuedAt.Add(55 * time.Minute), true},
		{"inside the buffer", issuedAt.Add(57 * time.Minute), true},
		{"at literal expiry", issuedAt.Add(time.Hour), true},
		{"long after expiry", issuedAt.Add(24 * time.Hour), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			validator := invite.NewValidator(codec, invite.WithNowTime(func() time.Time { return tc.now }))
			require.Equal(t, tc.expired, validator.IsExpired(rawToken))
		})
	}
}

func TestValidator_IsExpiredFailsClosed(t *testing.T) {
	validator := invite.NewValidator(newCodec())

	t.Run("undecodable token", func(t *testing.T) {
		require.True(t, validator.IsExpired("not.a.token"))
	})

	t.Run("empty token", func(t *testing.T) {
		require.True(t, validator.IsExpired(""))
	})
}

func TestValidator_Identity(t *testing.T) {
	codec := newCodec()
	validator := invite.NewValidator(codec)

	t.Run("projects claims", func(t *testing.T) {
		rawToken := mintToken(t, codec, time.Now(), time.Hour)

		identity := validator.Identity(rawToken)
		require.NotNil(t, identity)
		require.Equal(t, "session-1", identity.ID)
		require.Equal(t, "jane.doe@example.com", identity.Email)
		require.Equal(t, "candidate", identity.Role)
	})

	t.Run("absent optional claims yield empty fields", func(t *testing.T) {
		rawToken, err := codec.Encode(token.SessionClaims{SessionID: "session-2"}, time.Hour)
		require.NoError(t, err)

		identity := validator.Identity(rawToken)
		require.NotNil(t, identity)
		require.Equal(t, "session-2", identity.ID)
		require.Empty(t, identity.Email)
		require.Empty(t, identity.Role)
	})

	t.Run("nil on decode failure", func(t *testing.T) {
		require.Nil(t, validator.Identity("garbage"))
	})
}

func TestValidator_ExpiresAt(t *testing.T) {
	codec := newCodec()
	validator := invite.NewValidator(codec)

	t.Run("returns the expiry instant", func(t *testing.T) {
		issuedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		rawToken := mintToken(t, codec, issuedAt, time.Hour)

		expiresAt := validator.ExpiresAt(rawToken)
		require.NotNil(t, expiresAt)
		require.Equal(t, issuedAt.Add(time.Hour).Unix(), expiresAt.Unix())
	})

	t.Run("nil on decode failure", func(t *testing.T) {
		require.Nil(t, validator.ExpiresAt("a.b"))
	})
}
