package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hirestack/go-interview-server/guard"
)

func noSession() guard.Snapshot {
	return guard.Snapshot{}
}

func activeSession() guard.Snapshot {
	return guard.Snapshot{HasUser: true}
}

func TestPolicy_Decide(t *testing.T) {
	policy := guard.DefaultPolicy(nil)

	tests := []struct {
		name     string
		pathname string
		snapshot guard.Snapshot
		want     guard.Decision
	}{
		{"loading suspends", "/dashboard", guard.Snapshot{Loading: true}, guard.Pending},
		{"interview link without session", "/interview/abc123", noSession(), guard.Allow},
		{"interview prefix covers any suffix", "/interview/abc123/report", noSession(), guard.Allow},
		{"protected path without session", "/dashboard", noSession(), guard.RedirectToLogin},
		{"protected path with session", "/dashboard", activeSession(), guard.Allow},
		{"login without session", "/login", noSession(), guard.Allow},
		{"login with session", "/login", activeSession(), guard.RedirectToDashboard},
		{"signup with session", "/signup", activeSession(), guard.RedirectToDashboard},
		{"public root without session", "/", noSession(), guard.Allow},
		{"error page without session", "/error", noSession(), guard.Allow},
		{"public non-entry page with session", "/forgot-password", activeSession(), guard.Allow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, policy.Decide(tc.pathname, tc.snapshot))
		})
	}
}

func TestPolicy_StoredTokenFallback(t *testing.T) {
	t.Run("permissive policy accepts any stored token", func(t *testing.T) {
		policy := guard.DefaultPolicy(nil)
		snapshot := guard.Snapshot{StoredToken: "some-stale-token"}
		require.Equal(t, guard.Allow, policy.Decide("/dashboard", snapshot))
	})

	t.Run("revalidating policy rejects an expired stored token", func(t *testing.T) {
		policy := guard.DefaultPolicy(func(string) bool { return true })
		snapshot := guard.Snapshot{StoredToken: "expired-token"}
		require.Equal(t, guard.RedirectToLogin, policy.Decide("/dashboard", snapshot))
	})

	t.Run("revalidating policy accepts a live stored token", func(t *testing.T) {
		policy := guard.DefaultPolicy(func(string) bool { return false })
		snapshot := guard.Snapshot{StoredToken: "live-token"}
		require.Equal(t, guard.Allow, policy.Decide("/dashboard", snapshot))
	})

	t.Run("in-memory user wins regardless of stored token", func(t *testing.T) {
		policy := guard.DefaultPolicy(func(string) bool { return true })
		snapshot := guard.Snapshot{HasUser: true}
		require.Equal(t, guard.Allow, policy.Decide("/dashboard", snapshot))
	})
}

func TestEvaluator_RedirectsOncePerMount(t *testing.T) {
	t.Run("dashboard redirect from login", func(t *testing.T) {
		evaluator := guard.NewEvaluator(guard.DefaultPolicy(nil))

		first := evaluator.Evaluate("/login", activeSession())
		require.Equal(t, guard.RedirectToDashboard, first)

		// Re-evaluation after the redirect was issued must not re-trigger
		second := evaluator.Evaluate("/login", activeSession())
		require.False(t, second.Redirect())
	})

	t.Run("login redirect", func(t *testing.T) {
		evaluator := guard.NewEvaluator(guard.DefaultPolicy(nil))

		first := evaluator.Evaluate("/dashboard", noSession())
		require.Equal(t, guard.RedirectToLogin, first)

		second := evaluator.Evaluate("/dashboard", noSession())
		require.False(t, second.Redirect())
	})

	t.Run("non-redirect decisions do not consume the flag", func(t *testing.T) {
		evaluator := guard.NewEvaluator(guard.DefaultPolicy(nil))

		require.Equal(t, guard.Allow, evaluator.Evaluate("/interview/abc123", noSession()))
		require.Equal(t, guard.RedirectToLogin, evaluator.Evaluate("/dashboard", noSession()))
	})

	t.Run("reset models a fresh mount", func(t *testing.T) {
		evaluator := guard.NewEvaluator(guard.DefaultPolicy(nil))

		require.Equal(t, guard.RedirectToLogin, evaluator.Evaluate("/dashboard", noSession()))
		evaluator.Reset()
		require.Equal(t, guard.RedirectToLogin, evaluator.Evaluate("/dashboard", noSession()))
	})
}
