package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hirestack/go-interview-server/internal/config"
	"github.com/hirestack/go-interview-server/reports"
	"github.com/hirestack/go-interview-server/reports/repofake"
	"github.com/hirestack/go-interview-server/server"
	"github.com/hirestack/go-interview-server/token"
	"github.com/hirestack/go-interview-server/uploads"
)

type serverFixture struct {
	cfg          config.Config
	ts           *httptest.Server
	reportSource *repofake.FakeReportSource
	cancel       context.CancelFunc
}

func setupServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	cfg := config.New()

	uploadRepo := uploads.NewInMemoryRepo()
	pipeline := uploads.NewPipeline(uploadRepo, uploads.DefaultProcessor(), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	pipeline.Start(ctx)

	reportSource := repofake.NewFakeReportSource()

	srv, err := server.New(cfg, server.Deps{
		UploadRepo:   uploadRepo,
		Pipeline:     pipeline,
		ReportSource: reportSource,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv)
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})

	return &serverFixture{cfg: cfg, ts: ts, reportSource: reportSource, cancel: cancel}
}

// mintInvitation drives the issuance endpoint and returns the session ID and
// raw token from the response
func (f *serverFixture) mintInvitation(t *testing.T) (sessionID, rawToken string) {
	t.Helper()

	body, err := json.Marshal(server.InvitationCreateRequest{
		CandidateEmail: "jane.doe@example.com",
		CandidateName:  "Jane Doe",
		InterviewDate:  "2026-09-15T10:00:00Z",
		Position:       "Backend Engineer",
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, f.ts.URL+"/v1/interviews/invitations", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer hr-access-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created server.InvitationCreateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.SessionID)
	require.NotEmpty(t, created.Token)
	require.Contains(t, created.Link, "/interview/"+created.SessionID+"?token=")

	return created.SessionID, created.Token
}

func TestInvitationEndpointRequiresBearer(t *testing.T) {
	f := setupServerFixture(t)

	resp, err := http.Post(f.ts.URL+"/v1/interviews/invitations", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestInterviewSessionEndpoint(t *testing.T) {
	f := setupServerFixture(t)
	sessionID, rawToken := f.mintInvitation(t)

	t.Run("valid token grants access", func(t *testing.T) {
		resp, err := http.Get(f.ts.URL + "/interview/" + sessionID + "?token=" + url.QueryEscape(rawToken))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var session server.InterviewSessionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
		require.Equal(t, sessionID, session.SessionID)
		require.Equal(t, "Jane Doe", session.CandidateName)
		require.Equal(t, "Backend Engineer", session.Position)
		require.NotNil(t, session.ExpiresAt)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		resp, err := http.Get(f.ts.URL + "/interview/" + sessionID)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token for another session is rejected", func(t *testing.T) {
		otherSessionID, _ := f.mintInvitation(t)
		resp, err := http.Get(f.ts.URL + "/interview/" + otherSessionID + "?token=" + url.QueryEscape(rawToken))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("forged token is rejected", func(t *testing.T) {
		forger := token.NewCodec(token.NewHMACSigner([]byte("attacker-secret")))
		forged, err := forger.Encode(token.SessionClaims{
			SessionID: sessionID,
			Type:      token.TypeInterviewInvitation,
		}, time.Hour)
		require.NoError(t, err)

		resp, err := http.Get(f.ts.URL + "/interview/" + sessionID + "?token=" + url.QueryEscape(forged))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		codec := token.NewCodec(token.NewHMACSigner(f.cfg.GetTokenSecret()))
		// Within the validator's safety buffer, so already unusable
		expiring, err := codec.Encode(token.SessionClaims{
			SessionID: "session-exp",
			Type:      token.TypeInterviewInvitation,
		}, time.Minute)
		require.NoError(t, err)

		resp, err := http.Get(f.ts.URL + "/interview/session-exp?token=" + url.QueryEscape(expiring))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestUploadEndpoints(t *testing.T) {
	f := setupServerFixture(t)

	client := uploads.NewClient(f.ts.URL, uploads.WithTokenSource(func() string { return "hr-access-token" }))

	t.Run("submit then poll to completion", func(t *testing.T) {
		files := []uploads.File{
			{Filename: "jane_cv.pdf", Content: strings.NewReader("pdf bytes")},
			{Filename: "john_cv.pdf", Content: strings.NewReader("pdf bytes")},
		}

		batch, err := client.Submit(context.Background(), files, "42")
		require.NoError(t, err)
		require.Equal(t, uploads.StatusPending, batch.Status)
		require.Len(t, batch.Items, 2)

		final, err := client.PollUntilTerminal(context.Background(), batch.UploadID, uploads.PollOptions{
			Interval: 10 * time.Millisecond,
			Timeout:  5 * time.Second,
		})
		require.NoError(t, err)
		require.Equal(t, uploads.StatusCompleted, final.Status)
		for _, item := range final.Items {
			require.NotEmpty(t, item.CandidateID)
		}
	})

	t.Run("non-integer jobId rejected", func(t *testing.T) {
		files := []uploads.File{{Filename: "cv.pdf", Content: strings.NewReader("x")}}
		_, err := client.Submit(context.Background(), files, "not-a-number")
		var uploadErr *uploads.UploadError
		require.ErrorAs(t, err, &uploadErr)
		require.Equal(t, http.StatusBadRequest, uploadErr.StatusCode)
	})

	t.Run("unknown upload status is 404", func(t *testing.T) {
		_, err := client.FetchStatus(context.Background(), "no-such-upload")
		var statusErr *uploads.StatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})
}

func TestCandidateReportEndpoint(t *testing.T) {
	f := setupServerFixture(t)

	f.reportSource.Add(&reports.RawReport{
		CandidateID:            "candidate-1",
		RecommendationDecision: "hire",
		OverallScore:           85,
		TeamworkScore:          80,
		LeadershipScore:        70,
		AdaptabilityScore:      90,
		Strengths:              []string{"strong leadership"},
	})

	t.Run("known candidate returns transformed view", func(t *testing.T) {
		resp, err := http.Get(f.ts.URL + "/v1/candidates/candidate-1/report")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view reports.View
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		require.Equal(t, reports.RecommendationNextStage, view.AIRecommendation)
		require.Equal(t, reports.StatusApproved, view.Status)
		require.Equal(t, 75, view.Competencies.Behavioral.Score)
	})

	t.Run("unknown candidate is 404", func(t *testing.T) {
		resp, err := http.Get(f.ts.URL + "/v1/candidates/nobody/report")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
