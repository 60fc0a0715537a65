package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hirestack/go-interview-server/token/invite"
)

// InvitationCreateRequest mints an interview invitation for a candidate
type InvitationCreateRequest struct {
	CandidateEmail string `json:"candidateEmail"`
	CandidateName  string `json:"candidateName"`
	InterviewDate  string `json:"interviewDate"` // RFC3339
	Position       string `json:"position"`
}

// InvitationCreateResponse carries the minted token and the shareable link
type InvitationCreateResponse struct {
	SessionID string     `json:"sessionId"`
	Token     string     `json:"token"`
	Link      string     `json:"link"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// InvitationCreateHandler mints a session token and builds the shareable
// interview link
func (s *Server) InvitationCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request InvitationCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		interviewDate, err := time.Parse(time.RFC3339, request.InterviewDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "interviewDate must be RFC3339")
			return
		}

		sessionID, rawToken, err := s.issuer.Issue(invite.Invitation{
			CandidateEmail: request.CandidateEmail,
			CandidateName:  request.CandidateName,
			InterviewDate:  interviewDate,
			Position:       request.Position,
		})
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, InvitationCreateResponse{
			SessionID: sessionID,
			Token:     rawToken,
			Link:      s.issuer.Link(s.config.GetBaseURL(), sessionID, rawToken),
			ExpiresAt: s.validator.ExpiresAt(rawToken),
		})
	}
}
