package server

import (
	"net/http"
	"time"

	"github.com/hirestack/go-interview-server/rooms"
	"github.com/hirestack/go-interview-server/token"
)

// InterviewSessionResponse is returned when a candidate opens a valid
// interview link
type InterviewSessionResponse struct {
	SessionID      string      `json:"sessionId"`
	CandidateName  string      `json:"candidateName"`
	CandidateEmail string      `json:"candidateEmail"`
	Position       string      `json:"position"`
	InterviewDate  string      `json:"interviewDate"`
	ExpiresAt      *time.Time  `json:"expiresAt,omitempty"`
	Room           *rooms.Room `json:"room,omitempty"`
}

// InterviewSessionHandler gates interview access on the token carried in the
// link. Auth failures return a 401 with no detail about which check failed.
func (s *Server) InterviewSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.PathValue("sessionId")
		rawToken := r.URL.Query().Get("token")
		if rawToken == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		claims, err := s.codec.Verify(rawToken)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if claims.Type != token.TypeInterviewInvitation || claims.SessionID != sessionID {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if s.validator.IsExpired(rawToken) {
			writeError(w, http.StatusUnauthorized, "token expired")
			return
		}

		response := InterviewSessionResponse{
			SessionID:      claims.SessionID,
			CandidateName:  claims.CandidateName,
			CandidateEmail: claims.CandidateEmail,
			Position:       claims.Position,
			InterviewDate:  claims.InterviewDate,
			ExpiresAt:      s.validator.ExpiresAt(rawToken),
		}

		if s.deps.Rooms != nil {
			room, err := s.deps.Rooms.CreateOrGetRoom(r.Context(), sessionID)
			if err != nil {
				// The interview page can still render without a room; the
				// client retries provisioning on join.
				s.logger.Error().Err(err).Str("session_id", sessionID).Msg("room provisioning failed")
			} else {
				response.Room = room
			}
		}

		writeJSON(w, http.StatusOK, response)
	}
}
