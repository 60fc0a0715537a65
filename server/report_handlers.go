package server

import (
	"net/http"

	"github.com/hirestack/go-interview-server/internal/errors"
	"github.com/hirestack/go-interview-server/reports"
)

// CandidateReportHandler fetches the raw scoring record for a candidate and
// returns the normalized report view
func (s *Server) CandidateReportHandler() http.HandlerFunc {
	vocabulary := reports.DefaultVocabulary()

	return func(w http.ResponseWriter, r *http.Request) {
		candidateID := r.PathValue("candidateId")

		if s.deps.ReportSource == nil {
			writeError(w, http.StatusNotFound, "report not found")
			return
		}

		raw, err := s.deps.ReportSource.RawReport(r.Context(), candidateID)
		if err != nil {
			if errors.Is(err, errors.ErrReportNotFound) {
				writeError(w, http.StatusNotFound, "report not found")
				return
			}
			s.logger.Error().Err(err).Str("candidate_id", candidateID).Msg("failed to fetch raw report")
			writeError(w, http.StatusBadGateway, "report service unavailable")
			return
		}

		writeJSON(w, http.StatusOK, reports.Transform(*raw, vocabulary))
	}
}
