package server

import "net/http"

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))

	// The invitation token in the link is the credential for session access,
	// not an HR login.
	s.RegisterRouteHandler("GET "+RouteInterviewSession, ChainMiddleware(s.InterviewSessionHandler(), s.APIMiddleware()...))

	// Candidate upload pipeline
	s.RegisterRouteHandler("POST "+RouteUploads, ChainMiddleware(s.UploadCreateHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteUploadStatus, ChainMiddleware(s.UploadStatusHandler(), s.APIMiddleware()...))

	// Reports
	s.RegisterRouteHandler("GET "+RouteCandidateReport, ChainMiddleware(s.CandidateReportHandler(), s.APIMiddleware()...))

	// Invitation issuance requires an HR bearer token
	s.RegisterRouteHandler("POST "+RouteInvitations, ChainMiddleware(s.InvitationCreateHandler(), append(s.APIMiddleware(), s.RequireAuth())...))
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
