package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Interview session access (public: links are shared with candidates)
	RouteInterviewSession = "/interview/{sessionId}"

	// Candidate upload pipeline
	RouteUploads      = "/v1/candidates/uploads"
	RouteUploadStatus = "/v1/candidates/uploads/{uploadId}"

	// Interview reports
	RouteCandidateReport = "/v1/candidates/{candidateId}/report"

	// Invitation issuance (HR side)
	RouteInvitations = "/v1/interviews/invitations"

	// Operational
	RouteHealth = "/health"
)
