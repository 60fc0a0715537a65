// Package reports reshapes the raw scoring payload produced by the external
// AI report service into the view the portal consumes. The transform is pure:
// no I/O, fully deterministic.
package reports

// RawReport is the scoring record as the external service produces it
type RawReport struct {
	CandidateID             string   `json:"candidateId"`
	RecommendationDecision  string   `json:"recommendationDecision"`
	OverallScore            int      `json:"overallScore"`
	TechnicalSkillsScore    int      `json:"technicalSkillsScore"`
	TeamworkScore           int      `json:"teamworkScore"`
	LeadershipScore         int      `json:"leadershipScore"`
	AdaptabilityScore       int      `json:"adaptabilityScore"`
	ExperienceScore         int      `json:"experienceScore"`
	Strengths               []string `json:"strengths"`
	Gaps                    []string `json:"gaps"`
	ConfirmedSkills         []string `json:"confirmedSkills"`
	MissingSkills           []string `json:"missingSkills"`
	RedFlags                []string `json:"redFlags"`
	RecommendationReasoning string   `json:"recommendationReasoning"`
}

// Recommendation is the portal-side AI recommendation
type Recommendation string

const (
	RecommendationNextStage     Recommendation = "next-stage"
	RecommendationClarification Recommendation = "clarification"
	RecommendationRejection     Recommendation = "rejection"
)

// ReviewStatus is the report's review state
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusReviewed ReviewStatus = "reviewed"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// Competency is one scored competency bucket
type Competency struct {
	Score     int      `json:"score"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

// Competencies groups the three buckets
type Competencies struct {
	Technical  Competency `json:"technical"`
	Behavioral Competency `json:"behavioral"`
	Cultural   Competency `json:"cultural"`
}

// View is the normalized report consumed by the UI
type View struct {
	CandidateID      string         `json:"candidateId"`
	AIRecommendation Recommendation `json:"aiRecommendation"`
	Status           ReviewStatus   `json:"status"`
	OverallScore     int            `json:"overallScore"`
	ExperienceScore  int            `json:"experienceScore"`
	Competencies     Competencies   `json:"competencies"`
	RedFlags         []string       `json:"redFlags"`
	Reasoning        string         `json:"reasoning"`
	// Contradictions is not sourced from the raw payload yet; it is emitted
	// empty so the UI shape stays stable.
	Contradictions []string `json:"contradictions"`
}
