package reports

import (
	"context"

	"github.com/hirestack/go-interview-server/internal/utils"
)

// Source fetches the raw scoring record for a candidate from the external
// report service
type Source interface {
	RawReport(ctx context.Context, candidateID string) (*RawReport, error)
}

// FromMap builds a RawReport out of a loosely-typed JSON document. The
// external service is not under this repo's control, so mistyped or missing
// fields degrade to zero values instead of failing the fetch.
func FromMap(candidateID string, doc map[string]any) *RawReport {
	raw := &RawReport{CandidateID: candidateID}

	raw.RecommendationDecision, _ = doc["recommendationDecision"].(string)
	raw.RecommendationReasoning, _ = doc["recommendationReasoning"].(string)

	raw.OverallScore = intField(doc, "overallScore")
	raw.TechnicalSkillsScore = intField(doc, "technicalSkillsScore")
	raw.TeamworkScore = intField(doc, "teamworkScore")
	raw.LeadershipScore = intField(doc, "leadershipScore")
	raw.AdaptabilityScore = intField(doc, "adaptabilityScore")
	raw.ExperienceScore = intField(doc, "experienceScore")

	raw.Strengths = listField(doc, "strengths")
	raw.Gaps = listField(doc, "gaps")
	raw.ConfirmedSkills = listField(doc, "confirmedSkills")
	raw.MissingSkills = listField(doc, "missingSkills")
	raw.RedFlags = listField(doc, "redFlags")

	return raw
}

func intField(doc map[string]any, key string) int {
	// encoding/json decodes numbers into float64
	if f, ok := doc[key].(float64); ok {
		return int(f)
	}
	return 0
}

func listField(doc map[string]any, key string) []string {
	if items, ok := doc[key].([]any); ok {
		return utils.ToStringSlice(items)
	}
	return nil
}
