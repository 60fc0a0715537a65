package reports

import (
	"math"
	"strings"
)

// Transform maps a raw scoring record into the normalized view
func Transform(raw RawReport, vocab Vocabulary) View {
	recommendation := mapRecommendation(raw.RecommendationDecision)

	behavioralStrengths, culturalStrengths := partition(raw.Strengths, vocab)
	behavioralGaps, culturalGaps := partition(raw.Gaps, vocab)

	return View{
		CandidateID:      raw.CandidateID,
		AIRecommendation: recommendation,
		Status:           reviewStatus(recommendation, raw.OverallScore),
		OverallScore:     raw.OverallScore,
		ExperienceScore:  raw.ExperienceScore,
		Competencies: Competencies{
			Technical: Competency{
				Score:     raw.TechnicalSkillsScore,
				Strengths: raw.ConfirmedSkills,
				Gaps:      raw.MissingSkills,
			},
			Behavioral: Competency{
				Score:     roundedAverage(raw.TeamworkScore, raw.LeadershipScore),
				Strengths: behavioralStrengths,
				Gaps:      behavioralGaps,
			},
			Cultural: Competency{
				Score:     raw.AdaptabilityScore,
				Strengths: culturalStrengths,
				Gaps:      culturalGaps,
			},
		},
		RedFlags:       raw.RedFlags,
		Reasoning:      raw.RecommendationReasoning,
		Contradictions: []string{},
	}
}

// mapRecommendation is a case-insensitive match on the raw decision string.
// Anything that is neither hire nor no_hire (including "maybe") maps to
// clarification.
func mapRecommendation(decision string) Recommendation {
	switch strings.ToLower(strings.TrimSpace(decision)) {
	case "hire":
		return RecommendationNextStage
	case "no_hire":
		return RecommendationRejection
	default:
		return RecommendationClarification
	}
}

func reviewStatus(recommendation Recommendation, overallScore int) ReviewStatus {
	switch {
	case recommendation == RecommendationNextStage && overallScore >= 80:
		return StatusApproved
	case recommendation == RecommendationRejection:
		return StatusRejected
	default:
		return StatusReviewed
	}
}

func roundedAverage(a, b int) int {
	return int(math.Round(float64(a+b) / 2))
}

// partition buckets items by case-insensitive substring match against the
// vocabulary. An item matching neither set is dropped; each set is checked
// independently, so overlapping vocabularies would place an item in both.
func partition(items []string, vocab Vocabulary) (behavioral, cultural []string) {
	behavioral = []string{}
	cultural = []string{}

	for _, item := range items {
		lowered := strings.ToLower(item)
		if matchesAny(lowered, vocab.Behavioral) {
			behavioral = append(behavioral, item)
		}
		if matchesAny(lowered, vocab.Cultural) {
			cultural = append(cultural, item)
		}
	}
	return behavioral, cultural
}

func matchesAny(lowered string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
