package reports

// Vocabulary maps competency buckets to the keyword sets used to classify
// strengths and gaps. It is injected configuration so it can be tuned without
// touching the transform; the default sets are disjoint, but disjointness is
// not enforced if they are edited.
type Vocabulary struct {
	Behavioral []string
	Cultural   []string
}

// DefaultVocabulary returns the portal's keyword sets
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Behavioral: []string{
			"communication",
			"leadership",
			"teamwork",
			"collaboration",
			"conflict",
		},
		Cultural: []string{
			"cultural",
			"adaptability",
			"innovation",
			"values",
		},
	}
}
