package model

const (
	MinMatchScore = 0
	MaxMatchScore = 100
)

type CVMatchAnalysis struct {
	MatchScore          int      `json:"matchScore"`
	MatchedSkills       []string `json:"matchedSkills"`
	MissingSkills       []string `json:"missingSkills"`
	MatchedRequirements []string `json:"matchedRequirements"`
	MissingRequirements []string `json:"missingRequirements"`
	SemanticGaps        []string `json:"semanticGaps"`
	Recommendations     []string `json:"recommendations"`
	Source              string   `json:"source,omitempty"`
}

// ClampScore bounds a score to [MinMatchScore, MaxMatchScore].
func ClampScore(score int) int {
	if score < MinMatchScore {
		return MinMatchScore
	}
	if score > MaxMatchScore {
		return MaxMatchScore
	}
	return score
}

func (m *CVMatchAnalysis) Normalize() {
	m.MatchScore = ClampScore(m.MatchScore)
	m.MatchedSkills = nonNil(m.MatchedSkills)
	m.MissingSkills = nonNil(m.MissingSkills)
	m.MatchedRequirements = nonNil(m.MatchedRequirements)
	m.MissingRequirements = nonNil(m.MissingRequirements)
	m.SemanticGaps = nonNil(m.SemanticGaps)
	m.Recommendations = nonNil(m.Recommendations)
}
