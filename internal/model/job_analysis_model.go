package model

type CandidateProfile struct {
	ExperienceLevel string   `json:"experienceLevel"`
	KeySkills       []string `json:"keySkills"`
	Traits          []string `json:"traits"`
	Education       string   `json:"education"`
}

type WritingStyle struct {
	Tone      string   `json:"tone"`
	Formality string   `json:"formality"`
	Keywords  []string `json:"keywords"`
}

// JobAnalysis is produced once per job description and never modified.
type JobAnalysis struct {
	BusinessType     string           `json:"businessType"`
	Industry         string           `json:"industry"`
	CandidateProfile CandidateProfile `json:"candidateProfile"`
	Values           []string         `json:"values"`
	Requirements     []string         `json:"requirements"`
	WritingStyle     WritingStyle     `json:"writingStyle"`
	DomainStandards  []string         `json:"domainStandards"`
	MissingInfo      []string         `json:"missingInfo"`
	Source           string           `json:"source,omitempty"`
}

// Normalize replaces nil slices so the JSON output always has arrays.
func (j *JobAnalysis) Normalize() {
	j.CandidateProfile.KeySkills = nonNil(j.CandidateProfile.KeySkills)
	j.CandidateProfile.Traits = nonNil(j.CandidateProfile.Traits)
	j.Values = nonNil(j.Values)
	j.Requirements = nonNil(j.Requirements)
	j.WritingStyle.Keywords = nonNil(j.WritingStyle.Keywords)
	j.DomainStandards = nonNil(j.DomainStandards)
	j.MissingInfo = nonNil(j.MissingInfo)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
