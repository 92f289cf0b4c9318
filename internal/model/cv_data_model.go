package model

type PersonalInfo struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
}

type QuestionAnswer struct {
	QuestionID string       `json:"questionId,omitempty"`
	Type       QuestionType `json:"type,omitempty"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
}

// CVData is the candidate background the client collected, either parsed
// from an upload or answered in chat.
type CVData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary,omitempty"`
	Experience     []Experience     `json:"experience,omitempty"`
	Education      []Education      `json:"education,omitempty"`
	Skills         []string         `json:"skills,omitempty"`
	Certifications []string         `json:"certifications,omitempty"`
	Languages      []string         `json:"languages,omitempty"`
	RawText        string           `json:"rawText,omitempty"`
	Answers        []QuestionAnswer `json:"answers,omitempty"`
}

// IsEmpty reports whether no background information was supplied at all.
func (d CVData) IsEmpty() bool {
	return d.PersonalInfo == (PersonalInfo{}) && d.Summary == "" && len(d.Experience) == 0 &&
		len(d.Education) == 0 && len(d.Skills) == 0 && len(d.Certifications) == 0 &&
		len(d.Languages) == 0 && d.RawText == "" && len(d.Answers) == 0
}

// ExtractedCVInfo is what the basic extractor could detect in raw CV text.
type ExtractedCVInfo struct {
	PersonalInfo    PersonalInfo `json:"personalInfo"`
	Skills          []string     `json:"skills"`
	HasPersonalInfo bool         `json:"hasPersonalInfo"`
	HasExperience   bool         `json:"hasExperience"`
	HasEducation    bool         `json:"hasEducation"`
	HasSkills       bool         `json:"hasSkills"`
}
