package model

type QuestionType string

const (
	QuestionPersonalInfo   QuestionType = "personal_info"
	QuestionExperience     QuestionType = "experience"
	QuestionEducation      QuestionType = "education"
	QuestionSkills         QuestionType = "skills"
	QuestionCertifications QuestionType = "certifications"
	QuestionLanguages      QuestionType = "languages"
	QuestionSummary        QuestionType = "summary"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionPersonalInfo, QuestionExperience, QuestionEducation, QuestionSkills,
		QuestionCertifications, QuestionLanguages, QuestionSummary:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

const (
	MinQuestions = 10
	MaxQuestions = 15
)

type GeneratedQuestion struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Purpose  string       `json:"purpose"`
	Priority Priority     `json:"priority"`
}
