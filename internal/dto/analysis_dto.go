package dto

import "github.com/fadilmartias/cv-assistant/internal/model"

type AnalyzeRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,min=50"`
	CVContent      string `json:"cvContent"`
}

type AnalyzeResponse struct {
	JobAnalysis model.JobAnalysis     `json:"jobAnalysis"`
	CVMatch     model.CVMatchAnalysis `json:"cvMatch"`
}

type GenerateQuestionsRequest struct {
	JobAnalysis *model.JobAnalysis     `json:"jobAnalysis" validate:"required"`
	CVMatch     *model.CVMatchAnalysis `json:"cvMatch"`
	CVContent   string                 `json:"cvContent"`
}

type GenerateQuestionsResponse struct {
	Questions      []model.GeneratedQuestion `json:"questions"`
	TotalQuestions int                       `json:"totalQuestions"`
}
