package dto

import "github.com/fadilmartias/cv-assistant/internal/model"

type GenerateCVRequest struct {
	JobDescription string             `json:"jobDescription" validate:"required,min=50"`
	CVData         *model.CVData      `json:"cvData" validate:"required"`
	JobAnalysis    *model.JobAnalysis `json:"jobAnalysis"`
}

type GenerateCVResponse struct {
	GeneratedCV string                  `json:"generatedCV"`
	Result      *model.GenerationResult `json:"result"`
}

type GenerateCoverLetterRequest struct {
	JobDescription string        `json:"jobDescription"`
	CVData         *model.CVData `json:"cvData"`
}

type ParseFileResponse struct {
	Text       string `json:"text"`
	FileName   string `json:"fileName"`
	FileType   string `json:"fileType"`
	Characters int    `json:"characters"`
	Method     string `json:"method"`
}
