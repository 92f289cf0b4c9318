package model

import (
	"time"

	"github.com/google/uuid"
)

type GenerationStatus string

const (
	StatusIdle       GenerationStatus = "idle"
	StatusAnalyzing  GenerationStatus = "analyzing"
	StatusGenerating GenerationStatus = "generating"
	StatusCompleted  GenerationStatus = "completed"
	StatusError      GenerationStatus = "error"
)

type GenerationResult struct {
	ID          uuid.UUID        `json:"id"`
	Status      GenerationStatus `json:"status"`
	GeneratedCV *string          `json:"generatedCV,omitempty"`
	CoverLetter *string          `json:"coverLetter,omitempty"`
	Progress    int              `json:"progress"`
	Model       string           `json:"model,omitempty"`
	Error       string           `json:"error,omitempty"`
	StartedAt   time.Time        `json:"startedAt"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
}

func NewGenerationResult(now time.Time) *GenerationResult {
	return &GenerationResult{
		ID:        uuid.New(),
		Status:    StatusIdle,
		StartedAt: now,
	}
}

func (r *GenerationResult) Advance(status GenerationStatus, progress int) {
	r.Status = status
	r.Progress = progress
}

func (r *GenerationResult) Complete(cv, model string, now time.Time) {
	r.GeneratedCV = &cv
	r.Model = model
	r.Status = StatusCompleted
	r.Progress = 100
	r.CompletedAt = &now
}

func (r *GenerationResult) Fail(err error, now time.Time) {
	r.Status = StatusError
	r.Error = err.Error()
	r.CompletedAt = &now
}
