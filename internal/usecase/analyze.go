package usecase

import (
	"context"

	"github.com/fadilmartias/cv-assistant/internal/model"
)

// Analyze runs the job analysis and then matches the CV against it.
func (uc *AssistantUsecase) Analyze(ctx context.Context, jobDescription, cvContent string) (model.JobAnalysis, model.CVMatchAnalysis, error) {
	job, err := uc.AnalyzeJob(ctx, jobDescription)
	if err != nil {
		return model.JobAnalysis{}, model.CVMatchAnalysis{}, err
	}
	match, err := uc.AnalyzeCV(ctx, jobDescription, cvContent, job)
	if err != nil {
		return model.JobAnalysis{}, model.CVMatchAnalysis{}, err
	}
	return job, match, nil
}
