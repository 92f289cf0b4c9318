package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/fadilmartias/cv-assistant/internal/model"
	"github.com/sirupsen/logrus"
)

var codeFencePattern = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\n(.*?)\n?```$")

// GenerateCV writes a tailored CV. The returned result is always non-nil so
// the caller can report its status, including on failure.
func (uc *AssistantUsecase) GenerateCV(ctx context.Context, jobDescription string, data model.CVData, job *model.JobAnalysis) (*model.GenerationResult, error) {
	result := model.NewGenerationResult(uc.now())
	result.Advance(model.StatusGenerating, 30)

	res, err := uc.generator.Complete(ctx, cvGenerationPrompt(jobDescription, data, job), cvMaxTokens)
	if err != nil {
		result.Fail(err, uc.now())
		return result, err
	}

	cv := stripCodeFence(res.Text)
	result.Complete(cv, res.Model, uc.now())
	uc.log.WithFields(logrus.Fields{
		"id":    result.ID,
		"model": res.Model,
		"chars": len(cv),
	}).Info("cv generated")
	return result, nil
}

// GenerateCoverLetter is exposed on the API but disabled.
func (uc *AssistantUsecase) GenerateCoverLetter(ctx context.Context, jobDescription string, data model.CVData) (string, error) {
	return "", ErrCoverLetterDisabled
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if m := codeFencePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}
