package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/cv-assistant/internal/model"
	"github.com/fadilmartias/cv-assistant/internal/service"
)

const verifyPrompt = "Reply with the single word: ok"

// VerifyConnection checks the credential and runs one tiny generation
// against the primary model.
func (uc *AssistantUsecase) VerifyConnection(ctx context.Context) model.ConnectionStatus {
	status := model.ConnectionStatus{CheckedAt: uc.now(), Model: uc.primaryModel}

	token, err := uc.token()
	if err != nil {
		status.Category = string(service.CategoryConfiguration)
		status.Message = err.Error()
		return status
	}
	status.TokenFound = true
	status.TokenSource = token.Source

	account, err := uc.inference.WhoAmI(ctx)
	if err != nil {
		status.Category = string(service.ClassifyError(err))
		status.Message = "token was rejected by the provider: " + err.Error()
		return status
	}
	status.Authenticated = true
	status.Account = account

	text, err := uc.inference.Generate(ctx, service.Request{
		Prompt:    verifyPrompt,
		Model:     uc.primaryModel,
		MaxTokens: verifyMaxTokens,
	})
	if err == nil && strings.TrimSpace(text) == "" {
		err = service.ErrEmptyGeneration
	}
	if err != nil {
		status.Category = string(service.ClassifyError(err))
		status.Message = "token is valid but the model could not be reached: " + err.Error()
		return status
	}

	status.ProviderReachable = true
	status.Message = "connection verified"
	return status
}
