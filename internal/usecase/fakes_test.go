package usecase

import (
	"context"
	"time"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/fadilmartias/cv-assistant/internal/service"
)

type fakeGenerator struct {
	text    string
	model   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Complete(ctx context.Context, prompt string, maxTokens int) (service.Result, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return service.Result{}, f.err
	}
	m := f.model
	if m == "" {
		m = "fake-model"
	}
	return service.Result{Text: f.text, Model: m}, nil
}

type fakeInference struct {
	account   string
	whoamiErr error
	text      string
	genErr    error
	requests  []service.Request
}

func (f *fakeInference) Generate(ctx context.Context, req service.Request) (string, error) {
	f.requests = append(f.requests, req)
	return f.text, f.genErr
}

func (f *fakeInference) WhoAmI(ctx context.Context) (string, error) {
	return f.account, f.whoamiErr
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func tokenFound() (config.Token, error) {
	return config.Token{Value: "hf_test", Source: "HF_TOKEN"}, nil
}

func tokenMissing() (config.Token, error) {
	return config.Token{}, config.ErrNoCredential
}

func newTestUsecase(gen service.GeneratorInterface, inf service.InferenceServiceInterface, token service.TokenSource) *AssistantUsecase {
	uc := NewAssistantUsecase(gen, inf, token, "primary/model")
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func exhausted() error {
	return &service.ExhaustedError{Attempts: []service.AttemptError{
		{Model: "a", Category: service.CategoryUnavailable},
		{Model: "b", Category: service.CategoryRateLimit},
	}}
}

const goJob = `Senior Backend Engineer at a fintech payment startup.
Requirements:
- 5+ years of experience building services in Go
- Strong knowledge of PostgreSQL and Redis
- Experience with Kubernetes and AWS
We value ownership and transparency. Remote friendly.`
