package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/fadilmartias/cv-assistant/internal/util"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Request is a single generation call.
type Request struct {
	Prompt    string
	Model     string
	MaxTokens int
}

type InferenceServiceInterface interface {
	Generate(ctx context.Context, req Request) (string, error)
	WhoAmI(ctx context.Context) (string, error)
}

// TokenSource resolves the provider credential for each call.
type TokenSource func() (config.Token, error)

type InferenceService struct {
	client *resty.Client
	cfg    *config.InferenceConfig
	token  TokenSource
	gemini GeminiServiceInterface
	log    *logrus.Logger
}

// NewInferenceService builds the adapter. gemini may be nil, in which case
// Gemini-backed models fail as unavailable.
func NewInferenceService(cfg *config.InferenceConfig, token TokenSource, gemini GeminiServiceInterface) *InferenceService {
	if token == nil {
		token = config.ResolveEnvToken
	}
	return &InferenceService{
		client: resty.New().
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
		cfg:    cfg,
		token:  token,
		gemini: gemini,
		log:    util.GetLogger(),
	}
}

// Generate sends one request to req.Model using the mode its capability requires.
func (s *InferenceService) Generate(ctx context.Context, req Request) (string, error) {
	capability := config.CapabilityFor(req.Model)
	start := time.Now()

	var (
		text string
		err  error
	)
	switch {
	case capability.Backend == config.BackendGemini:
		text, err = s.generateGemini(ctx, req)
	case capability.Conversational:
		text, err = s.chatCompletion(ctx, req)
	default:
		text, err = s.textCompletion(ctx, req)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", newProviderError(req.Model, 0, "", ErrEmptyGeneration)
	}

	s.log.WithFields(logrus.Fields{
		"model":          req.Model,
		"conversational": capability.Conversational,
		"backend":        capability.Backend,
		"chars":          len(text),
		"latency":        time.Since(start).String(),
	}).Debug("generation completed")
	return text, nil
}

func (s *InferenceService) chatCompletion(ctx context.Context, req Request) (string, error) {
	body := map[string]any{
		"model": req.Model,
		"messages": []map[string]string{
			{"role": "user", "content": req.Prompt},
		},
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}

	resp, err := s.post(ctx, req.Model, s.cfg.ChatBaseURL+"/chat/completions", body)
	if err != nil {
		return "", err
	}
	return gjson.Get(resp, "choices.0.message.content").String(), nil
}

func (s *InferenceService) textCompletion(ctx context.Context, req Request) (string, error) {
	params := map[string]any{"return_full_text": false}
	if req.MaxTokens > 0 {
		params["max_new_tokens"] = req.MaxTokens
	}
	body := map[string]any{
		"inputs":     req.Prompt,
		"parameters": params,
	}

	resp, err := s.post(ctx, req.Model, s.cfg.TextBaseURL+"/models/"+req.Model, body)
	if err != nil {
		return "", err
	}
	if r := gjson.Get(resp, "0.generated_text"); r.Exists() {
		return r.String(), nil
	}
	return gjson.Get(resp, "generated_text").String(), nil
}

func (s *InferenceService) post(ctx context.Context, model, url string, body any) (string, error) {
	token, err := s.token()
	if err != nil {
		return "", err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(token.Value).
		SetBody(body).
		Post(url)
	if err != nil {
		return "", newProviderError(model, 0, "", err)
	}
	if resp.IsError() {
		return "", newProviderError(model, resp.StatusCode(), resp.String(), fmt.Errorf("provider responded %s", resp.Status()))
	}
	return resp.String(), nil
}

func (s *InferenceService) generateGemini(ctx context.Context, req Request) (string, error) {
	if s.gemini == nil {
		return "", &ProviderError{
			Model:    req.Model,
			Category: CategoryUnavailable,
			Err:      fmt.Errorf("gemini backend is not configured"),
		}
	}
	text, err := s.gemini.GenerateText(ctx, req.Model, req.Prompt, req.MaxTokens)
	if err != nil {
		return "", &ProviderError{Model: req.Model, Category: ClassifyError(err), Err: err}
	}
	return text, nil
}

// WhoAmI checks the credential against the hub and returns the account name.
func (s *InferenceService) WhoAmI(ctx context.Context) (string, error) {
	token, err := s.token()
	if err != nil {
		return "", err
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(token.Value).
		Get(s.cfg.WhoAmIBaseURL + "/api/whoami-v2")
	if err != nil {
		return "", newProviderError("whoami", 0, "", err)
	}
	if resp.IsError() {
		return "", newProviderError("whoami", resp.StatusCode(), resp.String(), fmt.Errorf("provider responded %s", resp.Status()))
	}
	return gjson.Get(resp.String(), "name").String(), nil
}
