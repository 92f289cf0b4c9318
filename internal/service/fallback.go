package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/fadilmartias/cv-assistant/internal/util"
	"github.com/sirupsen/logrus"
)

// GenerateFunc performs exactly one generation attempt against req.Model.
type GenerateFunc func(ctx context.Context, req Request) (string, error)

type AttemptError struct {
	Model    string
	Category ErrorCategory
	Err      error
}

type Result struct {
	Text     string
	Model    string
	Attempts []AttemptError
}

// ExhaustedError is returned when every candidate model failed.
type ExhaustedError struct {
	Attempts []AttemptError
}

var remediationHints = []string{
	"check that an inference provider is enabled for these models in your provider settings",
	"check that the access token has permission to call inference endpoints",
	"if you are being rate limited, wait a minute and try again",
}

func (e *ExhaustedError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "all %d models failed:", len(e.Attempts))
	for _, a := range e.Attempts {
		fmt.Fprintf(&sb, "\n- %s [%s]: %v", a.Model, a.Category, a.Err)
	}
	sb.WriteString("\nremediation:")
	for _, h := range remediationHints {
		sb.WriteString("\n- ")
		sb.WriteString(h)
	}
	return sb.String()
}

func (e *ExhaustedError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// Models lists the attempted models in order.
func (e *ExhaustedError) Models() []string {
	models := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		models = append(models, a.Model)
	}
	return models
}

// Hints returns the remediation hints shown to the caller.
func (e *ExhaustedError) Hints() []string {
	return append([]string(nil), remediationHints...)
}

// Candidates builds the ordered attempt list: primary first, then each
// fallback once, skipping blanks and repeats of earlier entries.
func Candidates(primary string, fallbacks []string) []string {
	seen := make(map[string]bool, len(fallbacks)+1)
	out := make([]string, 0, len(fallbacks)+1)
	for _, m := range append([]string{primary}, fallbacks...) {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// Attempt tries each candidate in order and returns the first successful
// generation. A missing Hugging Face credential skips ahead to any later
// Gemini-backed candidate and stops the chain at once when none is left.
func Attempt(ctx context.Context, candidates []string, req Request, generate GenerateFunc) (Result, error) {
	log := util.GetLogger()
	attempts := make([]AttemptError, 0, len(candidates))

	for i, model := range candidates {
		req.Model = model
		text, err := generate(ctx, req)
		if err == nil && strings.TrimSpace(text) == "" {
			err = newProviderError(model, 0, "", ErrEmptyGeneration)
		}
		if err == nil {
			if i > 0 {
				log.WithFields(logrus.Fields{"model": model, "attempt": i + 1}).Info("fallback model succeeded")
			}
			return Result{Text: text, Model: model, Attempts: attempts}, nil
		}

		category := ClassifyError(err)
		log.WithFields(logrus.Fields{
			"model":    model,
			"attempt":  i + 1,
			"category": category,
		}).WithError(err).Warn("generation attempt failed")

		if errors.Is(err, config.ErrNoCredential) && !hasGeminiCandidate(candidates[i+1:]) {
			return Result{Attempts: attempts}, err
		}
		attempts = append(attempts, AttemptError{Model: model, Category: category, Err: err})
	}

	return Result{Attempts: attempts}, &ExhaustedError{Attempts: attempts}
}

func hasGeminiCandidate(models []string) bool {
	for _, m := range models {
		if config.CapabilityFor(m).Backend == config.BackendGemini {
			return true
		}
	}
	return false
}

type GeneratorInterface interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (Result, error)
}

// FallbackChain runs prompts through a fixed, ordered model list.
type FallbackChain struct {
	inference  InferenceServiceInterface
	candidates []string
}

func NewFallbackChain(inference InferenceServiceInterface, primary string, fallbacks []string) *FallbackChain {
	return &FallbackChain{
		inference:  inference,
		candidates: Candidates(primary, fallbacks),
	}
}

func (c *FallbackChain) Complete(ctx context.Context, prompt string, maxTokens int) (Result, error) {
	return Attempt(ctx, c.candidates, Request{Prompt: prompt, MaxTokens: maxTokens}, c.inference.Generate)
}

// Models returns the attempt order.
func (c *FallbackChain) Models() []string {
	return append([]string(nil), c.candidates...)
}
