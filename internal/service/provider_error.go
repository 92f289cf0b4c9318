package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

type ErrorCategory string

const (
	CategoryAuth          ErrorCategory = "authentication"
	CategoryRateLimit     ErrorCategory = "rate_limit"
	CategoryUnavailable   ErrorCategory = "unavailable"
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryGeneric       ErrorCategory = "generic"
)

// ErrEmptyGeneration is returned when a provider answers without any text.
var ErrEmptyGeneration = errors.New("provider returned empty generated text")

// ProviderError is a failed call to an inference provider.
type ProviderError struct {
	Model      string
	StatusCode int
	Body       string
	Category   ErrorCategory
	Err        error
}

func (e *ProviderError) Error() string {
	msg := providerMessage(e.Body)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("model %s: %s (status %d): %s", e.Model, e.Category, e.StatusCode, msg)
	}
	return fmt.Sprintf("model %s: %s: %s", e.Model, e.Category, msg)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func newProviderError(model string, status int, body string, err error) *ProviderError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &ProviderError{
		Model:      model,
		StatusCode: status,
		Body:       body,
		Category:   classify(status, msg, body),
		Err:        err,
	}
}

// providerMessage digs the human readable message out of an error body.
func providerMessage(body string) string {
	if body == "" {
		return ""
	}
	if !gjson.Valid(body) {
		return strings.TrimSpace(body)
	}
	for _, path := range []string{"error.message", "error", "message", "detail"} {
		if r := gjson.Get(body, path); r.Exists() && r.Type == gjson.String {
			return r.String()
		}
	}
	return strings.TrimSpace(body)
}

// ClassifyError maps any error returned by a generation attempt to a category.
func ClassifyError(err error) ErrorCategory {
	if err == nil {
		return ""
	}
	if errors.Is(err, config.ErrNoCredential) {
		return CategoryConfiguration
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	// genai returns APIError by value.
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classify(apiErr.Code, apiErr.Message+" "+apiErr.Status, "")
	}
	return classify(0, err.Error(), "")
}

var (
	authMarkers        = []string{"unauthorized", "invalid token", "invalid credentials", "invalid api key", "api key not valid", "unauthenticated", "authentication", "permission", "forbidden"}
	rateLimitMarkers   = []string{"rate limit", "rate-limit", "too many requests", "quota", "resource_exhausted", "exceeded your monthly"}
	unavailableMarkers = []string{"no inference provider", "not supported", "not found", "does not exist", "unavailable", "currently loading", "not available", "model is overloaded"}
)

func classify(status int, message, body string) ErrorCategory {
	switch status {
	case 401, 403:
		return CategoryAuth
	case 429:
		return CategoryRateLimit
	case 404, 502, 503:
		return CategoryUnavailable
	}

	text := strings.ToLower(message + " " + providerMessage(body))
	switch {
	case containsAny(text, authMarkers):
		return CategoryAuth
	case containsAny(text, rateLimitMarkers):
		return CategoryRateLimit
	case containsAny(text, unavailableMarkers):
		return CategoryUnavailable
	}
	return CategoryGeneric
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
