package config

import (
	"strings"
	"sync"
)

// Backend names the transport used to reach a model.
type Backend string

const (
	BackendHuggingFace Backend = "huggingface"
	BackendGemini      Backend = "gemini"
)

const (
	PrimaryModel        = "mistralai/Mistral-7B-Instruct-v0.3"
	GeminiFallbackModel = "gemini-2.5-flash"

	DefaultChatBaseURL   = "https://router.huggingface.co/v1"
	DefaultTextBaseURL   = "https://api-inference.huggingface.co"
	DefaultWhoAmIBaseURL = "https://huggingface.co"
)

// FallbackModels are tried in order after the primary model fails.
var FallbackModels = []string{
	"meta-llama/Llama-3.1-8B-Instruct",
	"Qwen/Qwen2.5-7B-Instruct",
	"HuggingFaceH4/zephyr-7b-beta",
	"gpt2",
}

// ModelCapability describes how a model must be called.
type ModelCapability struct {
	Backend        Backend
	Conversational bool
}

// Capabilities is the explicit capability table for every configured model.
var Capabilities = map[string]ModelCapability{
	PrimaryModel:                       {Backend: BackendHuggingFace, Conversational: true},
	"meta-llama/Llama-3.1-8B-Instruct": {Backend: BackendHuggingFace, Conversational: true},
	"Qwen/Qwen2.5-7B-Instruct":         {Backend: BackendHuggingFace, Conversational: true},
	"HuggingFaceH4/zephyr-7b-beta":     {Backend: BackendHuggingFace, Conversational: true},
	"gpt2":                             {Backend: BackendHuggingFace, Conversational: false},
	GeminiFallbackModel:                {Backend: BackendGemini, Conversational: true},
}

// conversationalMarkers are matched against model ids missing from Capabilities.
var conversationalMarkers = []string{
	"mistral", "llama", "qwen", "zephyr", "gemma", "phi", "deepseek", "chat", "instruct",
}

// CapabilityFor returns the table entry for model, or a heuristic guess for unknown ids.
func CapabilityFor(model string) ModelCapability {
	if c, ok := Capabilities[model]; ok {
		return c
	}
	lower := strings.ToLower(model)
	if strings.HasPrefix(lower, "gemini") {
		return ModelCapability{Backend: BackendGemini, Conversational: true}
	}
	for _, marker := range conversationalMarkers {
		if strings.Contains(lower, marker) {
			return ModelCapability{Backend: BackendHuggingFace, Conversational: true}
		}
	}
	return ModelCapability{Backend: BackendHuggingFace, Conversational: false}
}

type InferenceConfig struct {
	ChatBaseURL    string
	TextBaseURL    string
	WhoAmIBaseURL  string
	PrimaryModel   string
	FallbackModels []string
}

var (
	inferenceConfig *InferenceConfig
	inferenceOnce   sync.Once
)

// LoadInferenceConfig returns the fixed model chain. Base URLs may be overridden
// for local proxies; model ids may not.
func LoadInferenceConfig() *InferenceConfig {
	inferenceOnce.Do(func() {
		fallbacks := append([]string(nil), FallbackModels...)
		if LoadGeminiConfig().Enabled() {
			fallbacks = append(fallbacks, LoadGeminiConfig().Model)
		}
		inferenceConfig = &InferenceConfig{
			ChatBaseURL:    getEnv("HF_CHAT_BASE_URL", DefaultChatBaseURL),
			TextBaseURL:    getEnv("HF_TEXT_BASE_URL", DefaultTextBaseURL),
			WhoAmIBaseURL:  getEnv("HF_HUB_BASE_URL", DefaultWhoAmIBaseURL),
			PrimaryModel:   PrimaryModel,
			FallbackModels: fallbacks,
		}
	})
	return inferenceConfig
}
