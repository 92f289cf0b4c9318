package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey string
	Model  string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = &GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", GeminiFallbackModel),
		}
	})
	return geminiConfig
}

// Enabled reports whether a Gemini key is configured.
func (c *GeminiConfig) Enabled() bool {
	return c != nil && c.APIKey != ""
}
