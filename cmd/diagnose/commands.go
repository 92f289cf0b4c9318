package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/fadilmartias/cv-assistant/internal/service"
	"github.com/fadilmartias/cv-assistant/internal/usecase"
	"github.com/spf13/cobra"
)

const (
	probePrompt  = "Reply with the single word: ok"
	probeTimeout = 30 * time.Second
)

// prober is the part of the inference adapter the diagnostics need.
type prober interface {
	Generate(ctx context.Context, req service.Request) (string, error)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "diagnose",
		Short:        "Check inference provider credentials and model availability",
		SilenceUsage: true,
	}
	root.AddCommand(newTokenCmd(), newModelsCmd(), newVerifyCmd())
	return root
}

func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Show which environment variable supplies the credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.ResolveEnvToken()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token found in %s: %s\n", token.Source, maskToken(token.Value))
			return nil
		},
	}
}

func newModelsCmd() *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Probe every model of the fallback chain in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadInferenceConfig()
			inference, err := newInference(cmd.Context(), cfg, config.LoadGeminiConfig())
			if err != nil {
				return err
			}
			models := service.Candidates(cfg.PrimaryModel, cfg.FallbackModels)
			ok := probeModels(cmd.Context(), cmd.OutOrStdout(), inference, models, delay)
			if ok == 0 {
				return fmt.Errorf("none of the %d models responded", len(models))
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 2*time.Second, "pause between probes")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Run the same connection check as GET /verify",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadInferenceConfig()
			inference, err := newInference(cmd.Context(), cfg, config.LoadGeminiConfig())
			if err != nil {
				return err
			}
			uc := usecase.NewAssistantUsecase(nil, inference, config.ResolveEnvToken, cfg.PrimaryModel)

			ctx, cancel := context.WithTimeout(cmd.Context(), probeTimeout)
			defer cancel()
			status := uc.VerifyConnection(ctx)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "token found:        %t %s\n", status.TokenFound, status.TokenSource)
			fmt.Fprintf(out, "authenticated:      %t %s\n", status.Authenticated, status.Account)
			fmt.Fprintf(out, "provider reachable: %t (%s)\n", status.ProviderReachable, status.Model)
			fmt.Fprintf(out, "message:            %s\n", status.Message)
			if !status.ProviderReachable {
				return fmt.Errorf("connection check failed: %s", status.Category)
			}
			return nil
		},
	}
}

// newInference builds the adapter the server uses, including the Gemini
// backend when GEMINI_API_KEY is set.
func newInference(ctx context.Context, cfg *config.InferenceConfig, geminiCfg *config.GeminiConfig) (*service.InferenceService, error) {
	gemini, err := newGemini(ctx, geminiCfg)
	if err != nil {
		return nil, err
	}
	return service.NewInferenceService(cfg, config.ResolveEnvToken, gemini), nil
}

func newGemini(ctx context.Context, cfg *config.GeminiConfig) (service.GeminiServiceInterface, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	g, err := service.NewGeminiService(ctx, cfg.APIKey)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// probeModels calls each model once, sequentially, with a fixed delay
// between calls. It returns how many models answered.
func probeModels(ctx context.Context, out io.Writer, p prober, models []string, delay time.Duration) int {
	if ctx == nil {
		ctx = context.Background()
	}
	ok := 0
	for i, m := range models {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return ok
			case <-time.After(delay):
			}
		}
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		text, err := p.Generate(probeCtx, service.Request{Prompt: probePrompt, Model: m, MaxTokens: 10})
		cancel()
		if err == nil && strings.TrimSpace(text) == "" {
			err = service.ErrEmptyGeneration
		}
		if err != nil {
			fmt.Fprintf(out, "FAIL %-45s [%s] %v\n", m, service.ClassifyError(err), err)
			continue
		}
		ok++
		fmt.Fprintf(out, "OK   %-45s %q\n", m, strings.TrimSpace(text))
	}
	return ok
}

func maskToken(v string) string {
	if len(v) <= 8 {
		return strings.Repeat("*", len(v))
	}
	return v[:4] + strings.Repeat("*", len(v)-8) + v[len(v)-4:]
}
