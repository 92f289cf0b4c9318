package handler

import (
	"context"
	"time"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/fadilmartias/cv-assistant/internal/middleware"
	"github.com/fadilmartias/cv-assistant/internal/model"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/timeout"
)

const (
	analysisTimeout   = 30 * time.Second
	generationTimeout = 60 * time.Second
)

type AssistantUsecaseInterface interface {
	Analyze(ctx context.Context, jobDescription, cvContent string) (model.JobAnalysis, model.CVMatchAnalysis, error)
	GenerateQuestions(ctx context.Context, job model.JobAnalysis, match *model.CVMatchAnalysis, cvContent string) ([]model.GeneratedQuestion, error)
	GenerateCV(ctx context.Context, jobDescription string, data model.CVData, job *model.JobAnalysis) (*model.GenerationResult, error)
	GenerateCoverLetter(ctx context.Context, jobDescription string, data model.CVData) (string, error)
	VerifyConnection(ctx context.Context) model.ConnectionStatus
}

type AssistantHandler struct {
	uc     AssistantUsecaseInterface
	upload *config.UploadConfig
}

func NewAssistantHandler(uc AssistantUsecaseInterface, upload *config.UploadConfig) *AssistantHandler {
	return &AssistantHandler{uc: uc, upload: upload}
}

func (h *AssistantHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/analyze", timeout.NewWithContext(h.Analyze, analysisTimeout))
	router.Post("/generate-questions", timeout.NewWithContext(h.GenerateQuestions, analysisTimeout))
	router.Post("/cv/generate", middleware.RateLimiter(10, time.Minute), timeout.NewWithContext(h.GenerateCV, generationTimeout))
	router.Post("/cover-letter/generate", h.GenerateCoverLetter)
	router.Post("/parse-file", h.ParseFile)
	router.Get("/verify", middleware.RateLimiter(5, time.Minute), timeout.NewWithContext(h.Verify, analysisTimeout))
}
