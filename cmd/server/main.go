package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/fadilmartias/cv-assistant/internal/domain/fiber/handler"
	"github.com/fadilmartias/cv-assistant/internal/middleware"
	"github.com/fadilmartias/cv-assistant/internal/service"
	"github.com/fadilmartias/cv-assistant/internal/usecase"
	"github.com/fadilmartias/cv-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := util.GetLogger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("could not load .env file, using process environment")
	}

	appConfig := config.LoadAppConfig()
	uploadConfig := config.LoadUploadConfig()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: int(uploadConfig.MaxFileSize) + 1<<20,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return util.ErrorResponse(ctx, util.ErrorResponseFormat{Code: code, Message: message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	ctx := context.Background()
	inferenceConfig := config.LoadInferenceConfig()
	geminiConfig := config.LoadGeminiConfig()

	var gemini service.GeminiServiceInterface
	if geminiConfig.Enabled() {
		g, err := service.NewGeminiService(ctx, geminiConfig.APIKey)
		if err != nil {
			log.WithError(err).Fatal("failed to create gemini client")
		}
		gemini = g
	}

	if token, err := config.ResolveEnvToken(); err != nil {
		log.WithError(err).Warn("no inference credential found, AI requests will fail until one is set")
	} else {
		log.WithField("source", token.Source).Info("inference credential found")
	}

	inference := service.NewInferenceService(inferenceConfig, config.ResolveEnvToken, gemini)
	chain := service.NewFallbackChain(inference, inferenceConfig.PrimaryModel, inferenceConfig.FallbackModels)
	uc := usecase.NewAssistantUsecase(chain, inference, config.ResolveEnvToken, inferenceConfig.PrimaryModel)
	handler.NewAssistantHandler(uc, uploadConfig).RegisterRoutes(app)

	log.WithField("models", chain.Models()).Info("fallback chain configured")

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.WithField("goroutines", runtime.NumGoroutine()).Debug("runtime stats")
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	log.WithFields(logrus.Fields{"port": appConfig.Port, "env": appConfig.Env}).Info("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
