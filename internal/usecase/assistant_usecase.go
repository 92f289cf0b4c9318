package usecase

import (
	"errors"
	"time"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/fadilmartias/cv-assistant/internal/service"
	"github.com/fadilmartias/cv-assistant/internal/util"
	"github.com/sirupsen/logrus"
)

const (
	analysisMaxTokens  = 1024
	questionsMaxTokens = 1500
	cvMaxTokens        = 3000
	verifyMaxTokens    = 10
)

const (
	sourceAI        = "ai"
	sourceHeuristic = "heuristic"
)

// AssistantUsecase holds every operation behind the HTTP surface. It keeps
// no state between calls.
type AssistantUsecase struct {
	generator    service.GeneratorInterface
	inference    service.InferenceServiceInterface
	token        service.TokenSource
	primaryModel string
	now          func() time.Time
	log          *logrus.Logger
}

func NewAssistantUsecase(generator service.GeneratorInterface, inference service.InferenceServiceInterface, token service.TokenSource, primaryModel string) *AssistantUsecase {
	if token == nil {
		token = config.ResolveEnvToken
	}
	return &AssistantUsecase{
		generator:    generator,
		inference:    inference,
		token:        token,
		primaryModel: primaryModel,
		now:          time.Now,
		log:          util.GetLogger(),
	}
}

// degrade reports whether an AI failure may be replaced by a heuristic
// result. A missing credential is always surfaced.
func (uc *AssistantUsecase) degrade(op string, err error) bool {
	if errors.Is(err, config.ErrNoCredential) {
		return false
	}
	uc.log.WithField("operation", op).WithError(err).Warn("ai path failed, using heuristic")
	return true
}
