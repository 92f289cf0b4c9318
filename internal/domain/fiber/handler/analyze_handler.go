package handler

import (
	"github.com/fadilmartias/cv-assistant/internal/dto"
	"github.com/fadilmartias/cv-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

func (h *AssistantHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := dto.Validate(req); err != nil {
		return respondError(c, err)
	}

	job, match, err := h.uc.Analyze(c.UserContext(), req.JobDescription, req.CVContent)
	if err != nil {
		return respondError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success analyze job and cv",
		Data:    dto.AnalyzeResponse{JobAnalysis: job, CVMatch: match},
	})
}

func (h *AssistantHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := dto.Validate(req); err != nil {
		return respondError(c, err)
	}

	questions, err := h.uc.GenerateQuestions(c.UserContext(), *req.JobAnalysis, req.CVMatch, req.CVContent)
	if err != nil {
		return respondError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate questions",
		Data:    dto.GenerateQuestionsResponse{Questions: questions, TotalQuestions: len(questions)},
	})
}

func (h *AssistantHandler) Verify(c *fiber.Ctx) error {
	status := h.uc.VerifyConnection(c.UserContext())
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: status.Message,
		Data:    status,
	})
}
