package handler

import (
	"github.com/fadilmartias/cv-assistant/internal/dto"
	"github.com/fadilmartias/cv-assistant/internal/model"
	"github.com/fadilmartias/cv-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

func (h *AssistantHandler) GenerateCV(c *fiber.Ctx) error {
	var req dto.GenerateCVRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := dto.Validate(req); err != nil {
		return respondError(c, err)
	}
	if req.CVData.IsEmpty() {
		return respondError(c, util.NewFormError("invalid request body", map[string]string{
			"cvData": "must contain at least one field",
		}))
	}

	result, err := h.uc.GenerateCV(c.UserContext(), req.JobDescription, *req.CVData, req.JobAnalysis)
	if err != nil {
		return respondError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate cv",
		Data:    dto.GenerateCVResponse{GeneratedCV: *result.GeneratedCV, Result: result},
	})
}

func (h *AssistantHandler) GenerateCoverLetter(c *fiber.Ctx) error {
	// The body is optional while the feature is disabled.
	var req dto.GenerateCoverLetterRequest
	_ = c.BodyParser(&req)

	var data model.CVData
	if req.CVData != nil {
		data = *req.CVData
	}
	letter, err := h.uc.GenerateCoverLetter(c.UserContext(), req.JobDescription, data)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate cover letter",
		Data:    fiber.Map{"coverLetter": letter},
	})
}
