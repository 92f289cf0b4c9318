package handler

import (
	"context"
	"errors"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/fadilmartias/cv-assistant/internal/service"
	"github.com/fadilmartias/cv-assistant/internal/usecase"
	"github.com/fadilmartias/cv-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

type attemptDetail struct {
	Model    string `json:"model"`
	Category string `json:"category"`
	Error    string `json:"error"`
}

type exhaustedDetails struct {
	Models   []string        `json:"models"`
	Attempts []attemptDetail `json:"attempts"`
	Hints    []string        `json:"hints"`
}

type fileErrorDetails struct {
	Code string `json:"code"`
	Hint string `json:"hint"`
}

var fileErrorStatus = map[util.ParseErrorCode]int{
	util.ParseErrUnsupported:       fiber.StatusUnsupportedMediaType,
	util.ParseErrLegacyDoc:         fiber.StatusUnsupportedMediaType,
	util.ParseErrTooLarge:          fiber.StatusRequestEntityTooLarge,
	util.ParseErrEmpty:             fiber.StatusUnprocessableEntity,
	util.ParseErrPasswordProtected: fiber.StatusUnprocessableEntity,
	util.ParseErrCorrupt:           fiber.StatusUnprocessableEntity,
}

// respondError maps a usecase error to its status code and envelope.
func respondError(c *fiber.Ctx, err error) error {
	var (
		formErr      *util.FormError
		exhausted    *service.ExhaustedError
		fileParseErr *util.FileParseError
	)

	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	case errors.Is(err, config.ErrNoCredential):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "inference provider is not configured: " + err.Error(),
		}, err)
	case errors.As(err, &exhausted):
		details := exhaustedDetails{Models: exhausted.Models(), Hints: exhausted.Hints()}
		for _, a := range exhausted.Attempts {
			d := attemptDetail{Model: a.Model, Category: string(a.Category)}
			if a.Err != nil {
				d.Error = a.Err.Error()
			}
			details.Attempts = append(details.Attempts, d)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "all inference models failed",
			Details: details,
		}, err)
	case errors.Is(err, usecase.ErrCoverLetterDisabled):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusServiceUnavailable,
			Message: err.Error(),
		})
	case errors.As(err, &fileParseErr):
		code, ok := fileErrorStatus[fileParseErr.Code]
		if !ok {
			code = fiber.StatusBadRequest
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: fileParseErr.Message,
			Details: fileErrorDetails{Code: string(fileParseErr.Code), Hint: fileParseErr.Hint},
		}, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.ErrRequestTimeout
	}

	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: "internal server error",
	}, err)
}

func badBody(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "request body must be valid JSON",
	}, err)
}
