package handler

import (
	"fmt"
	"io"

	"github.com/fadilmartias/cv-assistant/internal/dto"
	"github.com/fadilmartias/cv-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

const uploadField = "file"

func (h *AssistantHandler) ParseFile(c *fiber.Ctx) error {
	file, err := c.FormFile(uploadField)
	if err != nil {
		return respondError(c, util.NewFormError("file is required", map[string]string{
			uploadField: "is required",
		}))
	}

	f, err := file.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("failed to open upload: %w", err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, fmt.Errorf("failed to read upload: %w", err))
	}

	result, err := util.ExtractText(file.Filename, data, util.ExtractOptions{
		MaxSize:    h.upload.MaxFileSize,
		OCREnabled: h.upload.OCREnabled,
	})
	if err != nil {
		return respondError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success parse file",
		Data: dto.ParseFileResponse{
			Text:       result.Text,
			FileName:   file.Filename,
			FileType:   result.FileType,
			Characters: len([]rune(result.Text)),
			Method:     result.Method,
		},
	})
}
