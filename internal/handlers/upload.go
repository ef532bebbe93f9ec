package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-warmup/internal/models"
)

// readUpload loads a multipart file field into memory.
func readUpload(c *fiber.Ctx, field string, maxFileSize int64) (models.RawDocument, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return models.RawDocument{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("missing %q upload", field))
	}

	if fileHeader.Size > maxFileSize {
		return models.RawDocument{}, fiber.NewError(
			fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("%s file too large. Max size: %d bytes", field, maxFileSize),
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return models.RawDocument{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.RawDocument{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return models.RawDocument{
		Filename: fileHeader.Filename,
		Content:  content,
	}, nil
}
