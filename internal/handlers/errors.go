package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-warmup/internal/models"
	"alfredoptarigan/interview-warmup/internal/services"
)

// ErrorHandler renders every error as {"detail": ..., "code": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("❌ [%v] %s %s: %v", c.Locals("requestid"), c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Detail: err.Error(),
		Code:   code,
	})
}

// operationError converts a service failure into a client facing error
// whose message starts with prefix.
func operationError(prefix string, err error) error {
	return fiber.NewError(statusFor(err), fmt.Sprintf("%s: %v", prefix, err))
}

func statusFor(err error) int {
	var (
		inputErr       *services.InputValidationError
		unsupportedErr *services.UnsupportedFormatError
		extractionErr  *services.ExtractionError
		externalErr    *services.ExternalCallError
		fiberErr       *fiber.Error
	)

	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.As(err, &inputErr):
		return fiber.StatusBadRequest
	case errors.As(err, &unsupportedErr):
		return fiber.StatusUnsupportedMediaType
	case errors.As(err, &extractionErr):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &externalErr):
		return fiber.StatusBadGateway
	default:
		// malformed or mismatched model output
		return fiber.StatusInternalServerError
	}
}
