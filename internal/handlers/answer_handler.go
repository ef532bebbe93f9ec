package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-warmup/internal/models"
	"alfredoptarigan/interview-warmup/internal/services"
)

type AnswerHandler struct {
	interviewService services.InterviewService
	validate         *validator.Validate
}

func NewAnswerHandler(interviewService services.InterviewService) *AnswerHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &AnswerHandler{
		interviewService: interviewService,
		validate:         validate,
	}
}

// HandleEvaluateAnswer handles POST /evaluate-answer
func (h *AnswerHandler) HandleEvaluateAnswer(c *fiber.Ctx) error {
	var req models.EvaluateAnswerRequest

	if err := c.BodyParser(&req); err != nil {
		return operationError("Error evaluating answer", fiber.NewError(fiber.StatusBadRequest, "Invalid request payload"))
	}

	if err := h.validate.Struct(&req); err != nil {
		return operationError("Error evaluating answer", requestError(err))
	}

	result, err := h.interviewService.EvaluateAnswer(c.UserContext(), req.Question, req.Answer, req.Type)
	if err != nil {
		return operationError("Error evaluating answer", err)
	}

	return c.JSON(result)
}

func requestError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	fieldErr := validationErrs[0]
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s is %s", fieldErr.Field(), fieldErr.Tag()))
}
