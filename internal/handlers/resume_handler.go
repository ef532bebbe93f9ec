package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-warmup/internal/models"
	"alfredoptarigan/interview-warmup/internal/services"
)

type ResumeHandler struct {
	interviewService services.InterviewService
	maxFileSize      int64
}

func NewResumeHandler(interviewService services.InterviewService, maxFileSize int64) *ResumeHandler {
	return &ResumeHandler{
		interviewService: interviewService,
		maxFileSize:      maxFileSize,
	}
}

// HandleAnalyzeResume handles POST /analyze-resume
func (h *ResumeHandler) HandleAnalyzeResume(c *fiber.Ctx) error {
	resume, err := readUpload(c, "file", h.maxFileSize)
	if err != nil {
		return operationError("Error analyzing resume", err)
	}

	questions, err := h.interviewService.GenerateQuestions(c.UserContext(), resume)
	if err != nil {
		return operationError("Error analyzing resume", err)
	}

	return c.JSON(models.QuestionsResponse{Questions: questions})
}
