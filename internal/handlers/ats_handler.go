package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-warmup/internal/services"
)

type ATSHandler struct {
	interviewService services.InterviewService
	maxFileSize      int64
}

func NewATSHandler(interviewService services.InterviewService, maxFileSize int64) *ATSHandler {
	return &ATSHandler{
		interviewService: interviewService,
		maxFileSize:      maxFileSize,
	}
}

// HandleCheckATSScore handles POST /check-ats-score
func (h *ATSHandler) HandleCheckATSScore(c *fiber.Ctx) error {
	resume, err := readUpload(c, "resume", h.maxFileSize)
	if err != nil {
		return operationError("Error checking ATS score", err)
	}

	jobDescription := c.FormValue("job_description_text")
	if jobDescription == "" {
		return operationError("Error checking ATS score",
			fiber.NewError(fiber.StatusBadRequest, "job_description_text is required"))
	}

	result, err := h.interviewService.CheckATSScore(c.UserContext(), resume, jobDescription)
	if err != nil {
		return operationError("Error checking ATS score", err)
	}

	return c.JSON(result)
}
