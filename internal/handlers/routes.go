package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, resumeHandler *ResumeHandler, answerHandler *AnswerHandler, atsHandler *ATSHandler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the AI Interview Warmup Backend!",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Post("/analyze-resume", resumeHandler.HandleAnalyzeResume)
	app.Post("/evaluate-answer", answerHandler.HandleEvaluateAnswer)
	app.Post("/check-ats-score", atsHandler.HandleCheckATSScore)
	app.Post("/text-to-speech", HandleTextToSpeech)
}
