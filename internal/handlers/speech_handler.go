package handlers

import "github.com/gofiber/fiber/v2"

// HandleTextToSpeech handles POST /text-to-speech.
// Speech is synthesized in the browser; the route only exists for old clients.
func HandleTextToSpeech(c *fiber.Ctx) error {
	return fiber.NewError(
		fiber.StatusNotImplemented,
		"Text-to-speech is now handled by the browser. This endpoint is deprecated.",
	)
}
