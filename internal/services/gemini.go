package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/interview-warmup/internal/config"
)

// Generator asks a language model for JSON output matching shape and returns
// the raw text of the answer.
type Generator interface {
	GenerateStructured(ctx context.Context, prompt string, shape *Shape) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, cfg config.GeminiConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: cfg.Model,
	}, nil
}

// GenerateStructured implements Generator.
func (g *geminiService) GenerateStructured(ctx context.Context, prompt string, shape *Shape) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   shape.GenaiSchema(),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", &ExternalCallError{Message: "failed to call Gemini API", Cause: err}
	}

	if resp == nil {
		return "", &ExternalCallError{Message: "no response generated (nil response)"}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &ExternalCallError{Message: "no text content in response"}
	}

	log.Printf("📊 Gemini response received for %s: %d characters", shape.Name, len(text))
	return text, nil
}
