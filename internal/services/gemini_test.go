package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-warmup/internal/config"
	"alfredoptarigan/interview-warmup/internal/services"
)

const testModel = "gemini-test"

func candidateBody(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	})
	return string(body)
}

func newTestGenerator(t *testing.T, handler http.HandlerFunc) services.Generator {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gen, err := services.NewGeminiService(context.Background(), config.GeminiConfig{
		APIKey:  "test-key",
		Model:   testModel,
		BaseURL: srv.URL,
	})
	require.NoError(t, err)
	return gen
}

func TestNewGeminiService_RequiresAPIKey(t *testing.T) {
	_, err := services.NewGeminiService(context.Background(), config.GeminiConfig{Model: testModel})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestGenerateStructured_ReturnsTrimmedText(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, candidateBody("\n  [{\"question\":\"Q\",\"type\":\"technical\"}]  \n"))
	})

	text, err := gen.GenerateStructured(context.Background(), "prompt", services.QuestionListShape)

	require.NoError(t, err)
	assert.Equal(t, `[{"question":"Q","type":"technical"}]`, text)
}

func TestGenerateStructured_SendsJSONModeAndSchema(t *testing.T) {
	type captured struct {
		path string
		body []byte
	}
	requests := make(chan captured, 1)
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests <- captured{path: r.URL.Path, body: body}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, candidateBody(`[]`))
	})

	_, err := gen.GenerateStructured(context.Background(), "Generate questions", services.QuestionListShape)
	require.NoError(t, err)

	req := <-requests
	assert.Contains(t, req.path, "models/"+testModel+":generateContent")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(req.body, &payload))

	generationConfig, ok := payload["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing from %v", payload)
	assert.Equal(t, "application/json", generationConfig["responseMimeType"])

	schema, ok := generationConfig["responseSchema"].(map[string]any)
	require.True(t, ok, "responseSchema missing from %v", generationConfig)
	assert.Equal(t, "ARRAY", schema["type"])

	items, ok := schema["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"question", "type"}, items["required"])

	contents, ok := payload["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 1)
	assert.Contains(t, mustJSON(t, contents[0]), "Generate questions")
}

func TestGenerateStructured_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "whitespace text", status: http.StatusOK, body: candidateBody(" \n\t "), message: "no text content in response"},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`, message: "no text content in response"},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"code":500,"message":"backend down","status":"INTERNAL"}}`, message: "failed to call Gemini API"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			text, err := gen.GenerateStructured(context.Background(), "prompt", services.FeedbackShape)

			assert.Empty(t, text)
			var callErr *services.ExternalCallError
			require.True(t, errors.As(err, &callErr), "expected ExternalCallError, got %v", err)
			assert.Equal(t, tt.message, callErr.Message)
		})
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
