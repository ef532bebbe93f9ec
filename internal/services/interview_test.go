package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-warmup/internal/models"
	"alfredoptarigan/interview-warmup/internal/services"
	"alfredoptarigan/interview-warmup/mocks"
)

const resumeText = "Jane Doe\nBackend engineer with 6 years of Go, Postgres and Kubernetes."

func promptContaining(parts ...string) any {
	return mock.MatchedBy(func(prompt string) bool {
		for _, part := range parts {
			if !strings.Contains(prompt, part) {
				return false
			}
		}
		return true
	})
}

func TestGenerateQuestions_FencedResponse(t *testing.T) {
	gen := new(mocks.MockGenerator)
	gen.On("GenerateStructured", mock.Anything, promptContaining("RESUME:\n"+resumeText), services.QuestionListShape).
		Return("```json\n[{\"question\":\"Tell me about yourself\",\"type\":\"behavioral\"}]\n```", nil)

	svc := services.NewInterviewService(newExtractor(), gen)

	got, err := svc.GenerateQuestions(context.Background(), models.RawDocument{
		Filename: "resume.txt",
		Content:  []byte(resumeText + "\n"),
	})

	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"question": "Tell me about yourself", "type": "behavioral"},
	}, got)
	gen.AssertExpectations(t)
}

func TestGenerateQuestions_TooShort(t *testing.T) {
	gen := new(mocks.MockGenerator)
	svc := services.NewInterviewService(newExtractor(), gen)

	_, err := svc.GenerateQuestions(context.Background(), models.RawDocument{
		Filename: "resume.txt",
		Content:  []byte("   short  "),
	})

	var inputErr *services.InputValidationError
	require.True(t, errors.As(err, &inputErr), "expected InputValidationError, got %v", err)
	gen.AssertNotCalled(t, "GenerateStructured", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateQuestions_ExtractionFailure(t *testing.T) {
	gen := new(mocks.MockGenerator)
	svc := services.NewInterviewService(newExtractor(), gen)

	_, err := svc.GenerateQuestions(context.Background(), models.RawDocument{
		Filename: "photo.png",
		Content:  []byte("\x89PNG\r\n\x1a\n\x00\x00"),
	})

	var unsupported *services.UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "png", unsupported.Extension)
	gen.AssertNotCalled(t, "GenerateStructured", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateQuestions_SchemaMismatch(t *testing.T) {
	gen := new(mocks.MockGenerator)
	gen.On("GenerateStructured", mock.Anything, mock.Anything, services.QuestionListShape).
		Return(`[{"question":"Q"}]`, nil)

	svc := services.NewInterviewService(newExtractor(), gen)

	_, err := svc.GenerateQuestions(context.Background(), models.RawDocument{
		Filename: "resume.txt",
		Content:  []byte(resumeText),
	})

	var schemaErr *services.SchemaError
	require.True(t, errors.As(err, &schemaErr), "expected SchemaError, got %v", err)
	assert.Equal(t, "[0].type", schemaErr.Field)
}

func TestGenerateQuestions_GeneratorFailure(t *testing.T) {
	gen := new(mocks.MockGenerator)
	gen.On("GenerateStructured", mock.Anything, mock.Anything, services.QuestionListShape).
		Return("", &services.ExternalCallError{Message: "failed to call Gemini API", Cause: errors.New("unavailable")})

	svc := services.NewInterviewService(newExtractor(), gen)

	_, err := svc.GenerateQuestions(context.Background(), models.RawDocument{
		Filename: "resume.txt",
		Content:  []byte(resumeText),
	})

	var externalErr *services.ExternalCallError
	require.True(t, errors.As(err, &externalErr))
	assert.Contains(t, err.Error(), "unavailable")
}

func TestEvaluateAnswer_DefaultsQuestionType(t *testing.T) {
	gen := new(mocks.MockGenerator)
	gen.On("GenerateStructured", mock.Anything,
		promptContaining(`**Interview Question:** "Why Go?"`, "**Question Type:** general", `**Candidate's Answer:** "Simplicity."`),
		services.FeedbackShape).
		Return(`{"feedback":"## Overall Assessment\nShort but clear.","score":6}`, nil)

	svc := services.NewInterviewService(newExtractor(), gen)

	got, err := svc.EvaluateAnswer(context.Background(), "Why Go?", "Simplicity.", "")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"feedback": "## Overall Assessment\nShort but clear.",
		"score":    float64(6),
	}, got)
	gen.AssertExpectations(t)
}

func TestEvaluateAnswer_MalformedResponse(t *testing.T) {
	gen := new(mocks.MockGenerator)
	gen.On("GenerateStructured", mock.Anything, mock.Anything, services.FeedbackShape).
		Return("Sorry, I cannot help with that.", nil)

	svc := services.NewInterviewService(newExtractor(), gen)

	_, err := svc.EvaluateAnswer(context.Background(), "Why Go?", "Simplicity.", "technical")

	var malformed *services.MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "Sorry, I cannot help with that.", malformed.Preview)
}

func TestCheckATSScore(t *testing.T) {
	jobDescription := "  Looking for a Go engineer with Kubernetes experience.  "

	gen := new(mocks.MockGenerator)
	gen.On("GenerateStructured", mock.Anything,
		promptContaining("RESUME:\n"+resumeText, "JOB DESCRIPTION:\nLooking for a Go engineer with Kubernetes experience."),
		services.ATSResultShape).
		Return(`{"score":82,"breakdown":{"keywordMatching":80,"skillsAlignment":90,"formatting":75},"analysis":"Strong overlap.","tips":["Quantify impact"]}`, nil)

	svc := services.NewInterviewService(newExtractor(), gen)

	got, err := svc.CheckATSScore(context.Background(), models.RawDocument{
		Filename: "resume.txt",
		Content:  []byte(resumeText),
	}, jobDescription)

	require.NoError(t, err)
	result, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(82), result["score"])
	assert.Equal(t, []any{"Quantify impact"}, result["tips"])
	gen.AssertExpectations(t)
}

func TestCheckATSScore_ShortJobDescription(t *testing.T) {
	gen := new(mocks.MockGenerator)
	svc := services.NewInterviewService(newExtractor(), gen)

	_, err := svc.CheckATSScore(context.Background(), models.RawDocument{
		Filename: "resume.txt",
		Content:  []byte(resumeText),
	}, "  Go dev  ")

	var inputErr *services.InputValidationError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, err.Error(), "job description")
	gen.AssertNotCalled(t, "GenerateStructured", mock.Anything, mock.Anything, mock.Anything)
}
