package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"alfredoptarigan/interview-warmup/internal/models"
)

// minTextLength is the shortest trimmed input worth sending to the model
const minTextLength = 10

const defaultQuestionType = "general"

type InterviewService interface {
	GenerateQuestions(ctx context.Context, resume models.RawDocument) (any, error)
	EvaluateAnswer(ctx context.Context, question, answer, questionType string) (any, error)
	CheckATSScore(ctx context.Context, resume models.RawDocument, jobDescription string) (any, error)
}

type interviewService struct {
	extractor     TextExtractor
	generator     Generator
	promptBuilder *PromptBuilder
}

func NewInterviewService(extractor TextExtractor, generator Generator) InterviewService {
	return &interviewService{
		extractor:     extractor,
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

// GenerateQuestions implements InterviewService.
func (s *interviewService) GenerateQuestions(ctx context.Context, resume models.RawDocument) (any, error) {
	resumeText, err := s.extractor.Extract(resume.Content, resume.Filename)
	if err != nil {
		return nil, err
	}
	if !longEnough(resumeText) {
		return nil, &InputValidationError{Message: "The uploaded file appears to be empty or contains no readable text."}
	}

	log.Printf("📄 Extracted %d characters from %s", len(resumeText), resume.Filename)

	prompt := s.promptBuilder.BuildQuestionsPrompt(resumeText)
	return s.generate(ctx, prompt, QuestionListShape)
}

// EvaluateAnswer implements InterviewService.
func (s *interviewService) EvaluateAnswer(ctx context.Context, question, answer, questionType string) (any, error) {
	if strings.TrimSpace(questionType) == "" {
		questionType = defaultQuestionType
	}

	log.Printf("📝 Evaluating answer for question: %s...", Preview(question, 100))
	log.Printf("📝 Question type: %s", questionType)

	prompt := s.promptBuilder.BuildAnswerEvaluationPrompt(question, answer, questionType)
	return s.generate(ctx, prompt, FeedbackShape)
}

// CheckATSScore implements InterviewService.
func (s *interviewService) CheckATSScore(ctx context.Context, resume models.RawDocument, jobDescription string) (any, error) {
	resumeText, err := s.extractor.Extract(resume.Content, resume.Filename)
	if err != nil {
		return nil, err
	}

	jdText := strings.TrimSpace(jobDescription)

	if !longEnough(resumeText) {
		return nil, &InputValidationError{Message: "The uploaded resume appears to be empty or contains no readable text."}
	}
	if !longEnough(jdText) {
		return nil, &InputValidationError{Message: "The job description text appears to be empty or contains no readable text."}
	}

	prompt := s.promptBuilder.BuildATSPrompt(resumeText, jdText)
	return s.generate(ctx, prompt, ATSResultShape)
}

// generate runs one model call and passes the answer through normalization
// and shape validation.
func (s *interviewService) generate(ctx context.Context, prompt string, shape *Shape) (any, error) {
	log.Printf("📝 %s prompt length: %d characters", shape.Name, len(prompt))

	raw, err := s.generator.GenerateStructured(ctx, prompt, shape)
	if err != nil {
		return nil, err
	}

	value, err := NormalizeResponse(raw)
	if err != nil {
		log.Printf("❌ Failed to parse %s response: %s", shape.Name, Preview(raw, responsePreviewLength))
		return nil, err
	}

	validated, err := Validate(value, shape)
	if err != nil {
		log.Printf("❌ %s response failed validation: %v", shape.Name, err)
		return nil, fmt.Errorf("unexpected %s payload: %w", shape.Name, err)
	}

	log.Printf("✅ %s response validated", shape.Name)
	return validated, nil
}

func longEnough(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= minTextLength
}
