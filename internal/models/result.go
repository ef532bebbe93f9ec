package models

// EvaluateAnswerRequest is the body of POST /evaluate-answer.
// An empty answer is still graded.
type EvaluateAnswerRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"`
	Type     string `json:"type"`
}

type QuestionsResponse struct {
	Questions any `json:"questions"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   int    `json:"code"`
}
