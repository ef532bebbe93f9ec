package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionsPrompt creates prompt for interview question generation
func (pb *PromptBuilder) BuildQuestionsPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert recruiter. Based on this resume, generate 5 interview questions: 3 technical and 2 behavioral.

RESUME:
%s`, resumeText)
}

// BuildAnswerEvaluationPrompt creates prompt for grading a candidate's answer
func (pb *PromptBuilder) BuildAnswerEvaluationPrompt(question, answer, questionType string) string {
	return fmt.Sprintf(`You are an expert interview coach with years of experience evaluating candidates. Provide comprehensive, constructive feedback on the candidate's answer.

**Interview Question:** "%s"
**Question Type:** %s
**Candidate's Answer:** "%s"

Analyze the answer thoroughly and provide detailed feedback in the following structured format using Markdown:

## Overall Assessment
- A brief 2-3 sentence summary of the answer's quality

## Strengths
- List 2-4 specific strengths of the answer
- Be specific about what was done well (e.g., "You demonstrated strong problem-solving by breaking down the problem into steps")
- Use bullet points

## Areas for Improvement
- List 2-4 specific areas where the answer could be enhanced
- Provide actionable advice (e.g., "Consider adding concrete examples from your experience")
- Use bullet points

## Detailed Analysis
- **Relevance:** How well did the answer address the question? (2-3 sentences)
- **Depth:** Was the answer sufficiently detailed? (2-3 sentences)
- **Clarity:** Was the answer clear and well-structured? (2-3 sentences)
- **Examples/Evidence:** Did the candidate provide concrete examples? (2-3 sentences)

## Recommendations
- Provide 2-3 specific recommendations for improvement
- Include what to do differently next time
- Suggest specific points to include if asked this question again

Keep the feedback encouraging and constructive. The tone should be supportive while being honest about areas for improvement. Use proper Markdown formatting with headers (##), bold text (**text**), and bullet points (-).`,
		question, questionType, answer)
}

// BuildATSPrompt creates prompt for scoring a resume against a job description
func (pb *PromptBuilder) BuildATSPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an ATS (Applicant Tracking System) expert. Analyze the following resume against the job description and provide:

1. An overall ATS compatibility score (0-100)
2. A breakdown of the score into three components:
   - Keyword Matching (0-100): How well the resume matches keywords from the job description
   - Skills Alignment (0-100): How well the candidate's skills match the job requirements
   - Formatting (0-100): How ATS-friendly the resume formatting is
3. A brief analysis explaining the overall score and key findings
4. 3-5 specific, actionable tips to improve the resume's ATS performance

Be constructive and specific in your recommendations.

RESUME:
%s

JOB DESCRIPTION:
%s`, resumeText, jobDescription)
}
