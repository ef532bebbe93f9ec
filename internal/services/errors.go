package services

import "fmt"

// UnsupportedFormatError is returned when a document has an unknown extension
// and does not look like plain text.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	ext := e.Extension
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("unsupported file format: %s. Please upload a PDF, DOCX, or TXT file", ext)
}

// ExtractionError represents a failure to read text out of a recognized format
type ExtractionError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError is returned when model output cannot be decoded as JSON.
// Preview holds at most the first 200 characters of the offending text.
type MalformedResponseError struct {
	Preview string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse JSON response: %v. Response preview: %s", e.Cause, e.Preview)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// SchemaError names the first field of a payload that did not match its shape
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid response at %s: %s", e.Field, e.Reason)
}

// ExternalCallError represents a failed or unusable call to the model API
type ExternalCallError struct {
	Message string
	Cause   error
}

func (e *ExternalCallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model call failed: %s", e.Message)
}

func (e *ExternalCallError) Unwrap() error {
	return e.Cause
}

// InputValidationError is returned for empty or too short inputs
type InputValidationError struct {
	Message string
}

func (e *InputValidationError) Error() string {
	return e.Message
}
