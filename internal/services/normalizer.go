package services

import (
	"encoding/json"
	"strings"
)

const (
	jsonFence = "```json"
	fence     = "```"

	// responsePreviewLength bounds how much model output is echoed back in errors
	responsePreviewLength = 200
)

// NormalizeResponse decodes model output as JSON. Output that fails to decode
// is retried once with a surrounding markdown code fence removed.
func NormalizeResponse(raw string) (any, error) {
	text := strings.TrimSpace(raw)

	var value any
	if err := json.Unmarshal([]byte(text), &value); err == nil {
		return value, nil
	}

	unwrapped := text
	if strings.HasPrefix(unwrapped, jsonFence) {
		unwrapped = unwrapped[len(jsonFence):]
	} else if strings.HasPrefix(unwrapped, fence) {
		unwrapped = unwrapped[len(fence):]
	}
	if strings.HasSuffix(unwrapped, fence) {
		unwrapped = unwrapped[:len(unwrapped)-len(fence)]
	}
	unwrapped = strings.TrimSpace(unwrapped)

	value = nil
	if err := json.Unmarshal([]byte(unwrapped), &value); err != nil {
		return nil, &MalformedResponseError{
			Preview: Preview(text, responsePreviewLength),
			Cause:   err,
		}
	}

	return value, nil
}

// Preview returns at most n characters of text.
func Preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
