package eligibility

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject finds the outermost {...} span in model output and
// unmarshals it into v. Model responses routinely wrap JSON in prose or
// markdown fences; everything outside the braces is discarded.
func ExtractJSONObject(text string, v any) error {
	return extractSpan(text, "{", "}", v)
}

// ExtractJSONArray does the same for a [...] span.
func ExtractJSONArray(text string, v any) error {
	return extractSpan(text, "[", "]", v)
}

func extractSpan(text, opener, closer string, v any) error {
	start := strings.Index(text, opener)
	end := strings.LastIndex(text, closer)
	if start == -1 || end == -1 || end < start {
		return ErrUnavailable
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), v); err != nil {
		return ErrUnavailable
	}
	return nil
}
