// Package eligibility turns a free-text description of someone's situation
// into a structured eligibility analysis, action plan and document checklist.
// A generative model does the heavy lifting when configured; every operation
// has a deterministic rule-based substitute so the package never fails.
package eligibility

import (
	"context"
	"errors"
)

// ErrUnavailable means the assistant cannot answer: no credential, transport
// failure, or an unusable response. Callers fall back to the rule-based path.
var ErrUnavailable = errors.New("eligibility: assistant unavailable")

// Assistant produces free-form text for a prompt.
type Assistant interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
