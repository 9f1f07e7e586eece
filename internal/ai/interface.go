package ai

import (
	"context"
	"errors"
	"fmt"
)

// CompletionProvider is the contract for generative-text backends.
// Implementations send one request per call and never retry; failures
// propagate immediately to the caller.
type CompletionProvider interface {
	// Complete sends the prompt and returns the raw text of the first
	// completion choice. The provider enforces its configured wall-clock
	// timeout regardless of the caller's context.
	Complete(ctx context.Context, prompt string) (string, error)
}

// systemInstruction fixes the model's role for every request.
const systemInstruction = "You are a professional travel planner. You respond with valid JSON only, no explanations or markdown."

// Generation parameters shared by all providers: low temperature favours
// deterministic, schema-conforming output over creativity.
const (
	defaultTemperature = 0.2
	maxOutputTokens    = 4096
)

// ErrTimeout is returned when a completion call exceeds its configured
// deadline. Distinct from a provider-reported error so callers can tell a
// slow provider from a broken one.
var ErrTimeout = errors.New("completion timed out")

// StatusError carries a non-success provider response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.Status, e.Body)
}
