// Package enhance provides AI text generation and per-field enrichment for
// document records. All model access goes through the TextGenerator
// interface; the production implementation talks to Gemini and tests inject
// a deterministic stub. Enhancement failures are isolated per field: a bad
// or failed model response keeps the caller's original text and never fails
// the surrounding document generation.
package enhance

import (
	"context"
	"fmt"
)

// Request is one generation call: the prompt plus its sampling parameters.
// Each prompt constructor picks the temperature and token budget suited to
// its task.
type Request struct {
	Prompt      string
	Temperature float32
	MaxTokens   int32
}

// TextGenerator produces text for a Request.
type TextGenerator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// EnhancementError reports a failed enhancement of a named field. It is
// recorded, never propagated as a request failure.
type EnhancementError struct {
	Field string
	Err   error
}

func (e *EnhancementError) Error() string {
	return fmt.Sprintf("enhance %s: %v", e.Field, e.Err)
}

func (e *EnhancementError) Unwrap() error { return e.Err }
