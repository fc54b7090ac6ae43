package engine

import (
	"errors"
	"fmt"
)

// errNoGenerator is returned when AI content is requested but no text
// generation capability was configured at startup.
var errNoGenerator = errors.New("no text generation capability configured")

// ValidationError reports required input missing from a record. The caller
// maps it to a 4xx response; generation aborts before any enhancement or
// rendering work.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// GenerationError reports a rendering or content-generation failure. Fatal
// to the request; no partial buffer is returned.
type GenerationError struct {
	Kind Kind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
