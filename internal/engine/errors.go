// Package engine assembles the assessment pipeline behind a single
// injectable service object constructed once at startup.
package engine

import (
	"errors"
	"fmt"

	"github.com/Shaolin23/adence-ai/internal/insights"
	"github.com/Shaolin23/adence-ai/internal/llm"
	"github.com/Shaolin23/adence-ai/internal/validation"
)

// ErrConfiguration indicates a required setting is absent. It is fatal for
// the enhancement path only; base assessments stay available.
type ErrConfiguration struct {
	Missing string
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Missing)
}

// Class buckets an error for user-visible handling.
type Class string

// Error classes in the order they are checked
const (
	ClassValidation    Class = "validation"
	ClassConfiguration Class = "configuration"
	ClassExternal      Class = "external"
	ClassUnknown       Class = "unknown"
)

// Classify buckets an error and returns a suggested remediation string.
// Unrecognized errors are classified as unknown rather than propagated raw.
func Classify(err error) (Class, string) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		return ClassValidation, "correct the named field and resubmit"
	}

	var confErr *ErrConfiguration
	if errors.As(err, &confErr) || errors.Is(err, insights.ErrNoClient) {
		return ClassConfiguration, "set the text-generation API key to enable enhanced assessments"
	}

	var llmErr *llm.Error
	if errors.As(err, &llmErr) {
		return ClassExternal, "the enhancement service is unavailable; the base assessment remains usable"
	}

	return ClassUnknown, "retry the request; if the problem persists, inspect the engine logs"
}
