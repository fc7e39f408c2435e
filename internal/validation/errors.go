// Package validation enforces the assessment input contract at the engine
// boundary. Invalid input never reaches the scoring core.
package validation

import "fmt"

// FieldError reports a validation failure on a specific input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
