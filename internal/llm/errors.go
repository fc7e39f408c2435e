package llm

import "fmt"

// ErrorKind classifies external-service failures at the client boundary.
type ErrorKind string

// Failure classes surfaced by the client
const (
	KindTimeout     ErrorKind = "timeout"
	KindRateLimit   ErrorKind = "rate_limit"
	KindUnavailable ErrorKind = "unavailable"
	KindEmpty       ErrorKind = "empty_response"
)

// Error is a typed external-service failure.
type Error struct {
	Op    string
	Kind  ErrorKind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm %s failed (%s): %v", e.Op, e.Kind, e.Cause)
	}
	return fmt.Sprintf("llm %s failed (%s)", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
