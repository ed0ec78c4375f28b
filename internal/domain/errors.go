package domain

import (
	"errors"
	"strings"
)

// ErrSessionNotFound is returned when a session identifier is unknown.
// Callers that only need personalization treat it as "no session", not
// as a failure.
var ErrSessionNotFound = errors.New("session not found")

// ErrDuplicateSubmission is returned when the same submitter posts the
// contact form twice inside the configured window.
var ErrDuplicateSubmission = errors.New("duplicate submission")

// ValidationError carries one human-readable message per failed field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
