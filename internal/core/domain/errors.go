package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateAction is returned when a write action is submitted while
// an identical one is still in flight. The first submission proceeds;
// later ones are rejected until it resolves.
var ErrDuplicateAction = errors.New("action already in progress")

// ValidationError reports client-side input problems. No request is
// issued when one is raised; the message is shown inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RequestError is a server-reported failure: the backend responded with
// a non-2xx status. Message carries the server-supplied text when one
// was present, a generic line otherwise.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// TransportError is a network-level failure: no response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
