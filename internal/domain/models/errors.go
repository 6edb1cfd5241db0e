package models

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes validation failures for API clients.
type ErrorKind string

const (
	KindUnknownSource    ErrorKind = "unknown_source"
	KindInvalidDate      ErrorKind = "invalid_date"
	KindRangeTooLarge    ErrorKind = "range_too_large"
	KindEndBeforeStart   ErrorKind = "end_before_start"
	KindInvalidParameter ErrorKind = "invalid_parameter"
)

// ValidationError reports malformed or out-of-policy input.
//
// It is always returned before any data is fetched. Store failures are never
// wrapped in a ValidationError.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(kind ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
