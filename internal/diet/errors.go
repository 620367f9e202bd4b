package diet

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures. Only validation errors ever reach
// the end user as a failure; configuration and transient errors are absorbed
// into a fallback-origin plan and logged for operators.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindConfiguration ErrorKind = "configuration"
	KindTransient     ErrorKind = "transient"
)

// Error is a classified pipeline error.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func newTransientError(message string, cause error) *Error {
	return &Error{Kind: KindTransient, Message: message, Cause: cause}
}

func newConfigurationError(message string, cause error) *Error {
	return &Error{Kind: KindConfiguration, Message: message, Cause: cause}
}

// KindOf returns the classification of err, or KindTransient for errors the
// pipeline never labelled explicitly.
func KindOf(err error) ErrorKind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return KindTransient
}
