package errors

import (
	"errors"
	"fmt"
)

// Error codes for programmatic handling.
const (
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeSourceNotFound = "SOURCE_NOT_FOUND"
	CodeStoreFailure   = "STORE_ERROR"
	CodeJournalFailure = "JOURNAL_ERROR"
)

// MembankError is a structured error with a code and actionable suggestion.
type MembankError struct {
	Code       string // machine-readable code (e.g. SOURCE_NOT_FOUND)
	Message    string // human-readable description
	Suggestion string // actionable fix
	Err        error  // wrapped underlying error
}

// Error implements the error interface.
func (e *MembankError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap supports errors.Is / errors.As.
func (e *MembankError) Unwrap() error {
	return e.Err
}

// New creates a MembankError with the given code and message.
func New(code, message string) *MembankError {
	return &MembankError{Code: code, Message: message}
}

// Wrap creates a MembankError wrapping an existing error.
func Wrap(code, message string, err error) *MembankError {
	return &MembankError{Code: code, Message: message, Err: err}
}

// WithSuggestion returns a copy with the suggestion set.
func (e *MembankError) WithSuggestion(suggestion string) *MembankError {
	e.Suggestion = suggestion
	return e
}

// Is checks whether target matches this error's code.
func (e *MembankError) Is(target error) bool {
	var me *MembankError
	if errors.As(target, &me) {
		return e.Code == me.Code
	}
	return false
}

// NotFound creates the SOURCE_NOT_FOUND error for an ingest source path.
// A missing source is recoverable: callers ingesting several sources
// report it and continue with the rest.
func NotFound(path string) *MembankError {
	return New(CodeSourceNotFound, "source not found: "+path)
}

// IsNotFound reports whether err carries the SOURCE_NOT_FOUND code.
func IsNotFound(err error) bool {
	return AsCode(err) == CodeSourceNotFound
}

// AsCode extracts the MembankError code from an error, or "" if not a MembankError.
func AsCode(err error) string {
	var me *MembankError
	if errors.As(err, &me) {
		return me.Code
	}
	return ""
}

// Suggestion extracts the suggestion from an error, or "" if not a MembankError.
func Suggestion(err error) string {
	var me *MembankError
	if errors.As(err, &me) {
		return me.Suggestion
	}
	return ""
}
