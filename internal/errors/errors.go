// Package errors carries termstat's coded errors. Each error names the
// subsystem that failed and may carry a hint for the user.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies the subsystem an error came from.
type Code string

const (
	ErrConfig Code = "CONFIG"
	ErrTable  Code = "TABLE"
	ErrPath   Code = "PATH"
	ErrFeed   Code = "FEED"
	ErrOutput Code = "OUTPUT"
)

// Error is a coded termstat error. Message says what went wrong, Cause holds
// the underlying error if any, and Suggestion is an optional hint shown on
// its own line.
type Error struct {
	Code       Code
	Message    string
	Suggestion string
	Cause      error
}

func New(code Code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Newf formats the message; there is no suggestion.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapWithCode attaches err as the cause of a new coded error.
func WrapWithCode(err error, code Code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

// Error renders "message: cause", followed by an indented hint line when a
// suggestion is set. The result always ends in a newline so it can be
// printed as-is.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	b.WriteByte('\n')
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  hint: %s\n", e.Suggestion)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error with the same code, so a bare New(code, "", "")
// works as a sentinel for errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// IsCode reports whether err, or anything it wraps, is an *Error with code.
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
