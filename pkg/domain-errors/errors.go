// Package domainerrors defines the error taxonomy shared by every source adapter
// and the unified endpoint. Services return *Error values; transports map them
// to HTTP status codes with HTTPStatus.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Code identifies an error category in API responses.
type Code string

const (
	CodeMissingParameters Code = "MISSING_PARAMETERS"
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeNotFound          Code = "NOT_FOUND"
	CodeRateLimitExceeded Code = "RATE_LIMIT_EXCEEDED"
	CodePortalUnavailable Code = "PORTAL_UNAVAILABLE"
	CodePortalTimeout     Code = "PORTAL_TIMEOUT"
	CodePortalError       Code = "PORTAL_ERROR"
	CodeTransformation    Code = "TRANSFORMATION_ERROR"
	CodeInternal          Code = "INTERNAL_SERVER_ERROR"
)

// Error is a categorised failure. Details and Source are surfaced to callers;
// Err is kept for logging only.
type Error struct {
	Code    Code
	Message string
	Details map[string]any
	Source  string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

// WithDetails returns a copy of e carrying the given details.
func (e *Error) WithDetails(details map[string]any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// WithSource returns a copy of e annotated with the portal that produced it.
func (e *Error) WithSource(source string) *Error {
	cp := *e
	cp.Source = source
	return &cp
}

// RateLimited builds the RATE_LIMIT_EXCEEDED error carrying the window reset time.
func RateLimited(source string, resetAt time.Time) *Error {
	return &Error{
		Code:    CodeRateLimitExceeded,
		Message: fmt.Sprintf("Rate limit exceeded for %s. Try again after %s", source, resetAt.UTC().Format(time.RFC3339)),
		Details: map[string]any{"resetAt": resetAt.UTC().Format(time.RFC3339)},
		Source:  source,
	}
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// From returns err as *Error, wrapping anything uncategorised as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if de, ok := As(err); ok {
		return de
	}
	return Wrap(err, CodeInternal, "An unexpected error occurred")
}

// HasCode reports whether err's chain contains an *Error with the given code.
func HasCode(err error, code Code) bool {
	de, ok := As(err)
	return ok && de.Code == code
}

// Is is an alias of HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// HTTPStatus maps a code to the response status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMissingParameters, CodeValidation, CodeRateLimitExceeded:
		return http.StatusBadRequest
	case CodePortalTimeout:
		return http.StatusGatewayTimeout
	case CodePortalUnavailable, CodePortalError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether a caller may succeed by repeating the request later.
func Retryable(code Code) bool {
	switch code {
	case CodeRateLimitExceeded, CodePortalTimeout, CodePortalUnavailable:
		return true
	}
	return false
}
