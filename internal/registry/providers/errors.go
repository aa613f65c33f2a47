package providers

import (
	"context"
	"errors"
	"fmt"

	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
	"proplink/pkg/platform/sentinel"
)

// ErrorCategory defines the normalized upstream failure taxonomy
type ErrorCategory string

const (
	// ErrorTimeout indicates the portal took longer than its configured timeout
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the portal returned a record that cannot be used
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorProviderOutage indicates the portal is unavailable
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorNotFound indicates the requested record doesn't exist
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorInternal indicates an unexpected internal error
	ErrorInternal ErrorCategory = "internal"
)

// ProviderError wraps portal failures with normalized categorization
type ProviderError struct {
	Category   ErrorCategory
	Source     sources.Name
	Message    string
	Underlying error
	Retryable  bool // Whether this error is worth retrying
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("portal %s [%s]: %s: %v", e.Source, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("portal %s [%s]: %s", e.Source, e.Category, e.Message)
}

// Unwrap supports error unwrapping
func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// NewProviderError creates a new normalized provider error
func NewProviderError(category ErrorCategory, source sources.Name, message string, underlying error) *ProviderError {
	retryable := category == ErrorTimeout || category == ErrorProviderOutage

	return &ProviderError{
		Category:   category,
		Source:     source,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// IsRetryable checks if an error is worth retrying
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error
func GetCategory(err error) ErrorCategory {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrorInternal
}

// ToDomainError converts any adapter failure into a domain error tagged with
// the portal label.
func ToDomainError(source sources.Name, err error) *dErrors.Error {
	if err == nil {
		return nil
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return dErrors.Wrap(pe, categoryCode(pe.Category), pe.Message).WithSource(source.Label())
	}
	if de, ok := dErrors.As(err); ok {
		return de.WithSource(source.Label())
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "No property found with the provided details").WithSource(source.Label())
	case errors.Is(err, sentinel.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodePortalTimeout, timeoutMessage(source)).WithSource(source.Label())
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodePortalUnavailable, unavailableMessage(source)).WithSource(source.Label())
	}
	return dErrors.From(err).WithSource(source.Label())
}

func categoryCode(c ErrorCategory) dErrors.Code {
	switch c {
	case ErrorTimeout:
		return dErrors.CodePortalTimeout
	case ErrorProviderOutage:
		return dErrors.CodePortalUnavailable
	case ErrorBadData:
		return dErrors.CodeTransformation
	case ErrorNotFound:
		return dErrors.CodeNotFound
	default:
		return dErrors.CodePortalError
	}
}

func timeoutMessage(source sources.Name) string {
	return fmt.Sprintf("%s portal did not respond in time", source.Label())
}

func unavailableMessage(source sources.Name) string {
	return fmt.Sprintf("%s portal is temporarily unavailable", source.Label())
}

// contextError classifies a fetch aborted by its context.
func contextError(source sources.Name, err error) *ProviderError {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewProviderError(ErrorTimeout, source, timeoutMessage(source), errors.Join(sentinel.ErrTimeout, err))
	}
	return NewProviderError(ErrorProviderOutage, source, "request cancelled before the portal responded", err)
}
