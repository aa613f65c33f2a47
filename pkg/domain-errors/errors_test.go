package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeNotFound:          http.StatusNotFound,
		CodeMissingParameters: http.StatusBadRequest,
		CodeValidation:        http.StatusBadRequest,
		CodeRateLimitExceeded: http.StatusBadRequest,
		CodePortalTimeout:     http.StatusGatewayTimeout,
		CodePortalUnavailable: http.StatusBadGateway,
		CodeTransformation:    http.StatusInternalServerError,
		CodeInternal:          http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), string(code))
	}
}

func TestHasCodeThroughWrapping(t *testing.T) {
	base := New(CodeNotFound, "missing")
	wrapped := fmt.Errorf("lookup: %w", base)

	assert.True(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(wrapped, CodeInternal))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
}

func TestFrom(t *testing.T) {
	t.Run("uncategorised errors become internal", func(t *testing.T) {
		cause := errors.New("boom")
		de := From(cause)
		require.NotNil(t, de)
		assert.Equal(t, CodeInternal, de.Code)
		assert.ErrorIs(t, de, cause)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, From(nil))
	})
}

func TestWithSourceDoesNotMutateOriginal(t *testing.T) {
	base := New(CodeValidation, "bad id")
	annotated := base.WithSource("DORIS").WithDetails(map[string]any{"field": "propertyId"})

	assert.Empty(t, base.Source)
	assert.Nil(t, base.Details)
	assert.Equal(t, "DORIS", annotated.Source)
	assert.Equal(t, "propertyId", annotated.Details["field"])
}

func TestRateLimitedCarriesResetAt(t *testing.T) {
	resetAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	err := RateLimited("CERSAI", resetAt)

	assert.Equal(t, CodeRateLimitExceeded, err.Code)
	assert.Equal(t, "2024-03-01T10:00:00Z", err.Details["resetAt"])
	assert.True(t, Retryable(err.Code))
}
