// Package httputil holds the JSON plumbing shared by every HTTP handler.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	dErrors "proplink/pkg/domain-errors"
	"proplink/pkg/requestcontext"
)

const maxBodyBytes = 1 << 20

// ErrorBody is the wire shape of one error.
type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Source  string         `json:"source,omitempty"`
}

// ErrorResponse is written for failures that happen before a source envelope exists.
type ErrorResponse struct {
	Success   bool        `json:"success"`
	RequestID string      `json:"requestId,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Errors    []ErrorBody `json:"errors"`
}

// Validatable is implemented by request types that normalise and check themselves.
type Validatable interface {
	Validate() error
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ToErrorBody converts err into its wire shape. Internal failures never leak
// their cause.
func ToErrorBody(err error) ErrorBody {
	de := dErrors.From(err)
	body := ErrorBody{
		Code:    string(de.Code),
		Message: de.Message,
		Details: de.Details,
		Source:  de.Source,
	}
	if de.Code == dErrors.CodeInternal {
		body.Message = "An unexpected error occurred"
		body.Details = nil
	}
	return body
}

// WriteError writes err as a failed envelope with the status its code maps to.
func WriteError(w http.ResponseWriter, err error) {
	WriteErrorContext(context.Background(), w, err)
}

// WriteErrorContext is WriteError with request id and time taken from ctx.
func WriteErrorContext(ctx context.Context, w http.ResponseWriter, err error) {
	de := dErrors.From(err)
	WriteJSON(w, dErrors.HTTPStatus(de.Code), ErrorResponse{
		Success:   false,
		RequestID: requestcontext.RequestID(ctx),
		Timestamp: requestcontext.Now(ctx).UTC(),
		Errors:    []ErrorBody{ToErrorBody(de)},
	})
}

// DecodeAndPrepare decodes a JSON body into T and runs its Validate method.
// On failure the error response is already written and ok is false.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		if logger != nil {
			logger.WarnContext(ctx, "failed to decode request body",
				"request_id", requestID,
				"error", err,
			)
		}
		WriteErrorContext(ctx, w, dErrors.New(dErrors.CodeValidation, "Request body must be valid JSON"))
		return nil, false
	}

	if err := PT(&req).Validate(); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request validation failed",
				"request_id", requestID,
				"error", err,
			)
		}
		WriteErrorContext(ctx, w, err)
		return nil, false
	}

	return &req, true
}
