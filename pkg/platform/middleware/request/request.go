// Package request assigns every inbound request an identifier that is echoed
// in the response envelope and in every log line for that request.
package request

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"proplink/pkg/requestcontext"
)

// HeaderRequestID is the header used to propagate request ids.
const HeaderRequestID = "X-Request-ID"

// NewID returns a fresh request identifier.
func NewID() string {
	return "req_" + uuid.NewString()
}

// RequestID reuses an inbound X-Request-ID or generates one, stores it in the
// context and echoes it back as a response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = NewID()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), id)))
	})
}

// GetRequestID retrieves the request id from the context.
func GetRequestID(ctx context.Context) string {
	return requestcontext.RequestID(ctx)
}

// EnsureID returns the request id in ctx, or a new one when none is set.
func EnsureID(ctx context.Context) string {
	if id := requestcontext.RequestID(ctx); id != "" {
		return id
	}
	return NewID()
}
