package testutil

import (
	"net/http"
	"time"

	"proplink/pkg/requestcontext"
)

// WithClient stamps the request with a client address, as the metadata
// middleware would. Rate limits are tracked per address.
func WithClient(req *http.Request, ip string) *http.Request {
	req.RemoteAddr = ip + ":40000"
	ctx := requestcontext.WithClientMetadata(req.Context(), ip, "testutil")
	return req.WithContext(ctx)
}

// WithRequestTime pins the request-scoped clock.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
