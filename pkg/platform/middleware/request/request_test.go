package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proplink/pkg/requestcontext"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	t.Run("generates an id when none is sent", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.True(t, strings.HasPrefix(seen, "req_"))
		assert.Equal(t, seen, rr.Header().Get(HeaderRequestID))
	})

	t.Run("propagates an inbound id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(HeaderRequestID, "req_upstream")
		h.ServeHTTP(httptest.NewRecorder(), r)

		assert.Equal(t, "req_upstream", seen)
	})
}

func TestEnsureID(t *testing.T) {
	ctx := requestcontext.WithRequestID(t.Context(), "req_fixed")
	assert.Equal(t, "req_fixed", EnsureID(ctx))
	assert.NotEqual(t, EnsureID(t.Context()), EnsureID(t.Context()))
}
