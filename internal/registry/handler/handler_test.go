package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	rlservice "proplink/internal/ratelimit/service"
	"proplink/internal/ratelimit/store/window"
	"proplink/internal/registry/cache"
	"proplink/internal/registry/crossref"
	"proplink/internal/registry/dataset"
	"proplink/internal/registry/merge"
	"proplink/internal/registry/orchestrator"
	"proplink/internal/registry/providers"
	"proplink/internal/registry/sources"
	"proplink/pkg/platform/middleware/request"
	"proplink/pkg/testutil"
)

// HandlerSuite drives the API through a chi router backed by the real
// adapters, merge engine and bundled dataset.
type HandlerSuite struct {
	suite.Suite
	cache  *cache.MemoryStore
	router http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	data := dataset.Default()
	resolver, err := crossref.NewResolver(data, crossref.DefaultClasses())
	s.Require().NoError(err)
	engine, err := merge.New(resolver, data)
	s.Require().NoError(err)

	limiter, err := rlservice.New(window.NewInMemoryWindowStore())
	s.Require().NoError(err)
	s.cache, err = cache.NewMemoryStore(1000)
	s.Require().NoError(err)

	configs := sources.DefaultRegistry()
	registry, err := providers.NewDefaultRegistry(configs, data, resolver,
		providers.WithCache(s.cache, 5*time.Minute),
		providers.WithRateLimiter(limiter),
	)
	s.Require().NoError(err)

	var (
		portals   []Portal
		upstreams []orchestrator.Portal
	)
	for _, p := range registry.All() {
		portals = append(portals, p)
		upstreams = append(upstreams, p)
	}
	orch, err := orchestrator.New(upstreams, engine, resolver, configs.Unified(), orchestrator.WithCache(s.cache))
	s.Require().NoError(err)

	s.router = s.routerFor(New(portals, orch, s.cache, WithVersion("test")))
}

func (s *HandlerSuite) routerFor(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	h.Register(r)
	return r
}

func (s *HandlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.WithClient(req, "10.0.0.1"))
}

// =============================================================================
// Single-portal routes
// =============================================================================

func (s *HandlerSuite) TestSourceGet() {
	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/doris?propertyId=MH1234567"))

	testutil.AssertStatusOK(s.T(), rr)
	env := testutil.UnmarshalEnvelope(s.T(), rr)
	s.True(env.Success)
	s.Equal("DORIS", env.Source)
	s.NotEmpty(env.RequestID)
	s.Equal(env.RequestID, rr.Header().Get(request.HeaderRequestID))
	s.Contains(string(env.Data), "MH1234567")
}

func (s *HandlerSuite) TestSourcePost() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/doris", map[string]any{"propertyId": "MH1234567"})
	rr := s.do(req)

	testutil.AssertStatusOK(s.T(), rr)
	env := testutil.UnmarshalEnvelope(s.T(), rr)
	s.Equal("DORIS", env.Source)
	s.Contains(string(env.Data), "MH1234567")
}

func (s *HandlerSuite) TestSourcePostInvalidJSON() {
	rr := s.do(testutil.NewRequestWithBody(s.T(), http.MethodPost, "/api/doris", "{not json"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "VALIDATION_ERROR")
}

func (s *HandlerSuite) TestSourcePostRejectsNestedValues() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/doris", map[string]any{"propertyId": []string{"MH1234567"}})
	testutil.AssertStatusAndError(s.T(), s.do(req), http.StatusBadRequest, "VALIDATION_ERROR")
}

func (s *HandlerSuite) TestSourceMissingParameters() {
	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/dlr"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "MISSING_PARAMETERS")
}

func (s *HandlerSuite) TestSourceNotFound() {
	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/doris?propertyId=ZZ0000000"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "NOT_FOUND")
}

func (s *HandlerSuite) TestUnknownSourceRoute() {
	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/land?propertyId=MH1234567"))
	testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
}

// =============================================================================
// Unified route
// =============================================================================

func (s *HandlerSuite) TestUnifiedGetMerges() {
	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/property?propertyId=MH1234567&sources=doris,dlr,cersai"))

	testutil.AssertStatusOK(s.T(), rr)
	env := testutil.UnmarshalEnvelope(s.T(), rr)
	s.True(env.Success)
	s.Equal([]string{"DORIS", "DLR", "CERSAI"}, env.Sources)
	s.Contains(string(env.Data), `"source":"MERGED"`)
}

func (s *HandlerSuite) TestUnifiedPostAcceptsArrayAndString() {
	array := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/property", map[string]any{
		"propertyId": "MH1234567",
		"sources":    []string{"doris", "dlr"},
	})
	rr := s.do(array)
	testutil.AssertStatusOK(s.T(), rr)
	s.Equal([]string{"DORIS", "DLR"}, testutil.UnmarshalEnvelope(s.T(), rr).Sources)

	str := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/property", map[string]any{
		"propertyId": "MH1234567",
		"sources":    "DLR, doris",
	})
	rr = s.do(str)
	testutil.AssertStatusOK(s.T(), rr)
	s.Equal([]string{"DORIS", "DLR"}, testutil.UnmarshalEnvelope(s.T(), rr).Sources)
}

func (s *HandlerSuite) TestUnifiedValidation() {
	cases := []struct {
		name string
		path string
		code string
	}{
		{"no parameters", "/api/property", "MISSING_PARAMETERS"},
		{"bad property id", "/api/property?propertyId=abc", "VALIDATION_ERROR"},
		{"unknown source", "/api/property?propertyId=MH1234567&sources=land", "VALIDATION_ERROR"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, tc.path))
			testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, tc.code)
		})
	}
}

func (s *HandlerSuite) TestUnifiedNotFound() {
	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/property?propertyId=ZZ0000000"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "NOT_FOUND")
}

// =============================================================================
// Health and cache administration
// =============================================================================

type fakePortal struct {
	providers.Provider
	err error
}

func (p fakePortal) Health(context.Context) error { return p.err }

func (s *HandlerSuite) TestHealth() {
	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/health"))

	testutil.AssertStatusOK(s.T(), rr)
	body := testutil.UnmarshalResponse[healthResponse](s.T(), rr)
	s.Equal("healthy", body.Status)
	s.Equal("test", body.Version)
	s.GreaterOrEqual(body.Uptime, 0.0)
	s.Len(body.Sources, 4)
	for name, state := range body.Sources {
		s.Equal("up", state, name)
	}
}

func (s *HandlerSuite) TestHealthReportsDegradedPortal() {
	doris, err := providers.NewDoris(sources.DefaultRegistry().MustGet(sources.DORIS), dataset.Default())
	s.Require().NoError(err)
	h := New([]Portal{fakePortal{Provider: doris, err: errors.New("circuit open")}}, nil, nil)

	rr := testutil.DoRequest(s.routerFor(h), testutil.NewRequest(s.T(), http.MethodGet, "/api/health"))

	testutil.AssertStatusOK(s.T(), rr)
	body := testutil.UnmarshalResponse[healthResponse](s.T(), rr)
	s.Equal("healthy", body.Status)
	s.Equal(map[string]string{"doris": "degraded"}, body.Sources)
}

func (s *HandlerSuite) TestCacheStatsAndClear() {
	testutil.AssertStatusOK(s.T(), s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/doris?propertyId=MH1234567")))

	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/api/cache/stats"))
	testutil.AssertStatusOK(s.T(), rr)
	stats := testutil.UnmarshalResponse[cacheStatsResponse](s.T(), rr)
	s.True(stats.Success)
	s.Equal("memory", stats.Data.Backend)
	s.Equal(1, stats.Data.Size)
	s.Len(stats.Data.Keys, 1)

	rr = s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/api/cache"))
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "message", "Cache cleared successfully")

	after, err := s.cache.Stats(context.Background())
	s.Require().NoError(err)
	s.Zero(after.Size)
}

func (s *HandlerSuite) TestCacheRoutesWithoutStore() {
	h := New(nil, nil, nil)
	router := s.routerFor(h)

	rr := testutil.DoRequest(router, testutil.NewRequest(s.T(), http.MethodGet, "/api/cache/stats"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadGateway, "PORTAL_UNAVAILABLE")

	rr = testutil.DoRequest(router, testutil.NewRequest(s.T(), http.MethodDelete, "/api/cache"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadGateway, "PORTAL_UNAVAILABLE")
}
