package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	rlservice "proplink/internal/ratelimit/service"
	"proplink/internal/ratelimit/store/window"
	"proplink/internal/registry/cache"
	"proplink/internal/registry/dataset"
	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
	"proplink/pkg/platform/circuit"
	"proplink/pkg/platform/sentinel"
	"proplink/pkg/requestcontext"
)

type AdapterSuite struct {
	suite.Suite
	ctx     context.Context
	configs *sources.Registry
	data    *dataset.Store
	cache   *cache.MemoryStore
	windows *window.InMemoryWindowStore
	limiter *rlservice.Service
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterSuite))
}

func (s *AdapterSuite) SetupTest() {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), now)
	s.ctx = requestcontext.WithRequestID(s.ctx, "req-1")
	s.ctx = requestcontext.WithClientMetadata(s.ctx, "10.0.0.1", "test-agent")

	s.configs = sources.DefaultRegistry()
	s.data = dataset.Default()

	store, err := cache.NewMemoryStore(100)
	s.Require().NoError(err)
	s.cache = store

	s.windows = window.NewInMemoryWindowStore()
	limiter, err := rlservice.New(s.windows)
	s.Require().NoError(err)
	s.limiter = limiter
}

func (s *AdapterSuite) doris(cfg sources.Config, opts ...Option) *Adapter {
	a, err := NewDoris(cfg, s.data, opts...)
	s.Require().NoError(err)
	return a
}

func (s *AdapterSuite) fullDoris(opts ...Option) *Adapter {
	base := []Option{WithCache(s.cache, 5*time.Minute), WithRateLimiter(s.limiter)}
	return s.doris(s.configs.MustGet(sources.DORIS), append(base, opts...)...)
}

func (s *AdapterSuite) firstError(resp *models.SourceResponse) models.APIError {
	s.Require().False(resp.Success)
	s.Require().Len(resp.Errors, 1)
	return resp.Errors[0]
}

// =============================================================================
// Validation
// =============================================================================

func (s *AdapterSuite) TestMissingParametersHasNoSideEffects() {
	a := s.fullDoris()

	resp := a.Search(s.ctx, map[string]string{"district": "Mumbai", "unknown": "x"})

	got := s.firstError(resp)
	s.Equal(string(dErrors.CodeMissingParameters), got.Code)
	s.Equal("DORIS", got.Source)
	s.Contains(got.Message, "propertyId, registrationNumber")
	s.Equal(http.StatusBadRequest, resp.Status)
	s.Nil(resp.Metadata.RateLimitRemaining)
	s.Equal(0, s.windows.Len())

	stats, err := s.cache.Stats(s.ctx)
	s.Require().NoError(err)
	s.Zero(stats.Size)
}

func (s *AdapterSuite) TestBlankValuesCountAsMissing() {
	resp := s.fullDoris().Search(s.ctx, map[string]string{"propertyId": "   "})
	s.Equal(string(dErrors.CodeMissingParameters), s.firstError(resp).Code)
}

func (s *AdapterSuite) TestInvalidFormat() {
	resp := s.fullDoris().Search(s.ctx, map[string]string{"propertyId": "mh-1"})

	got := s.firstError(resp)
	s.Equal(string(dErrors.CodeValidation), got.Code)
	s.Equal("propertyId", got.Details["field"])
	s.Equal(0, s.windows.Len())
}

// =============================================================================
// Cache
// =============================================================================

func (s *AdapterSuite) TestSecondLookupIsServedFromCache() {
	a := s.fullDoris()
	params := map[string]string{"propertyId": "MH1234567"}

	first := a.Search(s.ctx, params)
	s.Require().True(first.Success)
	s.False(first.Metadata.CacheHit)
	s.Require().NotNil(first.Metadata.RateLimitRemaining)
	s.Equal(49, *first.Metadata.RateLimitRemaining)
	s.IsType(models.DorisRecord{}, first.Data)

	second := a.Search(s.ctx, map[string]string{"propertyId": " MH1234567 ", "ignored": "yes"})
	s.Require().True(second.Success)
	s.True(second.Metadata.CacheHit)
	s.Nil(second.Metadata.RateLimitRemaining)

	firstJSON, err := json.Marshal(first.Data)
	s.Require().NoError(err)
	secondJSON, err := json.Marshal(second.Data)
	s.Require().NoError(err)
	s.JSONEq(string(firstJSON), string(secondJSON))

	w, err := s.windows.Get(s.ctx, "doris:10.0.0.1")
	s.Require().NoError(err)
	s.Equal(1, w.Count, "cache hits do not consume rate limit")
}

func (s *AdapterSuite) TestFailuresAreNotCached() {
	a := s.fullDoris()

	resp := a.Search(s.ctx, map[string]string{"propertyId": "GJ0000001"})
	s.Equal(string(dErrors.CodeNotFound), s.firstError(resp).Code)

	stats, err := s.cache.Stats(s.ctx)
	s.Require().NoError(err)
	s.Zero(stats.Size)
}

// =============================================================================
// Rate limiting
// =============================================================================

func (s *AdapterSuite) TestBurstOverLimitIsRejected() {
	a := s.doris(s.configs.MustGet(sources.DORIS), WithRateLimiter(s.limiter))
	params := map[string]string{"propertyId": "MH1234567"}

	for i := 0; i < 8; i++ {
		s.Require().True(a.Search(s.ctx, params).Success, "call %d", i+1)
	}

	resp := a.Search(s.ctx, params)
	got := s.firstError(resp)
	s.Equal(string(dErrors.CodeRateLimitExceeded), got.Code)
	s.Equal("DORIS", got.Source)
	s.Equal(http.StatusBadRequest, resp.Status)
	s.Contains(got.Details, "resetAt")
	s.Require().NotNil(resp.Metadata.RateLimitRemaining)
	s.Equal(42, *resp.Metadata.RateLimitRemaining)
}

func (s *AdapterSuite) TestClientsAreLimitedIndependently() {
	a := s.doris(s.configs.MustGet(sources.DORIS), WithRateLimiter(s.limiter))
	params := map[string]string{"propertyId": "MH1234567"}

	for i := 0; i < 8; i++ {
		a.Search(s.ctx, params)
	}
	other := requestcontext.WithClientMetadata(s.ctx, "10.0.0.2", "test-agent")
	s.True(a.Search(other, params).Success)
}

// =============================================================================
// Timeouts and the circuit breaker
// =============================================================================

func (s *AdapterSuite) slowDoris(opts ...Option) *Adapter {
	cfg := s.configs.MustGet(sources.DORIS)
	cfg.Timeout = 20 * time.Millisecond
	return s.doris(cfg, append([]Option{WithLatency(FixedLatency(time.Second))}, opts...)...)
}

func (s *AdapterSuite) TestSlowPortalTimesOut() {
	resp := s.slowDoris().Search(s.ctx, map[string]string{"propertyId": "MH1234567"})

	got := s.firstError(resp)
	s.Equal(string(dErrors.CodePortalTimeout), got.Code)
	s.Equal(http.StatusGatewayTimeout, resp.Status)
	s.Less(resp.Metadata.ProcessingTimeMs, int64(1000))
}

func (s *AdapterSuite) TestBreakerOpensAfterRepeatedTimeouts() {
	a := s.slowDoris(WithBreaker(circuit.WithFailureThreshold(2), circuit.WithCooldown(time.Hour)))
	params := map[string]string{"propertyId": "MH1234567"}

	s.Require().NoError(a.Health(s.ctx))
	a.Search(s.ctx, params)
	a.Search(s.ctx, params)

	resp := a.Search(s.ctx, params)
	got := s.firstError(resp)
	s.Equal(string(dErrors.CodePortalUnavailable), got.Code)
	s.Equal(http.StatusBadGateway, resp.Status)
	s.True(errors.Is(a.Health(s.ctx), sentinel.ErrUnavailable))
}

func (s *AdapterSuite) TestNotFoundDoesNotTripBreaker() {
	a := s.doris(s.configs.MustGet(sources.DORIS), WithBreaker(circuit.WithFailureThreshold(1)))

	for i := 0; i < 3; i++ {
		a.Search(s.ctx, map[string]string{"propertyId": "GJ0000001"})
	}
	s.NoError(a.Health(s.ctx))
	s.True(a.Search(s.ctx, map[string]string{"propertyId": "MH1234567"}).Success)
}

func (s *AdapterSuite) TestCancelledCallerContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	resp := s.doris(s.configs.MustGet(sources.DORIS)).Search(ctx, map[string]string{"propertyId": "MH1234567"})
	s.Equal(string(dErrors.CodePortalUnavailable), s.firstError(resp).Code)
}

// =============================================================================
// Envelope
// =============================================================================

func (s *AdapterSuite) TestEnvelopeCarriesRequestMetadata() {
	resp := s.fullDoris().Search(s.ctx, map[string]string{"registrationNumber": "REG/MH/2021/54321"})

	s.Require().True(resp.Success)
	s.Equal("DORIS", resp.Source)
	s.Equal("req-1", resp.RequestID)
	s.Equal(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), resp.Timestamp)
	s.Equal(http.StatusOK, resp.Status)
	s.Empty(resp.Errors)
}

func (s *AdapterSuite) TestConstructorValidation() {
	_, err := NewDoris(s.configs.MustGet(sources.DLR), s.data)
	s.Error(err, "config for another portal")

	_, err = NewDoris(s.configs.MustGet(sources.DORIS), nil)
	s.Error(err)

	_, err = NewDlr(s.configs.MustGet(sources.DLR), s.data, nil)
	s.Error(err)

	_, err = NewDoris(s.configs.MustGet(sources.DORIS), s.data, WithCache(s.cache, 0))
	s.Error(err)
}
