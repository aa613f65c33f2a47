package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	rlmodels "proplink/internal/ratelimit/models"
	"proplink/internal/registry/cache"
	"proplink/internal/registry/metrics"
	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
	"proplink/pkg/platform/circuit"
	"proplink/pkg/platform/httputil"
	"proplink/pkg/platform/middleware/request"
	"proplink/pkg/platform/sentinel"
	"proplink/pkg/requestcontext"
)

// RateLimiter consumes one unit of a (source, client) window. A denied call
// returns the current window state together with a RATE_LIMIT_EXCEEDED error.
type RateLimiter interface {
	HandleRateLimit(ctx context.Context, source, client string, limits rlmodels.Limits) (*rlmodels.RateLimitResult, error)
}

// searchFunc performs the portal-specific lookup over cleaned parameters.
type searchFunc func(ctx context.Context, params map[string]string) (any, error)

// Adapter wraps a portal search with validation, caching, rate limiting and
// the simulated network call.
type Adapter struct {
	config  sources.Config
	search  searchFunc
	cache   cache.Store
	ttl     time.Duration
	limiter RateLimiter
	latency Latency
	breaker *circuit.Breaker
	logger  *slog.Logger
	metrics *metrics.Metrics

	breakerOpts []circuit.Option
	useBreaker  bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithCache enables response caching for successful lookups.
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(a *Adapter) {
		a.cache = store
		a.ttl = ttl
	}
}

// WithRateLimiter enforces the portal's per-client rate limits.
func WithRateLimiter(l RateLimiter) Option {
	return func(a *Adapter) {
		a.limiter = l
	}
}

// WithLatency sets the simulated network delay. Defaults to NoLatency.
func WithLatency(l Latency) Option {
	return func(a *Adapter) {
		if l != nil {
			a.latency = l
		}
	}
}

// WithBreaker gives each adapter its own circuit breaker built from opts.
func WithBreaker(opts ...circuit.Option) Option {
	return func(a *Adapter) {
		a.useBreaker = true
		a.breakerOpts = opts
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Adapter) {
		a.metrics = m
	}
}

func newAdapter(cfg sources.Config, want sources.Name, search searchFunc, opts ...Option) (*Adapter, error) {
	if cfg.Name != want {
		return nil, fmt.Errorf("%s adapter given config for %q", want, cfg.Name)
	}
	if search == nil {
		return nil, fmt.Errorf("search is required")
	}
	a := &Adapter{
		config:  cfg,
		search:  search,
		latency: NoLatency{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.cache != nil && a.ttl <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive")
	}
	if a.useBreaker {
		a.breaker = circuit.New(cfg.Name.Label(), a.breakerOpts...)
	}
	return a, nil
}

func (a *Adapter) Source() sources.Name {
	return a.config.Name
}

func (a *Adapter) Config() sources.Config {
	return a.config
}

// Health reports sentinel.ErrUnavailable while the breaker is refusing calls.
func (a *Adapter) Health(_ context.Context) error {
	if a.breaker != nil && !a.breaker.Allow() {
		return fmt.Errorf("%s portal: %w", a.config.Name.Label(), sentinel.ErrUnavailable)
	}
	return nil
}

// Search runs the full lookup pipeline and always returns an envelope.
func (a *Adapter) Search(ctx context.Context, params map[string]string) *models.SourceResponse {
	start := time.Now()
	params = a.clean(params)
	if requestcontext.RequestID(ctx) == "" {
		ctx = requestcontext.WithRequestID(ctx, request.NewID())
	}

	resp := &models.SourceResponse{
		Source:    a.config.Name.Label(),
		RequestID: requestcontext.RequestID(ctx),
		Timestamp: requestcontext.Now(ctx).UTC(),
	}

	data, hit, remaining, err := a.run(ctx, params)
	resp.Metadata = models.Metadata{
		ProcessingTimeMs:   time.Since(start).Milliseconds(),
		CacheHit:           hit,
		RateLimitRemaining: remaining,
	}

	if err != nil {
		de := ToDomainError(a.config.Name, err)
		a.logFailure(ctx, params, de)
		resp.Errors = []models.APIError{httputil.ToErrorBody(de)}
		resp.Status = dErrors.HTTPStatus(de.Code)
		a.metrics.ObserveLookup(string(a.config.Name), string(de.Code), time.Since(start))
		return resp
	}

	resp.Success = true
	resp.Data = data
	resp.Status = http.StatusOK
	outcome := "ok"
	if hit {
		outcome = "cache_hit"
	}
	a.metrics.ObserveLookup(string(a.config.Name), outcome, time.Since(start))
	return resp
}

func (a *Adapter) run(ctx context.Context, params map[string]string) (any, bool, *int, error) {
	if err := a.validate(params); err != nil {
		return nil, false, nil, err
	}

	key := cache.Key(string(a.config.Name), a.config.Params(), params)
	if a.cache != nil {
		raw, hit, err := cache.GetJSON[json.RawMessage](ctx, a.cache, key)
		if err != nil {
			a.logger.WarnContext(ctx, "cache lookup failed",
				"request_id", requestcontext.RequestID(ctx),
				"source", a.config.Name,
				"error", err,
			)
		}
		a.metrics.ObserveCache(string(a.config.Name), hit)
		if hit {
			return raw, true, nil, nil
		}
	}

	var remaining *int
	if a.limiter != nil {
		limits := rlmodels.NewLimits(a.config.RateLimits.RequestsPerMinute, a.config.RateLimits.BurstLimit)
		result, err := a.limiter.HandleRateLimit(ctx, string(a.config.Name), requestcontext.ClientKey(ctx), limits)
		if result != nil {
			r := result.Remaining
			remaining = &r
		}
		if err != nil {
			return nil, false, remaining, err
		}
	}

	if a.breaker != nil && !a.breaker.Allow() {
		return nil, false, remaining, NewProviderError(ErrorProviderOutage, a.config.Name,
			unavailableMessage(a.config.Name), sentinel.ErrUnavailable)
	}

	data, err := a.fetch(ctx, params)
	a.recordOutcome(ctx, err)
	if err != nil {
		return nil, false, remaining, err
	}

	if a.cache != nil {
		if err := cache.SetJSON(ctx, a.cache, key, data, a.ttl); err != nil {
			a.logger.WarnContext(ctx, "cache store failed",
				"request_id", requestcontext.RequestID(ctx),
				"source", a.config.Name,
				"error", err,
			)
		}
	}
	return data, false, remaining, nil
}

// fetch runs the simulated portal call bounded by the portal timeout.
func (a *Adapter) fetch(ctx context.Context, params map[string]string) (any, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	if err := a.latency.Wait(fetchCtx, a.config.ResponseTime); err != nil {
		return nil, contextError(a.config.Name, err)
	}
	data, err := a.search(fetchCtx, params)
	if err != nil {
		return nil, err
	}
	if err := fetchCtx.Err(); err != nil {
		return nil, contextError(a.config.Name, err)
	}
	return data, nil
}

// clean keeps only the portal's parameters, trimmed, dropping empty values.
func (a *Adapter) clean(params map[string]string) map[string]string {
	out := make(map[string]string, len(params))
	for _, name := range a.config.Params() {
		if v := strings.TrimSpace(params[name]); v != "" {
			out[name] = v
		}
	}
	return out
}

func (a *Adapter) validate(params map[string]string) error {
	for _, name := range a.config.RequiredParams {
		if params[name] != "" {
			return sources.ValidateFormats(params)
		}
	}
	return dErrors.New(dErrors.CodeMissingParameters,
		fmt.Sprintf("At least one of the following parameters is required: %s", strings.Join(a.config.RequiredParams, ", "))).
		WithDetails(map[string]any{"required": a.config.RequiredParams})
}

// recordOutcome feeds the breaker. Only portal faults count against it.
func (a *Adapter) recordOutcome(ctx context.Context, err error) {
	if a.breaker == nil {
		return
	}
	if err != nil && isPortalFault(err) {
		if _, change := a.breaker.RecordFailure(); change.Opened {
			a.metrics.IncrementBreaker(string(a.config.Name), circuit.StateOpen.String())
			a.logger.ErrorContext(ctx, "portal circuit opened",
				"request_id", requestcontext.RequestID(ctx),
				"source", a.config.Name,
			)
		}
		return
	}
	if _, change := a.breaker.RecordSuccess(); change.Closed {
		a.metrics.IncrementBreaker(string(a.config.Name), circuit.StateClosed.String())
		a.logger.InfoContext(ctx, "portal circuit closed",
			"request_id", requestcontext.RequestID(ctx),
			"source", a.config.Name,
		)
	}
}

func isPortalFault(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category != ErrorNotFound
	}
	de, ok := dErrors.As(err)
	if !ok {
		return true
	}
	switch de.Code {
	case dErrors.CodePortalTimeout, dErrors.CodePortalUnavailable, dErrors.CodePortalError, dErrors.CodeInternal:
		return true
	}
	return false
}

func (a *Adapter) logFailure(ctx context.Context, params map[string]string, de *dErrors.Error) {
	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"source", a.config.Name,
		"code", de.Code,
		"params", params,
	}
	switch de.Code {
	case dErrors.CodeMissingParameters, dErrors.CodeValidation, dErrors.CodeNotFound, dErrors.CodeRateLimitExceeded:
		a.logger.WarnContext(ctx, "portal lookup rejected", attrs...)
	default:
		a.logger.ErrorContext(ctx, "portal lookup failed", append(attrs, "error", de)...)
	}
}
