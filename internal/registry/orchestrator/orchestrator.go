// Package orchestrator answers cross-portal property lookups: it fans one
// request out to every selected portal, attempts a merge, and folds the
// outcomes into a single envelope.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"proplink/internal/registry/cache"
	"proplink/internal/registry/merge"
	"proplink/internal/registry/metrics"
	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
	"proplink/pkg/platform/httputil"
	"proplink/pkg/platform/middleware/request"
	"proplink/pkg/requestcontext"
)

// Portal is one source adapter.
type Portal interface {
	Source() sources.Name
	Search(ctx context.Context, params map[string]string) *models.SourceResponse
}

// Merger reconciles one property across portals.
type Merger interface {
	MergeAcrossSources(ctx context.Context, id string, enabled []sources.Name) merge.Result
}

// Resolver maps a property id to its key in another portal.
type Resolver interface {
	ResolveInSource(id string, target sources.Name) (string, bool)
}

const cacheScope = "unified"

// Orchestrator runs unified lookups. It is safe for concurrent use.
type Orchestrator struct {
	portals  map[sources.Name]Portal
	merger   Merger
	resolver Resolver
	config   sources.UnifiedConfig
	cache    cache.Store
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithCache caches unified envelopes for the configured TTL.
func WithCache(store cache.Store) Option {
	return func(o *Orchestrator) {
		o.cache = store
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// New creates an orchestrator over the given portals.
func New(portals []Portal, merger Merger, resolver Resolver, cfg sources.UnifiedConfig, opts ...Option) (*Orchestrator, error) {
	if len(portals) == 0 {
		return nil, fmt.Errorf("at least one portal is required")
	}
	if merger == nil {
		return nil, fmt.Errorf("merger is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	o := &Orchestrator{
		portals:  make(map[sources.Name]Portal, len(portals)),
		merger:   merger,
		resolver: resolver,
		config:   cfg,
		logger:   slog.Default(),
	}
	for _, p := range portals {
		if p == nil {
			return nil, fmt.Errorf("portal is required")
		}
		if _, dup := o.portals[p.Source()]; dup {
			return nil, fmt.Errorf("portal %s registered twice", p.Source())
		}
		o.portals[p.Source()] = p
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.cache != nil && o.config.CacheTTL <= 0 {
		return nil, fmt.Errorf("unified cache ttl must be positive")
	}
	return o, nil
}

// Lookup runs one unified request. Only malformed requests return an error;
// portal failures are reported inside the envelope.
func (o *Orchestrator) Lookup(ctx context.Context, req Request) (*models.UnifiedResponse, error) {
	start := time.Now()

	q, err := o.prepare(req)
	if err != nil {
		return nil, err
	}

	requestID := request.EnsureID(ctx)
	ctx = requestcontext.WithRequestID(ctx, requestID)

	key := q.cacheKey()
	if resp, ok := o.fromCache(ctx, key); ok {
		resp.RequestID = requestID
		resp.Timestamp = requestcontext.Now(ctx).UTC()
		resp.Metadata.CacheHit = true
		resp.Metadata.ProcessingTimeMs = time.Since(start).Milliseconds()
		resp.Status = statusOf(resp)
		o.metrics.ObserveUnified(time.Since(start))
		return resp, nil
	}

	responses, merged := o.dispatch(ctx, q)
	resp := o.combine(q, responses, merged)
	resp.RequestID = requestID
	resp.Timestamp = requestcontext.Now(ctx).UTC()
	resp.Metadata.ProcessingTimeMs = time.Since(start).Milliseconds()

	o.store(ctx, key, resp)

	o.metrics.ObserveUnified(time.Since(start))
	o.logger.InfoContext(ctx, "unified lookup completed",
		"request_id", requestID,
		"sources", resp.Sources,
		"successful", resp.Metadata.SuccessfulSources,
		"failed", resp.Metadata.FailedSources,
		"merged", merged.Record != nil,
		"duration_ms", resp.Metadata.ProcessingTimeMs,
	)
	return resp, nil
}

// dispatch queries every selected portal and, when a property id was given,
// the merge engine, all concurrently. It returns once every call has settled.
func (o *Orchestrator) dispatch(ctx context.Context, q query) ([]*models.SourceResponse, merge.Result) {
	if o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	responses := make([]*models.SourceResponse, len(q.sources))
	var merged merge.Result

	var g errgroup.Group
	for i, src := range q.sources {
		g.Go(func() error {
			responses[i] = o.search(ctx, src, q.paramsFor(src, o.resolver))
			return nil
		})
	}
	if q.propertyID != "" {
		g.Go(func() error {
			merged = o.merger.MergeAcrossSources(ctx, q.propertyID, q.sources)
			return nil
		})
	}
	_ = g.Wait()

	if merged.Record != nil {
		o.metrics.ObserveMerge(len(merged.Contributors))
	}
	return responses, merged
}

// search calls one portal, converting a panic into an internal-error envelope
// so one faulty adapter cannot take the request down.
func (o *Orchestrator) search(ctx context.Context, src sources.Name, params map[string]string) (resp *models.SourceResponse) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.ErrorContext(ctx, "portal adapter panicked",
				"request_id", requestcontext.RequestID(ctx),
				"source", src,
				"panic", r,
			)
			resp = failedEnvelope(ctx, src, dErrors.New(dErrors.CodeInternal, "An unexpected error occurred"))
		}
	}()
	resp = o.portals[src].Search(ctx, params)
	if resp == nil {
		resp = failedEnvelope(ctx, src, dErrors.New(dErrors.CodeInternal, "An unexpected error occurred"))
	}
	return resp
}

func failedEnvelope(ctx context.Context, src sources.Name, de *dErrors.Error) *models.SourceResponse {
	de = de.WithSource(src.Label())
	return &models.SourceResponse{
		Source:    src.Label(),
		RequestID: requestcontext.RequestID(ctx),
		Timestamp: requestcontext.Now(ctx).UTC(),
		Errors:    []models.APIError{httputil.ToErrorBody(de)},
		Status:    dErrors.HTTPStatus(de.Code),
	}
}

// combine folds per-portal envelopes and the merge outcome into one response.
// The merged record replaces the per-portal entries when it reconciles two or
// more portals, or when it is the only data available.
func (o *Orchestrator) combine(q query, responses []*models.SourceResponse, merged merge.Result) *models.UnifiedResponse {
	resp := &models.UnifiedResponse{
		Sources: make([]string, 0, len(q.sources)),
		Data:    []models.SourceData{},
	}
	for _, src := range q.sources {
		resp.Sources = append(resp.Sources, src.Label())
	}

	successful := 0
	for _, r := range responses {
		if r.Success {
			successful++
			resp.Data = append(resp.Data, models.SourceData{Source: r.Source, Data: r.Data})
			continue
		}
		resp.Errors = append(resp.Errors, r.Errors...)
	}
	for _, f := range merged.Failures {
		resp.Errors = append(resp.Errors, httputil.ToErrorBody(f))
	}

	if merged.Record != nil && (len(merged.Contributors) >= 2 || successful == 0) {
		resp.Data = []models.SourceData{{Source: sources.Merged, Data: merged.Record}}
	}

	resp.Success = len(resp.Data) > 0
	resp.Metadata = models.UnifiedMetadata{
		TotalSources:      len(q.sources),
		SuccessfulSources: successful,
		FailedSources:     len(q.sources) - successful,
	}
	resp.Status = statusOf(resp)
	return resp
}

// statusOf derives the HTTP status of an envelope. A failed lookup is a 404
// whenever any portal reported not found.
func statusOf(resp *models.UnifiedResponse) int {
	if resp.Success {
		return http.StatusOK
	}
	if len(resp.Errors) == 0 {
		return http.StatusNotFound
	}
	for _, e := range resp.Errors {
		if dErrors.Code(e.Code) == dErrors.CodeNotFound {
			return http.StatusNotFound
		}
	}
	return dErrors.HTTPStatus(dErrors.Code(resp.Errors[0].Code))
}

func (o *Orchestrator) fromCache(ctx context.Context, key string) (*models.UnifiedResponse, bool) {
	if o.cache == nil {
		return nil, false
	}
	resp, hit, err := cache.GetJSON[models.UnifiedResponse](ctx, o.cache, key)
	if err != nil {
		o.logger.WarnContext(ctx, "unified cache lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return nil, false
	}
	o.metrics.ObserveCache(cacheScope, hit)
	if !hit {
		return nil, false
	}
	return &resp, true
}

// store caches the envelope unless it carries a failure a retry could cure.
func (o *Orchestrator) store(ctx context.Context, key string, resp *models.UnifiedResponse) {
	if o.cache == nil {
		return
	}
	for _, e := range resp.Errors {
		if dErrors.Retryable(dErrors.Code(e.Code)) {
			return
		}
	}
	if err := cache.SetJSON(ctx, o.cache, key, resp, o.config.CacheTTL); err != nil {
		o.logger.WarnContext(ctx, "unified cache store failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

// Sources lists the portals this orchestrator dispatches to, in precedence order.
func (o *Orchestrator) Sources() []sources.Name {
	out := make([]sources.Name, 0, len(o.portals))
	for _, n := range sources.All {
		if _, ok := o.portals[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

func labels(names []sources.Name) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	slices.Sort(out)
	return strings.Join(out, ",")
}
