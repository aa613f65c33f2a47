// Package handler exposes the portal adapters and the unified lookup over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"proplink/internal/registry/cache"
	"proplink/internal/registry/models"
	"proplink/internal/registry/orchestrator"
	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
	"proplink/pkg/platform/httputil"
	"proplink/pkg/requestcontext"
)

// Portal is a single-source adapter.
type Portal interface {
	Source() sources.Name
	Search(ctx context.Context, params map[string]string) *models.SourceResponse
	Health(ctx context.Context) error
}

// Unified runs cross-portal lookups.
type Unified interface {
	Lookup(ctx context.Context, req orchestrator.Request) (*models.UnifiedResponse, error)
}

// CacheAdmin exposes cache housekeeping.
type CacheAdmin interface {
	Stats(ctx context.Context) (cache.Stats, error)
	Clear(ctx context.Context) error
}

// Handler serves the /api routes.
type Handler struct {
	portals []Portal
	unified Unified
	cache   CacheAdmin
	logger  *slog.Logger
	version string
	started time.Time
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithVersion sets the version reported by the health endpoint.
func WithVersion(v string) Option {
	return func(h *Handler) {
		h.version = v
	}
}

// New creates a Handler. cache may be nil, in which case the cache routes
// report the backend as unavailable.
func New(portals []Portal, unified Unified, cache CacheAdmin, opts ...Option) *Handler {
	h := &Handler{
		portals: portals,
		unified: unified,
		cache:   cache,
		logger:  slog.Default(),
		version: "1.0.0",
		started: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers the API routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		for _, p := range h.portals {
			path := "/" + p.Source().String()
			r.Get(path, h.handleSource(p))
			r.Post(path, h.handleSource(p))
		}
		r.Get("/property", h.handleUnified)
		r.Post("/property", h.handleUnified)
		r.Get("/health", h.handleHealth)
		r.Get("/cache/stats", h.handleCacheStats)
		r.Delete("/cache", h.handleCacheClear)
	})
}

// handleSource serves one portal. Parameters come from the query string on
// GET and from a JSON object on POST.
func (h *Handler) handleSource(p Portal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := requestcontext.RequestID(ctx)

		var params map[string]string
		if r.Method == http.MethodPost {
			body, ok := httputil.DecodeAndPrepare[sourceQuery](w, r, h.logger, ctx, requestID)
			if !ok {
				return
			}
			params = *body
		} else {
			params = queryParams(r)
		}

		resp := p.Search(ctx, params)
		httputil.WriteJSON(w, resp.Status, resp)
	}
}

func (h *Handler) handleUnified(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	var req orchestrator.Request
	if r.Method == http.MethodPost {
		body, ok := httputil.DecodeAndPrepare[unifiedBody](w, r, h.logger, ctx, requestID)
		if !ok {
			return
		}
		req = body.toRequest()
	} else {
		q := r.URL.Query()
		req = orchestrator.Request{
			PropertyID:         q.Get(sources.ParamPropertyID),
			RegistrationNumber: q.Get(sources.ParamRegistrationNumber),
			OwnerName:          q.Get(sources.ParamOwnerName),
			Sources:            q["sources"],
		}
	}

	resp, err := h.unified.Lookup(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "unified lookup rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteErrorContext(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, resp.Status, resp)
}

type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    float64           `json:"uptime"` // seconds
	Sources   map[string]string `json:"sources"`
}

// handleHealth reports the process as healthy; a portal whose circuit is
// open is listed as degraded without failing the check.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := healthResponse{
		Status:    "healthy",
		Timestamp: requestcontext.Now(ctx).UTC(),
		Version:   h.version,
		Uptime:    time.Since(h.started).Seconds(),
		Sources:   make(map[string]string, len(h.portals)),
	}
	for _, p := range h.portals {
		state := "up"
		if err := p.Health(ctx); err != nil {
			state = "degraded"
		}
		resp.Sources[p.Source().String()] = state
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

type cacheStatsResponse struct {
	Success   bool        `json:"success"`
	RequestID string      `json:"requestId"`
	Timestamp time.Time   `json:"timestamp"`
	Data      cache.Stats `json:"data"`
}

func (h *Handler) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.cache == nil {
		httputil.WriteErrorContext(ctx, w, dErrors.New(dErrors.CodePortalUnavailable, "Cache is not configured"))
		return
	}
	stats, err := h.cache.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read cache stats",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteErrorContext(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cacheStatsResponse{
		Success:   true,
		RequestID: requestcontext.RequestID(ctx),
		Timestamp: requestcontext.Now(ctx).UTC(),
		Data:      stats,
	})
}

type cacheClearResponse struct {
	Success   bool      `json:"success"`
	RequestID string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

func (h *Handler) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.cache == nil {
		httputil.WriteErrorContext(ctx, w, dErrors.New(dErrors.CodePortalUnavailable, "Cache is not configured"))
		return
	}
	if err := h.cache.Clear(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to clear cache",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteErrorContext(ctx, w, err)
		return
	}
	h.logger.InfoContext(ctx, "cache cleared", "request_id", requestcontext.RequestID(ctx))
	httputil.WriteJSON(w, http.StatusOK, cacheClearResponse{
		Success:   true,
		RequestID: requestcontext.RequestID(ctx),
		Timestamp: requestcontext.Now(ctx).UTC(),
		Message:   "Cache cleared successfully",
	})
}
