// Package ports defines the interfaces the ratelimit service depends on.
package ports

import (
	"context"
	"log/slog"
	"time"

	"proplink/internal/ratelimit/models"
	"proplink/pkg/requestcontext"
)

// WindowStore manages fixed-window counters. Allow checks and consumes in one
// atomic step; there is no peek-only variant.
type WindowStore interface {
	// Allow evaluates a call at now against limits and counts it if allowed.
	Allow(ctx context.Context, key string, limits models.Limits, now time.Time) (*models.RateLimitResult, error)

	// Get returns the current window for key, or nil when none is open.
	Get(ctx context.Context, key string) (*models.Window, error)

	// Reset clears the window for a key.
	Reset(ctx context.Context, key string) error

	// RemoveExpired drops every window that has elapsed as of now.
	RemoveExpired(ctx context.Context, now time.Time) (int, error)
}

// LogAudit writes a structured audit line for a rate limit decision.
func LogAudit(ctx context.Context, logger *slog.Logger, event string, attrs ...any) {
	if logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attrs = append(attrs, "request_id", requestID)
	}
	args := append(attrs, "event", event, "log_type", "audit")
	logger.WarnContext(ctx, event, args...)
}
