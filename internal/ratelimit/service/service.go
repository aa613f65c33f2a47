// Package service enforces per-(source, client) request limits.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"proplink/internal/ratelimit/metrics"
	"proplink/internal/ratelimit/models"
	"proplink/internal/ratelimit/ports"
	dErrors "proplink/pkg/domain-errors"
	"proplink/pkg/requestcontext"
)

type WindowStore = ports.WindowStore

// windowCounter is implemented by stores that can report their size.
type windowCounter interface {
	Len() int
}

type Service struct {
	windows WindowStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(windows WindowStore, opts ...Option) (*Service, error) {
	if windows == nil {
		return nil, fmt.Errorf("window store is required")
	}

	svc := &Service{
		windows: windows,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// CheckRateLimit evaluates and, when allowed, counts one call from client
// against source. Time is taken from the request context.
func (s *Service) CheckRateLimit(ctx context.Context, source, client string, limits models.Limits) (*models.RateLimitResult, error) {
	if client == "" {
		client = requestcontext.UnknownClient
	}
	now := requestcontext.Now(ctx)

	result, err := s.windows.Allow(ctx, models.Key(source, client), limits, now)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check rate limit")
	}
	s.metrics.ObserveCheck(source, result.Allowed, result.Burst)

	if !result.Allowed {
		ports.LogAudit(ctx, s.logger, "rate_limit_exceeded",
			"source", source,
			"client_id", client,
			"limit", result.Limit,
			"burst", result.Burst,
			"reset_at", result.ResetAt,
		)
	}
	return result, nil
}

// HandleRateLimit is CheckRateLimit that fails with RATE_LIMIT_EXCEEDED when
// the call is not allowed. The result is returned either way so callers can
// report the remaining headroom.
func (s *Service) HandleRateLimit(ctx context.Context, source, client string, limits models.Limits) (*models.RateLimitResult, error) {
	result, err := s.CheckRateLimit(ctx, source, client, limits)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		return result, dErrors.RateLimited(source, result.ResetAt).
			WithDetails(map[string]any{
				"resetAt":    result.ResetAt.UTC().Format(time.RFC3339),
				"remaining":  result.Remaining,
				"retryAfter": result.RetryAfter,
			})
	}
	return result, nil
}

// Reset clears the window of one client against one source.
func (s *Service) Reset(ctx context.Context, source, client string) error {
	return s.windows.Reset(ctx, models.Key(source, client))
}

// Sweep removes elapsed windows as of now.
func (s *Service) Sweep(ctx context.Context, now time.Time) (int, error) {
	n, err := s.windows.RemoveExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("sweep rate limit windows: %w", err)
	}
	s.metrics.AddSwept(n)
	if c, ok := s.windows.(windowCounter); ok {
		s.metrics.SetActiveWindows(c.Len())
	}
	return n, nil
}

// StartSweeper runs Sweep every interval until ctx is cancelled.
func (s *Service) StartSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := s.Sweep(ctx, time.Now())
			if err != nil {
				s.logger.ErrorContext(ctx, "rate limit sweep failed", "error", err)
				continue
			}
			if n > 0 {
				s.logger.DebugContext(ctx, "rate limit sweep", "removed", n)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
