package window

import (
	"context"
	"sync"
	"time"

	"proplink/internal/ratelimit/models"
)

// InMemoryWindowStore implements WindowStore with per-key fixed windows.
// State is process local and lost on restart.
type InMemoryWindowStore struct {
	mu      sync.Mutex
	windows map[string]*models.Window
}

// NewInMemoryWindowStore creates an empty store.
func NewInMemoryWindowStore() *InMemoryWindowStore {
	return &InMemoryWindowStore{
		windows: make(map[string]*models.Window),
	}
}

// Allow opens a new window when none exists or the current one has elapsed,
// then admits the call unless the window is full or the call is a burst over
// the burst limit. Denied calls are not counted.
func (s *InMemoryWindowStore) Allow(_ context.Context, key string, limits models.Limits, now time.Time) (*models.RateLimitResult, error) {
	limits = limits.Normalized()

	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.windows[key]
	if w == nil || w.Expired(now) {
		w = &models.Window{ResetAt: now.Add(limits.Window), LastRequest: now}
		s.windows[key] = w
	}

	isBurst := now.Sub(w.LastRequest) < limits.BurstInterval
	overWindow := w.Count >= limits.RequestsPerMinute
	overBurst := isBurst && w.Count >= limits.BurstLimit

	if !overWindow && !overBurst {
		w.Count++
		w.LastRequest = now
		return &models.RateLimitResult{
			Allowed:   true,
			Limit:     limits.RequestsPerMinute,
			Remaining: limits.RequestsPerMinute - w.Count,
			ResetAt:   w.ResetAt,
		}, nil
	}

	return &models.RateLimitResult{
		Allowed:    false,
		Limit:      limits.RequestsPerMinute,
		Remaining:  max(limits.RequestsPerMinute-w.Count, 0),
		ResetAt:    w.ResetAt,
		RetryAfter: retryAfter(now, w.ResetAt),
		Burst:      !overWindow,
	}, nil
}

// Get returns a copy of the window for key.
func (s *InMemoryWindowStore) Get(_ context.Context, key string) (*models.Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.windows[key]
	if w == nil {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

// Reset clears the window for a key.
func (s *InMemoryWindowStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, key)
	return nil
}

// RemoveExpired drops elapsed windows. Exported for testability; the sweeper
// passes wall-clock time.
func (s *InMemoryWindowStore) RemoveExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, w := range s.windows {
		if w.Expired(now) {
			delete(s.windows, key)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of tracked windows.
func (s *InMemoryWindowStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

func retryAfter(now, resetAt time.Time) int {
	d := resetAt.Sub(now)
	if d <= 0 {
		return 0
	}
	secs := int(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return secs
}
